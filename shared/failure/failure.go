package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	BookingNotFound = &Failure{Code: http.StatusNotFound, Message: "booking not found"}
	ReviewNotFound  = &Failure{Code: http.StatusNotFound, Message: "review not found"}
	EmptyUpdate     = &Failure{Code: http.StatusBadRequest, Message: "update request cannot be empty"}
)

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

// BadRequestFromString returns a 400 carrying msg.
func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

// InternalError wraps err as a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusInternalServerError, err.Error())
}

// NotFound returns a 404 for the named entity, e.g. "booking not found".
func NotFound(entityName string) error {
	return newFailure(http.StatusNotFound, entityName+" not found")
}

// Conflict returns a 409 for requests the current state cannot accept.
func Conflict(message string) error {
	return newFailure(http.StatusConflict, message)
}

// Unavailable returns a 503 for features whose backing integration is switched off.
func Unavailable(feature string) error {
	return newFailure(http.StatusServiceUnavailable, feature+" is not enabled")
}

// GetCode returns the HTTP code carried by err, or 500 for anything else.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
