package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/shared/logger"
)

// Data is the success envelope, {"data": ...}.
type Data[T any] struct {
	Data T `json:"data"`
}

// Error is the failure envelope, {"error": "..."}.
type Error struct {
	Error string `json:"error"`
}

// Message carries operational notices such as the shutdown or rate limit
// responses.
type Message struct {
	Message string `json:"message"`
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	encode(writer, code, Data[any]{Data: payload})
}

// WithError maps err to its HTTP code. Server-side failures are logged with
// a stack before the message is returned.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
		logger.ErrorWithStack(err)
	}

	encode(writer, code, Error{Error: err.Error()})
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	encode(writer, code, Message{Message: message})
}

func WithText(writer http.ResponseWriter, code int, text string) {
	write(writer, code, constant.ContentTypeText, []byte(text))
}

// WithAttachment sends body as a download named fileName.
func WithAttachment(writer http.ResponseWriter, contentType, fileName string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	write(writer, http.StatusOK, contentType, body)
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func encode(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	write(writer, code, constant.ContentTypeJSON, body)
}

func write(writer http.ResponseWriter, code int, contentType string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
