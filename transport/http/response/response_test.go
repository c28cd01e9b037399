package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "BK1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t, `{"data":{"id":"BK1"}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{name: "failure", err: failure.BookingNotFound, code: http.StatusNotFound, body: `{"error":"booking not found"}`},
		{name: "plain error", err: errors.New("boom"), code: http.StatusInternalServerError, body: `{"error":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestWithAttachment(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithAttachment(rec, constant.ContentTypeCalendar, "BK1-Our-House.ics", []byte("BEGIN:VCALENDAR"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="BK1-Our-House.ics"`, rec.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, constant.ContentTypeCalendar, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, "BEGIN:VCALENDAR", rec.Body.String())
}

func TestWithText(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithText(rec, http.StatusOK, "Hi!\nName: Ada")

	assert.Equal(t, constant.ContentTypeText, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, "Hi!\nName: Ada", rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	tests := []struct {
		name  string
		write func(w http.ResponseWriter)
		code  int
		body  string
	}{
		{
			name:  "rate limited",
			write: response.WithRequestLimitExceeded,
			code:  http.StatusTooManyRequests,
			body:  `{"message":"REQUEST LIMIT EXCEEDED"}`,
		},
		{
			name:  "shutting down",
			write: response.WithPreparingShutdown,
			code:  http.StatusServiceUnavailable,
			body:  `{"message":"SERVER PREPARING TO SHUT DOWN"}`,
		},
		{
			name:  "unhealthy",
			write: response.WithUnhealthy,
			code:  http.StatusServiceUnavailable,
			body:  `{"message":"SERVER UNHEALTHY"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestWithJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
