package booking_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tavola/config"
	"tavola/infras/metrics"
	"tavola/infras/otel/mocks"
	"tavola/internal/domains/booking/model/dto"
	"tavola/internal/domains/booking/repository"
	"tavola/internal/domains/booking/service"
	handoffService "tavola/internal/domains/handoff/service"
	"tavola/internal/handlers/booking"
	"tavola/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const createBody = `{
	"name": "Ada",
	"phone": "+15551234567",
	"service": "Lounge Experience",
	"date": "2025-03-01",
	"time": "19:00",
	"party_size": 2,
	"seating": "Indoor"
}`

type envelope[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "tavola"
	cfg.App.Business = config.Business{
		Name:       "Our House",
		Location:   "Your City",
		OwnerPhone: "+62 812 3456 789",
		ChatURL:    "https://wa.me",
		MapURL:     "https://www.google.com/maps/dir/?api=1&destination=",
	}

	store := service.New(repository.NewMemory(), metrics.New(), mocks.NewOtel())
	handler := booking.New(store, handoffService.New(cfg, nil, mocks.NewOtel()), cfg, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, reader))

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func create(t *testing.T, router http.Handler) dto.BookingResponse {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/v1/bookings", createBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[dto.BookingResponse](t, rec).Data
}

func TestHandler_CreateBooking(t *testing.T) {
	router := newRouter(t)

	created := create(t, router)

	assert.Regexp(t, `^BK[0-9A-F]{12}$`, created.ID)
	assert.Equal(t, "Upcoming", created.Status)
	assert.Contains(t, created.Message, "Name: Ada")
	assert.NotContains(t, created.Message, "Email:")
	require.NotNil(t, created.Links)
	assert.True(t, strings.HasPrefix(created.Links.Chat, "https://wa.me/+628123456789?text="))
	assert.Equal(t, "/v1/bookings/"+created.ID+"/calendar", created.Links.Calendar)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing name", body: strings.Replace(createBody, `"Ada"`, `""`, 1), want: "name is required"},
		{name: "party too large", body: strings.Replace(createBody, `"party_size": 2`, `"party_size": 20`, 1), want: "party_size must be less than or equal to 12"},
		{name: "malformed", body: `{"name":`, want: "failed to decode request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/v1/bookings", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[any](t, rec).Error, tt.want)
		})
	}
}

func TestHandler_Lifecycle(t *testing.T) {
	router := newRouter(t)
	created := create(t, router)
	path := "/v1/bookings/" + created.ID

	rec := do(t, router, http.MethodPatch, path, `{"time":"20:00","party_size":4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[dto.BookingResponse](t, rec).Data
	assert.Equal(t, "20:00", updated.Time)
	assert.Equal(t, 4, updated.PartySize)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	rec = do(t, router, http.MethodPatch, path, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, path+"/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Completed", decode[dto.BookingResponse](t, rec).Data.Status)

	rec = do(t, router, http.MethodPost, path+"/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cancelled", decode[dto.BookingResponse](t, rec).Data.Status)

	rec = do(t, router, http.MethodPost, path+"/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cancelled", decode[dto.BookingResponse](t, rec).Data.Status)
}

func TestHandler_GetBookings(t *testing.T) {
	router := newRouter(t)

	first := create(t, router)
	second := create(t, router)
	do(t, router, http.MethodPost, "/v1/bookings/"+first.ID+"/cancel", "")

	rec := do(t, router, http.MethodGet, "/v1/bookings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	all := decode[dto.GetBookingsResponse](t, rec).Data
	assert.Equal(t, 2, all.TotalData)
	assert.True(t, all.Persistent)
	require.Len(t, all.Bookings, 2)
	assert.Equal(t, second.ID, all.Bookings[0].ID)

	rec = do(t, router, http.MethodGet, "/v1/bookings?status=Cancelled", "")
	cancelled := decode[dto.GetBookingsResponse](t, rec).Data
	require.Len(t, cancelled.Bookings, 1)
	assert.Equal(t, first.ID, cancelled.Bookings[0].ID)

	rec = do(t, router, http.MethodGet, "/v1/bookings?sort_dir=asc&limit=1", "")
	oldest := decode[dto.GetBookingsResponse](t, rec).Data
	require.Len(t, oldest.Bookings, 1)
	assert.Equal(t, first.ID, oldest.Bookings[0].ID)
	assert.Equal(t, 2, oldest.TotalPage)

	rec = do(t, router, http.MethodGet, "/v1/bookings?status=Lost", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_NotFound(t *testing.T) {
	router := newRouter(t)

	for _, tt := range []struct{ method, path string }{
		{http.MethodGet, "/v1/bookings/BK-missing"},
		{http.MethodPatch, "/v1/bookings/BK-missing"},
		{http.MethodPost, "/v1/bookings/BK-missing/cancel"},
		{http.MethodPost, "/v1/bookings/BK-missing/complete"},
		{http.MethodGet, "/v1/bookings/BK-missing/message"},
		{http.MethodGet, "/v1/bookings/BK-missing/calendar"},
		{http.MethodPost, "/v1/bookings/BK-missing/calendar/publish"},
	} {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, `{"name":"x"}`)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "booking not found", decode[any](t, rec).Error)
		})
	}
}

func TestHandler_Handoff(t *testing.T) {
	router := newRouter(t)
	created := create(t, router)
	path := "/v1/bookings/" + created.ID

	rec := do(t, router, http.MethodGet, path+"/message", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeText, rec.Header().Get(constant.RequestHeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Hi! I'd love to confirm a booking.\n\nName: Ada\n"))
	assert.True(t, strings.HasSuffix(rec.Body.String(), "Booking ID: "+created.ID))

	rec = do(t, router, http.MethodGet, path+"/calendar", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeCalendar, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Contains(t, rec.Header().Get(constant.RequestHeaderContentDisposition), created.ID+"-Our-House.ics")
	assert.Contains(t, rec.Body.String(), "UID:"+created.ID+"@tavola")

	rec = do(t, router, http.MethodPost, path+"/calendar/publish", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "calendar publishing is not enabled", decode[any](t, rec).Error)
}

func TestHandler_ExportBookings(t *testing.T) {
	router := newRouter(t)
	create(t, router)

	rec := do(t, router, http.MethodGet, "/v1/bookings/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Contains(t, rec.Header().Get(constant.RequestHeaderContentDisposition), "bookings_our_house_")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")
}
