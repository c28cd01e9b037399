package availability_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tavola/infras/otel/mocks"
	"tavola/internal/domains/availability/model/dto"
	"tavola/internal/domains/availability/service"
	"tavola/internal/handlers/availability"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_GetSlots(t *testing.T) {
	now := time.Date(2025, 3, 1, 21, 30, 0, 0, time.UTC)
	handler := availability.New(service.New(func() time.Time { return now }, time.UTC), mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	tests := []struct {
		name          string
		query         string
		code          int
		wantExhausted bool
		wantOpen      int
	}{
		{name: "browsing", query: "", code: http.StatusOK, wantOpen: 9},
		{name: "tomorrow premium", query: "?date=2025-03-02&service=Chef%27s+Tasting+-+5+course", code: http.StatusOK, wantOpen: 7},
		{name: "today after closing", query: "?date=2025-03-01", code: http.StatusOK, wantExhausted: true},
		{name: "bad date", query: "?date=01-03-2025", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/slots"+tt.query, nil))

			require.Equal(t, tt.code, rec.Code, rec.Body.String())

			if tt.code != http.StatusOK {
				return
			}

			var body struct {
				Data dto.GetSlotsResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			require.Len(t, body.Data.Slots, 9)
			assert.Equal(t, "5:00 PM", body.Data.Slots[0].Label)
			assert.Equal(t, tt.wantExhausted, body.Data.Exhausted)

			open := 0

			for _, s := range body.Data.Slots {
				if s.Available {
					open++
				}
			}

			assert.Equal(t, tt.wantOpen, open)
		})
	}
}
