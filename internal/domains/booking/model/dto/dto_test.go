package dto_test

import (
	"testing"
	"time"

	"tavola/internal/domains/booking/model"
	"tavola/internal/domains/booking/model/dto"
	gDto "tavola/shared/dto"
	"tavola/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Name:      "Ada",
		Phone:     "+15551234567",
		Service:   "Lounge Experience",
		Date:      "2025-03-01",
		Time:      "19:00",
		PartySize: 2,
		Seating:   model.SeatingIndoor,
	}
}

func TestCreateBookingRequest_ToDraft(t *testing.T) {
	req := validCreateRequest()
	req.Notes = "birthday"

	draft := req.ToDraft()

	assert.Equal(t, "Ada", draft.Name)
	assert.Equal(t, model.ServiceName("Lounge Experience"), draft.Service)
	assert.Equal(t, "19:00", draft.Time)
	assert.Equal(t, 2, draft.PartySize)
	assert.Equal(t, model.SeatingIndoor, draft.Seating)
	assert.Equal(t, "birthday", draft.Notes)
	assert.Empty(t, draft.Email)
}

func TestCreateBookingRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.CreateBookingRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(_ *dto.CreateBookingRequest) {}},
		{name: "chef's counter seating", mutate: func(r *dto.CreateBookingRequest) { r.Seating = model.SeatingChefsCounter }},
		{name: "missing name", mutate: func(r *dto.CreateBookingRequest) { r.Name = "" }, wantErr: "name is required"},
		{name: "missing phone", mutate: func(r *dto.CreateBookingRequest) { r.Phone = "" }, wantErr: "phone is required"},
		{name: "unknown service", mutate: func(r *dto.CreateBookingRequest) { r.Service = "Brunch" }, wantErr: "service is not a recognised value"},
		{name: "unknown seating", mutate: func(r *dto.CreateBookingRequest) { r.Seating = "Rooftop" }, wantErr: "seating is not a recognised value"},
		{name: "off-grid time", mutate: func(r *dto.CreateBookingRequest) { r.Time = "16:30" }, wantErr: "time must be one of"},
		{name: "party of zero", mutate: func(r *dto.CreateBookingRequest) { r.PartySize = 0 }, wantErr: "party_size must be greater than or equal to 1"},
		{name: "party of thirteen", mutate: func(r *dto.CreateBookingRequest) { r.PartySize = 13 }, wantErr: "party_size must be less than or equal to 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUpdateBookingRequest_ToUpdate(t *testing.T) {
	clock := "20:00"
	party := 6

	req := dto.UpdateBookingRequest{Time: &clock, PartySize: &party}
	require.NoError(t, validator.ValidateStruct(&req))

	update := req.ToUpdate()
	assert.False(t, update.IsEmpty())
	assert.Equal(t, &clock, update.Time)
	assert.Equal(t, &party, update.PartySize)
	assert.Nil(t, update.Name)

	assert.True(t, (&dto.UpdateBookingRequest{}).ToUpdate().IsEmpty())

	badSeating := model.Seating("Rooftop")
	assert.Error(t, validator.ValidateStruct(&dto.UpdateBookingRequest{Seating: &badSeating}))
}

func TestListBookingsRequest_Filter(t *testing.T) {
	bookings := []model.Booking{
		{ID: "BK3", Status: model.StatusUpcoming},
		{ID: "BK2", Status: model.StatusCancelled},
		{ID: "BK1", Status: model.StatusUpcoming},
	}

	all := (&dto.ListBookingsRequest{}).Filter(bookings)
	assert.Len(t, all, 3)

	upcoming := (&dto.ListBookingsRequest{Status: model.StatusUpcoming}).Filter(bookings)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "BK3", upcoming[0].ID)
	assert.Equal(t, "BK1", upcoming[1].ID)
	assert.Len(t, bookings, 3, "input is not modified")
	assert.Equal(t, "BK2", bookings[1].ID)

	oldest := &dto.ListBookingsRequest{}
	oldest.SortDir = gDto.SortDirAsc

	reversed := oldest.Filter(bookings)
	require.Len(t, reversed, 3)
	assert.Equal(t, "BK1", reversed[0].ID)
	assert.Equal(t, "BK3", bookings[0].ID, "input is not reordered")
}

func TestBookingResponse_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 2, 20, 9, 30, 0, 0, time.UTC)
	booking := model.Booking{
		ID:        "BK0A1B2C3D4E5F",
		Name:      "Ada",
		Phone:     "+15551234567",
		Service:   "Lounge Experience",
		Date:      "2025-03-01",
		Time:      "19:00",
		PartySize: 2,
		Seating:   model.SeatingOutdoor,
		Status:    model.StatusUpcoming,
		CreatedAt: createdAt,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, booking.ID, res.ID)
	assert.Equal(t, "Lounge Experience", res.Service)
	assert.Equal(t, "Outdoor", res.Seating)
	assert.Equal(t, "Upcoming", res.Status)
	assert.Equal(t, createdAt, res.CreatedAt)
	assert.Nil(t, res.Links)

	res.WithHandoff("Hi!", dto.LinksResponse{Calendar: "/v1/bookings/BK0A1B2C3D4E5F/calendar"})
	assert.Equal(t, "Hi!", res.Message)
	require.NotNil(t, res.Links)
	assert.Equal(t, "/v1/bookings/BK0A1B2C3D4E5F/calendar", res.Links.Calendar)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := make([]model.Booking, 5)
	for i := range models {
		models[i] = model.Booking{ID: string(rune('A' + i)), Status: model.StatusUpcoming}
	}

	var res dto.GetBookingsResponse
	res.FromModels(models, 2, 2)

	assert.Equal(t, 5, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	require.Len(t, res.Bookings, 2)
	assert.Equal(t, "C", res.Bookings[0].ID)
	assert.Equal(t, "D", res.Bookings[1].ID)
}
