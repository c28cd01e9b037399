package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"tavola/infras/metrics"
	"tavola/infras/otel/mocks"
	s3Mocks "tavola/infras/s3/mocks"
	bookingModel "tavola/internal/domains/booking/model"
	"tavola/internal/domains/booking/repository"
	bookingService "tavola/internal/domains/booking/service"
	"tavola/internal/domains/review/model/dto"
	"tavola/internal/domains/review/service"
	"tavola/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (service.Review, bookingService.Booking) {
	t.Helper()

	bookings := bookingService.New(repository.NewMemory(), metrics.New(), mocks.NewOtel())

	return service.New(bookings, nil, mocks.NewOtel()), bookings
}

func draft(name string) bookingModel.Draft {
	return bookingModel.Draft{
		Name:      name,
		Phone:     "+15551234567",
		Service:   "Lounge Experience",
		Date:      "2025-03-01",
		Time:      "19:00",
		PartySize: 2,
		Seating:   bookingModel.SeatingIndoor,
	}
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("completed booking", func(t *testing.T) {
		reviews, bookings := setup(t)

		b := bookings.AddBooking(ctx, draft("Ada"))
		bookings.MarkCompleted(ctx, b.ID)

		res, err := reviews.Create(ctx, dto.CreateReviewRequest{BookingID: b.ID, Rating: 4.5, Comment: "Lovely"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Ada", res.Name)
		assert.Equal(t, b.ID, res.BookingID)
		assert.False(t, res.Moderated)
	})

	t.Run("second review for the same booking", func(t *testing.T) {
		reviews, bookings := setup(t)

		b := bookings.AddBooking(ctx, draft("Ada"))
		bookings.MarkCompleted(ctx, b.ID)

		_, err := reviews.Create(ctx, dto.CreateReviewRequest{BookingID: b.ID, Rating: 4, Comment: "Lovely"})
		require.NoError(t, err)

		_, err = reviews.Create(ctx, dto.CreateReviewRequest{BookingID: b.ID, Rating: 1, Comment: "Changed my mind"})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, 1, reviews.GetAll(ctx, true).Count)
	})

	t.Run("upcoming booking", func(t *testing.T) {
		reviews, bookings := setup(t)

		b := bookings.AddBooking(ctx, draft("Ada"))

		_, err := reviews.Create(ctx, dto.CreateReviewRequest{BookingID: b.ID, Rating: 5, Comment: "Early"})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("cancelled after completion", func(t *testing.T) {
		reviews, bookings := setup(t)

		b := bookings.AddBooking(ctx, draft("Ada"))
		bookings.MarkCompleted(ctx, b.ID)
		bookings.CancelBooking(ctx, b.ID)

		_, err := reviews.Create(ctx, dto.CreateReviewRequest{BookingID: b.ID, Rating: 5, Comment: "Late"})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		reviews, _ := setup(t)

		_, err := reviews.Create(ctx, dto.CreateReviewRequest{BookingID: "BK-missing", Rating: 5, Comment: "?"})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestReviewService_GetAll(t *testing.T) {
	ctx := context.Background()
	reviews, bookings := setup(t)

	empty := reviews.GetAll(ctx, false)
	assert.Empty(t, empty.Reviews)
	assert.Zero(t, empty.Average)

	ratings := []float64{5, 4, 3.5}
	ids := make([]string, len(ratings))

	for i, rating := range ratings {
		b := bookings.AddBooking(ctx, draft("guest"))
		bookings.MarkCompleted(ctx, b.ID)

		res, err := reviews.Create(ctx, dto.CreateReviewRequest{BookingID: b.ID, Rating: rating, Comment: "ok"})
		require.NoError(t, err)

		ids[i] = res.ID
	}

	all := reviews.GetAll(ctx, false)
	require.Len(t, all.Reviews, 3)
	assert.Equal(t, ids[2], all.Reviews[0].ID, "newest first")
	assert.Equal(t, 3, all.Count)
	assert.InDelta(t, 4.2, all.Average, 0.001)

	moderated, err := reviews.ToggleModeration(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, moderated.Moderated)

	public := reviews.GetAll(ctx, false)
	assert.Len(t, public.Reviews, 2)
	assert.Equal(t, 3, public.Count)

	assert.Len(t, reviews.GetAll(ctx, true).Reviews, 3)

	restored, err := reviews.ToggleModeration(ctx, ids[0])
	require.NoError(t, err)
	assert.False(t, restored.Moderated)
	assert.Len(t, reviews.GetAll(ctx, false).Reviews, 3)

	_, err = reviews.ToggleModeration(ctx, "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func photo(contentType string, data []byte) dto.UploadPhotoRequest {
	return dto.UploadPhotoRequest{
		Photo: &multipart.FileHeader{
			Filename: "table.png",
			Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
			Size:     int64(len(data)),
		},
		PhotoFile: memFile{bytes.NewReader(data)},
	}
}

func TestReviewService_UploadPhoto(t *testing.T) {
	ctx := context.Background()
	data := []byte("\x89PNG fake image")

	t.Run("uploads to object storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := s3Mocks.NewMockS3(ctrl)

		storage.EXPECT().
			UploadFileBytes(gomock.Any(), "", "reviews", gomock.Any(), "image/png", data).
			DoAndReturn(func(_ context.Context, _, directory, fileName, _ string, _ []byte) (string, error) {
				return "https://cdn.example.com/" + directory + "/" + fileName, nil
			})

		reviews := service.New(nil, storage, mocks.NewOtel())

		res, err := reviews.UploadPhoto(ctx, photo("image/png", data))
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9a-f-]{36}\.png$`, res.FileName)
		assert.Equal(t, "https://cdn.example.com/reviews/"+res.FileName, res.URL)
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := s3Mocks.NewMockS3(ctrl)

		storage.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket missing"))

		_, err := service.New(nil, storage, mocks.NewOtel()).UploadPhoto(ctx, photo("image/jpeg", data))
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	tests := []struct {
		name     string
		req      dto.UploadPhotoRequest
		wantCode int
	}{
		{
			name:     "unsupported type",
			req:      photo("application/pdf", data),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "too large",
			req:      photo("image/webp", make([]byte, service.MaxPhotoBytes+1)),
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			_, err := service.New(nil, s3Mocks.NewMockS3(ctrl), mocks.NewOtel()).UploadPhoto(ctx, tt.req)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}

	t.Run("storage disabled", func(t *testing.T) {
		_, err := service.New(nil, nil, mocks.NewOtel()).UploadPhoto(ctx, photo("image/png", data))
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}
