package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"tavola/infras/otel"
	"tavola/infras/s3"
	bookingModel "tavola/internal/domains/booking/model"
	bookingService "tavola/internal/domains/booking/service"
	"tavola/internal/domains/review/model"
	"tavola/internal/domains/review/model/dto"
	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	errNotCompleted = "reviews are only accepted for completed bookings"
	errReviewed     = "booking has already been reviewed"
	featurePhotos   = "photo uploads"
	photoDirectory  = "reviews"
	MaxPhotoBytes   = 5 << 20
)

var (
	errPhotoTooLarge   = errors.New("photo must not exceed 5 MiB")
	errPhotoType       = errors.New("photo must be a png, jpeg or webp image")
	photoExtensionType = map[string]string{
		constant.ContentTypePNG:  ".png",
		constant.ContentTypeJPEG: ".jpg",
		constant.ContentTypeWEBP: ".webp",
	}
)

// Review is the review wall. Reviews are kept in process, newest first.
type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, includeModerated bool) dto.GetReviewsResponse
	ToggleModeration(ctx context.Context, id string) (dto.ReviewResponse, error)
	UploadPhoto(ctx context.Context, req dto.UploadPhotoRequest) (dto.UploadPhotoResponse, error)
}

type serviceImpl struct {
	mu      sync.Mutex
	reviews []model.Review

	bookings bookingService.Booking
	s3       s3.S3
	otel     otel.Otel
	now      func() time.Time
}

// New builds the review wall. storage may be nil, which disables photo
// uploads.
func New(bookings bookingService.Booking, storage s3.S3, otl otel.Otel) Review {
	return &serviceImpl{
		reviews:  []model.Review{},
		bookings: bookings,
		s3:       storage,
		otel:     otl,
		now:      timezone.Now,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, ok := s.bookings.Get(ctx, req.BookingID)
	if !ok {
		return res, failure.BookingNotFound
	}

	if booking.Status != bookingModel.StatusCompleted {
		return res, failure.Conflict(errNotCompleted) //nolint:wrapcheck
	}

	review := model.Review{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		Name:      booking.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Photo:     req.Photo,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	if slices.ContainsFunc(s.reviews, func(r model.Review) bool { return r.BookingID == booking.ID }) {
		s.mu.Unlock()

		return res, failure.Conflict(errReviewed) //nolint:wrapcheck
	}

	s.reviews = slices.Insert(s.reviews, 0, review)
	s.mu.Unlock()

	log.Info().Str("id", review.ID).Str("booking_id", booking.ID).Msg("review posted")

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetAll(_ context.Context, includeModerated bool) (res dto.GetReviewsResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := model.Summary{Count: len(s.reviews)}

	visible := make([]model.Review, 0, len(s.reviews))

	var total float64

	for _, r := range s.reviews {
		total += r.Rating

		if r.Moderated && !includeModerated {
			continue
		}

		visible = append(visible, r)
	}

	if summary.Count > 0 {
		summary.Average = total / float64(summary.Count)
	}

	res.FromModels(visible, summary)

	return res
}

func (s *serviceImpl) ToggleModeration(ctx context.Context, id string) (res dto.ReviewResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.ToggleModeration")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.reviews, func(r model.Review) bool { return r.ID == id })
	if idx < 0 {
		return res, failure.ReviewNotFound
	}

	s.reviews[idx].Moderated = !s.reviews[idx].Moderated

	log.Info().Str("id", id).Bool("moderated", s.reviews[idx].Moderated).Msg("review moderation toggled")

	res.FromModel(s.reviews[idx])

	return res, nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, req dto.UploadPhotoRequest) (res dto.UploadPhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.UploadPhoto")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if s.s3 == nil {
		return res, failure.Unavailable(featurePhotos) //nolint:wrapcheck
	}

	contentType := req.Photo.Header.Get(constant.RequestHeaderContentType)

	ext, ok := photoExtensionType[contentType]
	if !ok {
		return res, failure.BadRequest(errPhotoType) //nolint:wrapcheck
	}

	if req.Photo.Size > MaxPhotoBytes {
		return res, failure.BadRequest(errPhotoTooLarge) //nolint:wrapcheck
	}

	data, err := io.ReadAll(io.LimitReader(req.PhotoFile, MaxPhotoBytes+1))
	if err != nil {
		return res, fmt.Errorf("failed to read photo: %w", err)
	}

	if len(data) > MaxPhotoBytes {
		return res, failure.BadRequest(errPhotoTooLarge) //nolint:wrapcheck
	}

	fileName := uuid.NewString() + ext
	scope.SetAttribute("file_name", fileName)

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, photoDirectory, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Str("file_name", fileName).Msg("failed to upload review photo")

		return res, fmt.Errorf("failed to upload review photo: %w", err)
	}

	res.FromModel(url, fileName)

	return res, nil
}
