package service

import (
	"context"
	"fmt"
	"time"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/infras/s3"
	bookingModel "tavola/internal/domains/booking/model"
	bookingDto "tavola/internal/domains/booking/model/dto"
	"tavola/internal/domains/handoff/model"
	"tavola/internal/domains/handoff/model/dto"
	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	calendarDirectory = "calendars"
	calendarPathFmt   = "/v1/bookings/%s/calendar"
	featurePublish    = "calendar publishing"
)

// Handoff renders bookings for channels outside the service: chat, maps
// and calendars.
type Handoff interface {
	Message(b bookingModel.Booking) string
	CalendarEvent(b bookingModel.Booking) (model.CalendarEvent, error)
	CalendarFileName(b bookingModel.Booking) string
	Links(b bookingModel.Booking) bookingDto.LinksResponse
	Business() dto.BusinessResponse
	PublishCalendar(ctx context.Context, b bookingModel.Booking) (dto.PublishCalendarResponse, error)
}

type serviceImpl struct {
	cfg  *config.Config
	s3   s3.S3
	otel otel.Otel
	now  func() time.Time
	loc  *time.Location
}

// New wires the formatter to the business identity in cfg. A nil s3 turns
// calendar publishing off.
func New(cfg *config.Config, storage s3.S3, otl otel.Otel) Handoff {
	return &serviceImpl{
		cfg:  cfg,
		s3:   storage,
		otel: otl,
		now:  timezone.Now,
		loc:  timezone.GetLocation(),
	}
}

func (s *serviceImpl) venue() Venue {
	return Venue{
		Name:     s.cfg.App.Business.DisplayName(),
		Location: s.cfg.App.Business.DisplayLocation(),
	}
}

func (s *serviceImpl) Message(b bookingModel.Booking) string {
	return FormatHandoffMessage(b)
}

func (s *serviceImpl) CalendarEvent(b bookingModel.Booking) (model.CalendarEvent, error) {
	event, err := FormatCalendarEvent(b, s.venue(), s.cfg.App.Name, s.now(), s.loc)
	if err != nil {
		return event, failure.BadRequest(err) //nolint:wrapcheck
	}

	return event, nil
}

func (s *serviceImpl) CalendarFileName(b bookingModel.Booking) string {
	return CalendarFileName(b.ID, s.venue().Name)
}

func (s *serviceImpl) Links(b bookingModel.Booking) bookingDto.LinksResponse {
	business := s.cfg.App.Business

	return bookingDto.LinksResponse{
		Chat:     ChatLink(business.ChatURL, business.OwnerPhone, FormatHandoffMessage(b)),
		Calendar: fmt.Sprintf(calendarPathFmt, b.ID),
		Map:      MapLink(business.MapURL, s.venue()),
	}
}

func (s *serviceImpl) Business() dto.BusinessResponse {
	business := s.cfg.App.Business
	venue := s.venue()

	return dto.BusinessResponse{
		Name:     venue.Name,
		Location: venue.Location,
		Type:     business.Type,
		Phone:    SanitizePhone(business.OwnerPhone),
		Services: business.Services,
		ChatLink: ChatLink(business.ChatURL, business.OwnerPhone, ""),
		MapLink:  MapLink(business.MapURL, venue),
	}
}

func (s *serviceImpl) PublishCalendar(ctx context.Context, b bookingModel.Booking) (res dto.PublishCalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PublishCalendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if s.s3 == nil {
		return res, failure.Unavailable(featurePublish) //nolint:wrapcheck
	}

	event, err := s.CalendarEvent(b)
	if err != nil {
		return res, err
	}

	fileName := s.CalendarFileName(b)
	scope.SetAttribute("file_name", fileName)

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, calendarDirectory, fileName, constant.ContentTypeCalendar, []byte(event.ICS()))
	if err != nil {
		log.Error().Err(err).Str("id", b.ID).Msg("failed to publish calendar event")

		return res, fmt.Errorf("failed to publish calendar event: %w", err)
	}

	res.URL = url
	res.FileName = fileName

	return res, nil
}
