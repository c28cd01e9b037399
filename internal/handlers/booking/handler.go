package booking

import (
	"net/http"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/internal/domains/booking/export"
	"tavola/internal/domains/booking/model"
	"tavola/internal/domains/booking/model/dto"
	"tavola/internal/domains/booking/service"
	handoffDto "tavola/internal/domains/handoff/model/dto"
	handoffService "tavola/internal/domains/handoff/service"
	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/shared/timezone"
	"tavola/shared/validator"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	handoff handoffService.Handoff
	config  *config.Config
	otel    otel.Otel
}

func New(service service.Booking, handoff handoffService.Handoff, config *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		handoff: handoff,
		config:  config,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/export", handler.ExportBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/complete", handler.CompleteBooking)
		routerGroup.Get("/{id}/message", handler.GetMessage)
		routerGroup.Get("/{id}/calendar", handler.GetCalendar)
		routerGroup.Post("/{id}/calendar/publish", handler.PublishCalendar)
	})
}

func (handler *Handler) detail(b model.Booking) dto.BookingResponse {
	var res dto.BookingResponse

	res.FromModel(b)
	res.WithHandoff(handler.handoff.Message(b), handler.handoff.Links(b))

	return res
}

func (handler *Handler) find(w http.ResponseWriter, r *http.Request) (model.Booking, bool) {
	id := chi.URLParam(r, constant.RequestParamID)

	booking, ok := handler.service.Get(r.Context(), id)
	if !ok {
		log.Debug().Str("id", id).Msg("booking not found")
		response.WithError(w, failure.BookingNotFound)

		return model.Booking{}, false
	}

	return booking, true
}

// CreateBooking places a new reservation.
// @Summary Create a booking
// @Description Create a booking in the Upcoming state. The response carries the handoff message and deep links.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking := handler.service.AddBooking(ctx, req.ToDraft())

	scope.AddEvent("Booking created " + booking.ID)

	response.WithJSON(w, http.StatusCreated, handler.detail(booking))
}

// GetBookings lists the session's bookings, newest first.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Param status query string false "Filter by status (Upcoming, Completed, Cancelled)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort_dir query string false "ASC for oldest first"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	req := dto.ListBookingsRequest{Status: model.Status(r.URL.Query().Get(constant.RequestParamStatus))}
	req.FromRequest(r, true)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res := dto.GetBookingsResponse{Persistent: handler.service.Persistent()}
	res.FromModels(req.Filter(handler.service.Bookings(ctx)), req.Page, req.Limit)

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingByID returns a booking with its handoff message and links.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, ok := handler.find(w, r)
	if !ok {
		return
	}

	response.WithJSON(w, http.StatusOK, handler.detail(booking))
}

// UpdateBooking reschedules or edits a booking.
// @Summary Update a booking
// @Description Shallow update. Status may be overwritten here without transition checks.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	booking, ok := handler.find(w, r)
	if !ok {
		return
	}

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	update := req.ToUpdate()
	if update.IsEmpty() {
		response.WithError(w, failure.EmptyUpdate)

		return
	}

	handler.service.UpdateBooking(ctx, booking.ID, update)

	handler.respondCurrent(w, r, booking.ID)
}

// CancelBooking cancels a booking whatever its current status.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	booking, ok := handler.find(w, r)
	if !ok {
		return
	}

	handler.service.CancelBooking(ctx, booking.ID)

	handler.respondCurrent(w, r, booking.ID)
}

// CompleteBooking marks a booking as completed whatever its current status.
// @Summary Complete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/complete [post]
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteBooking")
	defer scope.End()

	booking, ok := handler.find(w, r)
	if !ok {
		return
	}

	handler.service.MarkCompleted(ctx, booking.ID)

	handler.respondCurrent(w, r, booking.ID)
}

func (handler *Handler) respondCurrent(w http.ResponseWriter, r *http.Request, id string) {
	booking, ok := handler.service.Get(r.Context(), id)
	if !ok {
		response.WithError(w, failure.BookingNotFound)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.detail(booking))
}

// GetMessage returns the plain text chat handoff message.
// @Summary Get the handoff message
// @Tags Booking
// @Produce plain
// @Param id path string true "Booking ID"
// @Success 200 {string} string
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/message [get]
func (handler *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	booking, ok := handler.find(w, r)
	if !ok {
		return
	}

	response.WithText(w, http.StatusOK, handler.handoff.Message(booking))
}

// GetCalendar downloads the booking as an iCalendar file.
// @Summary Download calendar event
// @Tags Booking
// @Produce text/calendar
// @Param id path string true "Booking ID"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/calendar [get]
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	booking, ok := handler.find(w, r)
	if !ok {
		return
	}

	event, err := handler.handoff.CalendarEvent(booking)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", booking.ID).Msg("failed to build calendar event")

		response.WithError(w, err)

		return
	}

	response.WithAttachment(w, constant.ContentTypeCalendar, handler.handoff.CalendarFileName(booking), []byte(event.ICS()))
}

// PublishCalendar uploads the calendar event to object storage.
// @Summary Publish calendar event
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[handoffDto.PublishCalendarResponse]
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/{id}/calendar/publish [post]
func (handler *Handler) PublishCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublishCalendar")
	defer scope.End()

	booking, ok := handler.find(w, r)
	if !ok {
		return
	}

	var (
		res handoffDto.PublishCalendarResponse
		err error
	)

	if res, err = handler.handoff.PublishCalendar(ctx, booking); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Calendar published " + res.URL)

	response.WithJSON(w, http.StatusOK, res)
}

// ExportBookings downloads every booking as an Excel workbook.
// @Summary Export bookings
// @Tags Booking
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} response.Error
// @Router /v1/bookings/export [get]
func (handler *Handler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportBookings")
	defer scope.End()

	workbook, err := export.Workbook(handler.service.Bookings(ctx), timezone.GetLocation())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export bookings")

		response.WithError(w, failure.InternalError(err))

		return
	}

	fileName := export.FileName(handler.config.App.Business.DisplayName(), timezone.Now())

	response.WithAttachment(w, constant.ContentTypeXLSX, fileName, workbook)
}
