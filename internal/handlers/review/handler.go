package review

import (
	"net/http"

	"tavola/infras/otel"
	"tavola/internal/domains/review/model/dto"
	"tavola/internal/domains/review/service"
	"tavola/shared"
	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/shared/validator"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryIncludeModerated = "include_moderated"

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Post("/photos", handler.UploadPhoto)
		routerGroup.Patch("/{id}/moderation", handler.ToggleModeration)
	})
}

// CreateReview posts a review for a completed booking.
// @Summary Post a review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Data[dto.ReviewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reviews [post]
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("booking_id", req.BookingID).Msg("review rejected")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReviews lists reviews newest first with the rating summary.
// @Summary List reviews
// @Tags Review
// @Produce json
// @Param include_moderated query boolean false "Include hidden reviews"
// @Success 200 {object} response.Data[dto.GetReviewsResponse]
// @Router /v1/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	includeModerated := false
	if v := shared.ConvertStringToBool(r.URL.Query().Get(queryIncludeModerated)); v != nil {
		includeModerated = *v
	}

	response.WithJSON(w, http.StatusOK, handler.service.GetAll(r.Context(), includeModerated))
}

// ToggleModeration hides a visible review or restores a hidden one.
// @Summary Toggle review moderation
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Data[dto.ReviewResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reviews/{id}/moderation [patch]
func (handler *Handler) ToggleModeration(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleModeration")
	defer scope.End()

	res, err := handler.service.ToggleModeration(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadPhoto stores a review photo and returns its public URL.
// @Summary Upload a review photo
// @Tags Review
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "png, jpeg or webp image"
// @Success 200 {object} response.Data[dto.UploadPhotoResponse]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reviews/photos [post]
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadPhotoRequest{
		Photo:     fileHeader,
		PhotoFile: file,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadPhoto(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload review photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review photo uploaded " + res.FileName)

	response.WithJSON(w, http.StatusOK, res)
}
