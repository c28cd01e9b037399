package availability

import (
	"net/http"

	"tavola/infras/otel"
	"tavola/internal/domains/availability/model/dto"
	"tavola/internal/domains/availability/service"
	"tavola/shared/constant"
	"tavola/shared/validator"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/slots", handler.GetSlots)
}

// GetSlots returns the evening grid with an advisory open/held flag.
// @Summary Get time slots
// @Description Slots are recomputed on every call. An exhausted day is not an error.
// @Tags Availability
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD); omit to browse"
// @Param service query string false "Service name"
// @Success 200 {object} response.Data[dto.GetSlotsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/slots [get]
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	req := dto.GetSlotsRequest{
		Date:    r.URL.Query().Get(constant.RequestParamDate),
		Service: r.URL.Query().Get(constant.RequestParamService),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res := handler.service.Slots(req)
	if res.Exhausted {
		scope.AddEvent("No slots left for " + req.Date)
	}

	response.WithJSON(w, http.StatusOK, res)
}
