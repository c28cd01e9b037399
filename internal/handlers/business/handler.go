package business

import (
	"net/http"

	"tavola/internal/domains/handoff/service"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	handoff service.Handoff
}

func New(handoff service.Handoff) Handler {
	return Handler{
		handoff: handoff,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/business", handler.GetBusiness)
}

// GetBusiness returns the venue identity with its chat and map links.
// @Summary Get business profile
// @Tags Business
// @Produce json
// @Success 200 {object} response.Data[dto.BusinessResponse]
// @Router /v1/business [get]
func (handler *Handler) GetBusiness(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.handoff.Business())
}
