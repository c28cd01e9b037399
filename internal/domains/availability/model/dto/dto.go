package dto

import (
	"tavola/internal/domains/availability/model"
)

type GetSlotsRequest struct {
	Date    string `json:"date"    validate:"omitempty,datetime=2006-01-02"`
	Service string `json:"service" validate:"omitempty,max=100"`
}

type GetSlotsResponse struct {
	Date      string           `json:"date,omitempty"`
	Service   string           `json:"service,omitempty"`
	Slots     []model.TimeSlot `json:"slots"`
	Exhausted bool             `json:"exhausted"`
}
