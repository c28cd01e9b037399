package service

import (
	"slices"
	"time"

	"tavola/internal/domains/availability/model"
	"tavola/internal/domains/availability/model/dto"
	bookingModel "tavola/internal/domains/booking/model"
	"tavola/shared/constant"
	"tavola/shared/timezone"
)

const labelLayout = "3:04 PM"

// Availability answers slot queries against the current time.
type Availability interface {
	Slots(req dto.GetSlotsRequest) dto.GetSlotsResponse
}

type serviceImpl struct {
	now func() time.Time
	loc *time.Location
}

// New returns a calculator reading the clock on every call. A nil clock
// means timezone.Now and a nil location means the app timezone.
func New(now func() time.Time, loc *time.Location) Availability {
	if now == nil {
		now = timezone.Now
	}

	if loc == nil {
		loc = timezone.GetLocation()
	}

	return &serviceImpl{
		now: now,
		loc: loc,
	}
}

func (s *serviceImpl) Slots(req dto.GetSlotsRequest) dto.GetSlotsResponse {
	slots := ComputeSlots(req.Date, req.Service, s.now(), s.loc)

	return dto.GetSlotsResponse{
		Date:      req.Date,
		Service:   req.Service,
		Slots:     slots,
		Exhausted: Exhausted(slots),
	}
}

// ComputeSlots returns the nine grid slots for a naive date read in loc.
// Without a date every slot is open. A date that does not parse skips the
// past check but still withholds premium slots.
func ComputeSlots(date, service string, now time.Time, loc *time.Location) []model.TimeSlot {
	values := model.Grid()
	slots := make([]model.TimeSlot, len(values))

	for i, value := range values {
		slots[i] = model.TimeSlot{
			Value:     value,
			Label:     Label(value),
			Available: available(value, date, service, now, loc),
		}
	}

	return slots
}

func available(value, date, service string, now time.Time, loc *time.Location) bool {
	if date == "" {
		return true
	}

	if start, err := timezone.Wall(date, value, loc); err == nil && start.Before(now) {
		return false
	}

	if bookingModel.ServiceName(service).Premium() && model.IsWithheld(value) {
		return false
	}

	return true
}

// Exhausted reports whether no slot can be booked.
func Exhausted(slots []model.TimeSlot) bool {
	return !slices.ContainsFunc(slots, func(s model.TimeSlot) bool { return s.Available })
}

// Label renders a grid value such as "17:30" as "5:30 PM".
func Label(value string) string {
	t, err := time.Parse(constant.ClockFormat, value)
	if err != nil {
		return value
	}

	return t.Format(labelLayout)
}
