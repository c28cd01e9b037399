package model

import (
	"errors"
	"slices"
	"strings"
	"time"

	"tavola/config"
)

const (
	EntityName = "booking"

	IDPrefix = "BK"
)

type Status string

const (
	StatusUpcoming  Status = "Upcoming"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

var errUnknownStatus = errors.New("unknown booking status")

func (s Status) Validate(_ *config.Config) error {
	switch s {
	case StatusUpcoming, StatusCompleted, StatusCancelled:
		return nil
	}

	return errUnknownStatus
}

type Seating string

const (
	SeatingIndoor       Seating = "Indoor"
	SeatingOutdoor      Seating = "Outdoor"
	SeatingChefsCounter Seating = "Chef's Counter"
)

var errUnknownSeating = errors.New("unknown seating option")

func (s Seating) Validate(_ *config.Config) error {
	switch s {
	case SeatingIndoor, SeatingOutdoor, SeatingChefsCounter:
		return nil
	}

	return errUnknownSeating
}

// ServiceName is one of the experiences listed in the business configuration.
type ServiceName string

const premiumServiceMarker = "Chef's"

var errUnknownService = errors.New("unknown service")

func (s ServiceName) Validate(cfg *config.Config) error {
	if slices.Contains(cfg.App.Business.Services, string(s)) {
		return nil
	}

	return errUnknownService
}

// Premium reports whether the service is the tasting experience that
// withholds the first and last seating of the evening.
func (s ServiceName) Premium() bool {
	return strings.Contains(string(s), premiumServiceMarker)
}

// Booking is one reservation. Email and Notes are omitted from the
// storage record when empty.
type Booking struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Email     string      `json:"email,omitempty"`
	Service   ServiceName `json:"service"`
	Date      string      `json:"date"`
	Time      string      `json:"time"`
	PartySize int         `json:"partySize"`
	Seating   Seating     `json:"seating"`
	Notes     string      `json:"notes,omitempty"`
	Status    Status      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Draft carries every Booking field the caller controls.
type Draft struct {
	Name      string
	Phone     string
	Email     string
	Service   ServiceName
	Date      string
	Time      string
	PartySize int
	Seating   Seating
	Notes     string
}

// ToBooking stamps a draft with its identity and initial state.
func (d Draft) ToBooking(id string, createdAt time.Time) Booking {
	return Booking{
		ID:        id,
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		Service:   d.Service,
		Date:      d.Date,
		Time:      d.Time,
		PartySize: d.PartySize,
		Seating:   d.Seating,
		Notes:     d.Notes,
		Status:    StatusUpcoming,
		CreatedAt: createdAt,
	}
}

// Update is a shallow patch; nil fields are left untouched. ID and
// CreatedAt cannot be patched.
type Update struct {
	Name      *string
	Phone     *string
	Email     *string
	Service   *ServiceName
	Date      *string
	Time      *string
	PartySize *int
	Seating   *Seating
	Notes     *string
	Status    *Status
}

// IsEmpty reports whether the update would change nothing.
func (u Update) IsEmpty() bool {
	return u == Update{}
}

// Apply returns b with every non-nil field of u merged in.
func (u Update) Apply(b Booking) Booking {
	if u.Name != nil {
		b.Name = *u.Name
	}

	if u.Phone != nil {
		b.Phone = *u.Phone
	}

	if u.Email != nil {
		b.Email = *u.Email
	}

	if u.Service != nil {
		b.Service = *u.Service
	}

	if u.Date != nil {
		b.Date = *u.Date
	}

	if u.Time != nil {
		b.Time = *u.Time
	}

	if u.PartySize != nil {
		b.PartySize = *u.PartySize
	}

	if u.Seating != nil {
		b.Seating = *u.Seating
	}

	if u.Notes != nil {
		b.Notes = *u.Notes
	}

	if u.Status != nil {
		b.Status = *u.Status
	}

	return b
}

// Snapshot is the durable storage record.
type Snapshot struct {
	Bookings []Booking `json:"bookings"`
}
