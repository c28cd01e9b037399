package dto

import (
	"slices"
	"time"

	"tavola/internal/domains/booking/model"
	"tavola/shared"
	gDto "tavola/shared/dto"
)

type CreateBookingRequest struct {
	Name      string            `json:"name"       validate:"required,max=100"`
	Phone     string            `json:"phone"      validate:"required,phone,max=30"`
	Email     string            `json:"email"      validate:"omitempty,email,max=100"`
	Service   model.ServiceName `json:"service"    validate:"required,tavola"`
	Date      string            `json:"date"       validate:"required,datetime=2006-01-02"`
	Time      string            `json:"time"       validate:"required,oneof=17:00 17:30 18:00 18:30 19:00 19:30 20:00 20:30 21:00"`
	PartySize int               `json:"party_size" validate:"gte=1,lte=12"`
	Seating   model.Seating     `json:"seating"    validate:"required,tavola"`
	Notes     string            `json:"notes"      validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToDraft() model.Draft {
	return model.Draft{
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Service:   c.Service,
		Date:      c.Date,
		Time:      c.Time,
		PartySize: c.PartySize,
		Seating:   c.Seating,
		Notes:     c.Notes,
	}
}

// UpdateBookingRequest reschedules or edits a booking. Absent fields are
// left unchanged.
type UpdateBookingRequest struct {
	Name      *string            `json:"name"       validate:"omitempty,min=1,max=100"`
	Phone     *string            `json:"phone"      validate:"omitempty,phone,max=30"`
	Email     *string            `json:"email"      validate:"omitempty,max=100"`
	Service   *model.ServiceName `json:"service"    validate:"omitempty,tavola"`
	Date      *string            `json:"date"       validate:"omitempty,datetime=2006-01-02"`
	Time      *string            `json:"time"       validate:"omitempty,oneof=17:00 17:30 18:00 18:30 19:00 19:30 20:00 20:30 21:00"`
	PartySize *int               `json:"party_size" validate:"omitempty,gte=1,lte=12"`
	Seating   *model.Seating     `json:"seating"    validate:"omitempty,tavola"`
	Notes     *string            `json:"notes"      validate:"omitempty,max=500"`
	Status    *model.Status      `json:"status"     validate:"omitempty,tavola"`
}

func (u *UpdateBookingRequest) ToUpdate() model.Update {
	return model.Update{
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		Service:   u.Service,
		Date:      u.Date,
		Time:      u.Time,
		PartySize: u.PartySize,
		Seating:   u.Seating,
		Notes:     u.Notes,
		Status:    u.Status,
	}
}

// ListBookingsRequest narrows the booking list. The store returns newest
// first; sort_dir=ASC flips that.
type ListBookingsRequest struct {
	gDto.QueryParams
	Status model.Status `json:"status" validate:"omitempty,tavola"`
}

// Filter keeps the bookings whose status matches, or all of them when no
// status is requested, in the requested order.
func (r *ListBookingsRequest) Filter(bookings []model.Booking) []model.Booking {
	res := slices.Clone(bookings)

	if r.Status != "" {
		res = slices.DeleteFunc(res, func(b model.Booking) bool {
			return b.Status != r.Status
		})
	}

	if r.OldestFirst() {
		slices.Reverse(res)
	}

	return res
}

type LinksResponse struct {
	Chat     string `json:"chat,omitempty"`
	Calendar string `json:"calendar"`
	Map      string `json:"map"`
}

type BookingResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email,omitempty"`
	Service   string         `json:"service"`
	Date      string         `json:"date"`
	Time      string         `json:"time"`
	PartySize int            `json:"party_size"`
	Seating   string         `json:"seating"`
	Notes     string         `json:"notes,omitempty"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	Message   string         `json:"message,omitempty"`
	Links     *LinksResponse `json:"links,omitempty"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Name = m.Name
	r.Phone = m.Phone
	r.Email = m.Email
	r.Service = string(m.Service)
	r.Date = m.Date
	r.Time = m.Time
	r.PartySize = m.PartySize
	r.Seating = string(m.Seating)
	r.Notes = m.Notes
	r.Status = string(m.Status)
	r.CreatedAt = m.CreatedAt
}

// WithHandoff attaches the rendered handoff message and deep links.
func (r *BookingResponse) WithHandoff(message string, links LinksResponse) {
	r.Message = message
	r.Links = &links
}

type GetBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalPage  int               `json:"total_page"`
	TotalData  int               `json:"total_data"`
	Persistent bool              `json:"persistent"`
}

// FromModels pages through models, which are already in display order.
func (r *GetBookingsResponse) FromModels(models []model.Booking, page, limit int) {
	r.TotalData = len(models)
	r.TotalPage = shared.CalculateTotalPage(len(models), limit)

	paged := shared.Paginate(models, page, limit)

	r.Bookings = make([]BookingResponse, len(paged))
	for i, mod := range paged {
		r.Bookings[i].FromModel(mod)
	}
}
