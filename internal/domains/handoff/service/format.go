package service

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	bookingModel "tavola/internal/domains/booking/model"
	"tavola/internal/domains/handoff/model"
	"tavola/shared/constant"
	"tavola/shared/timezone"
)

const (
	greeting       = "Hi! I'd love to confirm a booking."
	dateLayout     = "Monday, Jan 2"
	calendarSuffix = ".ics"
)

var whitespace = regexp.MustCompile(`\s+`)

// FormatHandoffMessage renders the chat confirmation text. The email and
// notes lines are left out when empty.
func FormatHandoffMessage(b bookingModel.Booking) string {
	lines := []string{
		greeting,
		"",
		"Name: " + b.Name,
		"Contact: " + b.Phone,
	}

	if b.Email != "" {
		lines = append(lines, "Email: "+b.Email)
	}

	lines = append(lines,
		"Service: "+string(b.Service),
		"Date: "+formatDate(b.Date),
		"Time: "+b.Time,
		fmt.Sprintf("Party: %d guests", b.PartySize),
		"Seating: "+string(b.Seating),
	)

	if b.Notes != "" {
		lines = append(lines, "Notes: "+b.Notes)
	}

	lines = append(lines, "", "Booking ID: "+b.ID)

	return strings.Join(lines, "\n")
}

func formatDate(date string) string {
	t, err := time.Parse(constant.DateFormat, date)
	if err != nil {
		return date
	}

	return t.Format(dateLayout)
}

// Venue is the business identity printed on calendar events and links.
type Venue struct {
	Name     string
	Location string
}

// FormatCalendarEvent builds a two hour event starting at the booking's
// date and time read in loc.
func FormatCalendarEvent(b bookingModel.Booking, venue Venue, productID string, stamp time.Time, loc *time.Location) (model.CalendarEvent, error) {
	start, err := timezone.Wall(b.Date, b.Time, loc)
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("failed to schedule %s %s: %w", bookingModel.EntityName, b.ID, err)
	}

	return model.CalendarEvent{
		ProductID:   productID,
		UID:         b.ID + "@" + model.UIDDomain,
		Stamp:       stamp,
		Start:       start,
		End:         start.Add(model.EventDuration),
		Summary:     venue.Name + " - " + string(b.Service),
		Description: FormatHandoffMessage(b),
		Location:    venue.Name + " - " + venue.Location,
	}, nil
}

// CalendarFileName names the download after the booking and business,
// with whitespace runs turned into dashes.
func CalendarFileName(id, business string) string {
	return id + "-" + whitespace.ReplaceAllString(business, "-") + calendarSuffix
}

// SanitizePhone keeps digits and a single leading plus sign.
func SanitizePhone(phone string) string {
	var b strings.Builder

	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	if b.String() == "+" {
		return ""
	}

	return b.String()
}

// Encode percent-encodes text as a query value, with spaces as %20.
func Encode(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// ChatLink builds a chat deep link carrying message. It is empty when the
// phone has no digits.
func ChatLink(base, phone, message string) string {
	number := SanitizePhone(phone)
	if number == "" {
		return ""
	}

	link := strings.TrimSuffix(base, "/") + "/" + number
	if message == "" {
		return link
	}

	return link + "?text=" + Encode(message)
}

// MapLink builds a directions link to "name location".
func MapLink(base string, venue Venue) string {
	return base + Encode(venue.Name+" "+venue.Location)
}
