package model

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

const (
	EventDuration = 2 * time.Hour

	UIDDomain = "tavola"
)

// CalendarEvent is a single reservation rendered for a guest's calendar.
type CalendarEvent struct {
	ProductID   string
	UID         string
	Stamp       time.Time
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Location    string
}

// ICS serialises the event as a one-event VCALENDAR document. Times are
// written in UTC basic format.
func (e CalendarEvent) ICS() string {
	cal := ics.NewCalendarFor(e.ProductID)

	event := cal.AddEvent(e.UID)
	event.SetDtStampTime(e.Stamp.UTC())
	event.SetStartAt(e.Start.UTC())
	event.SetEndAt(e.End.UTC())
	event.SetSummary(e.Summary)
	event.SetDescription(e.Description)
	event.SetLocation(e.Location)

	return cal.Serialize()
}
