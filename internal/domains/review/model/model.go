package model

import "time"

const EntityName = "review"

// Review is guest feedback on a completed booking. Moderated reviews stay
// in the list but are hidden from the public wall.
type Review struct {
	ID        string
	BookingID string
	Name      string
	Rating    float64
	Comment   string
	Photo     string
	Moderated bool
	CreatedAt time.Time
}

// Summary is the average over every review, moderated or not.
type Summary struct {
	Average float64
	Count   int
}
