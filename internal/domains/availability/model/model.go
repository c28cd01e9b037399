package model

// grid is the evening seating grid, in order.
var grid = [...]string{"17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00"}

// withheld slots are not offered for premium services.
var withheld = [...]string{"17:00", "20:30"}

// Grid returns a copy of the seating grid.
func Grid() []string {
	return append([]string(nil), grid[:]...)
}

// Withheld returns a copy of the slots kept back from premium services.
func Withheld() []string {
	return append([]string(nil), withheld[:]...)
}

// IsWithheld reports whether value is kept back from premium services.
func IsWithheld(value string) bool {
	for _, w := range withheld {
		if w == value {
			return true
		}
	}

	return false
}

// TimeSlot is derived on every request and never stored.
type TimeSlot struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}
