package timezone

import (
	"fmt"
	"time"

	"tavola/config"
	"tavola/shared/constant"

	"github.com/rs/zerolog/log"
)

var appLocation = time.UTC

func init() {
	appLocation = Load(config.Get().App.Timezone)
}

// Load resolves an IANA zone name. Empty or unknown names fall back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("APP_TIMEZONE not set, bookings are anchored to UTC")
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).
			Msg("Unknown APP_TIMEZONE, falling back to UTC. Use names like 'Asia/Jakarta' or 'Europe/Rome'")
		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(appLocation)
}

// GetLocation returns the application timezone.
func GetLocation() *time.Location {
	return appLocation
}

// Wall combines a naive "YYYY-MM-DD" date and "HH:MM" clock value into an
// instant in loc.
func Wall(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(constant.DateFormat+" "+constant.ClockFormat, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}

	return t, nil
}
