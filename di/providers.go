package di

import (
	"tavola/infras/metrics"
	"tavola/infras/otel"
	availabilityService "tavola/internal/domains/availability/service"
	bookingRepository "tavola/internal/domains/booking/repository"
	bookingService "tavola/internal/domains/booking/service"
	"tavola/shared/timezone"
)

// provideBookingService pins the store to the wall clock and random ids.
func provideBookingService(storage bookingRepository.Storage, m *metrics.Metrics, otl otel.Otel) bookingService.Booking {
	return bookingService.New(storage, m, otl)
}

func provideAvailabilityService() availabilityService.Availability {
	return availabilityService.New(timezone.Now, timezone.GetLocation())
}
