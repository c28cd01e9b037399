//go:build wireinject
// +build wireinject

package di

import (
	"tavola/config"
	"tavola/infras/metrics"
	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/infras/redis"
	"tavola/infras/s3"
	"tavola/shared/cache"
	"tavola/transport/http"
	"tavola/transport/http/middleware"
	"tavola/transport/http/router"

	bookingRepository "tavola/internal/domains/booking/repository"
	handoffService "tavola/internal/domains/handoff/service"
	reviewService "tavola/internal/domains/review/service"

	availabilityHandler "tavola/internal/handlers/availability"
	bookingHandler "tavola/internal/handlers/booking"
	businessHandler "tavola/internal/handlers/business"
	reviewHandler "tavola/internal/handlers/review"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	provideBookingService,
)

var domains = wire.NewSet(
	bookingDomain,
	provideAvailabilityService,
	handoffService.New,
	reviewService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	businessHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
