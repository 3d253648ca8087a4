//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"

	bookingHandler "lodge/internal/handlers/booking"
	guestHandler "lodge/internal/handlers/guest"
	roomHandler "lodge/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.NewAvailability,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
