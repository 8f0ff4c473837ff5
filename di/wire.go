//go:build wireinject
// +build wireinject

package di

import (
	"bookinn/config"
	"bookinn/infras/jwt"
	"bookinn/infras/kafka"
	"bookinn/infras/otel"
	"bookinn/infras/postgres"
	"bookinn/infras/redis"
	"bookinn/internal/events"
	"bookinn/permissions"
	"bookinn/shared/cache"
	"bookinn/transport/http"
	"bookinn/transport/http/middleware"
	"bookinn/transport/http/router"

	"github.com/google/wire"

	authService "bookinn/internal/domains/auth/service"
	bookingRepository "bookinn/internal/domains/booking/repository"
	bookingService "bookinn/internal/domains/booking/service"
	roomRepository "bookinn/internal/domains/room/repository"
	roomService "bookinn/internal/domains/room/service"
	userRepository "bookinn/internal/domains/user/repository"
	authHandler "bookinn/internal/handlers/auth"
	bookingHandler "bookinn/internal/handlers/booking"
	roomHandler "bookinn/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	permissions.Get,
)

var eventPublishers = wire.NewSet(
	events.NewBookingPublisher,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventPublishers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
