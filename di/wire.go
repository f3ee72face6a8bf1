//go:build wireinject
// +build wireinject

package di

import (
	"parkease/config"
	"parkease/infras/kafka"
	"parkease/infras/otel"
	"parkease/infras/postgres"
	"parkease/infras/redis"
	"parkease/policies"
	"parkease/shared/cache"
	"parkease/transport/http"
	"parkease/transport/http/middleware"
	"parkease/transport/http/router"

	authService "parkease/internal/domains/auth/service"
	bookingRepository "parkease/internal/domains/booking/repository"
	bookingService "parkease/internal/domains/booking/service"
	userRepository "parkease/internal/domains/user/repository"
	userService "parkease/internal/domains/user/service"

	authHandler "parkease/internal/handlers/auth"
	bookingHandler "parkease/internal/handlers/booking"
	healthHandler "parkease/internal/handlers/health"
	userHandler "parkease/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	policies.Get,
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	userHandler.New,
	healthHandler.New,
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
