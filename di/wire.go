//go:build wireinject
// +build wireinject

package di

import (
	"reception/config"
	"reception/infras/jwt"
	"reception/infras/kafka"
	"reception/infras/otel"
	"reception/infras/postgres"
	"reception/infras/redis"
	"reception/infras/s3"
	"reception/internal/sweeper"
	"reception/permissions"
	"reception/shared/cache"
	"reception/transport/http"
	"reception/transport/http/middleware"
	"reception/transport/http/router"

	"github.com/google/wire"

	authService "reception/internal/domains/auth/service"
	inventoryRepository "reception/internal/domains/inventory/repository"
	inventoryService "reception/internal/domains/inventory/service"
	notificationService "reception/internal/domains/notification/service"
	preventiveRepository "reception/internal/domains/preventive/repository"
	preventiveService "reception/internal/domains/preventive/service"
	reportService "reception/internal/domains/report/service"
	requestRepository "reception/internal/domains/request/repository"
	requestService "reception/internal/domains/request/service"
	roomRepository "reception/internal/domains/room/repository"
	roomService "reception/internal/domains/room/service"
	staffRepository "reception/internal/domains/staff/repository"
	staffService "reception/internal/domains/staff/service"
	workorderRepository "reception/internal/domains/workorder/repository"
	workorderService "reception/internal/domains/workorder/service"

	authHandler "reception/internal/handlers/auth"
	inventoryHandler "reception/internal/handlers/inventory"
	preventiveHandler "reception/internal/handlers/preventive"
	reportHandler "reception/internal/handlers/report"
	requestHandler "reception/internal/handlers/request"
	roomHandler "reception/internal/handlers/room"
	staffHandler "reception/internal/handlers/staff"
	workorderHandler "reception/internal/handlers/workorder"
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
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestService.New,
)

var workorderDomain = wire.NewSet(
	workorderRepository.New,
	workorderService.New,
)

var preventiveDomain = wire.NewSet(
	preventiveRepository.New,
	preventiveService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	authDomain,
	staffDomain,
	roomDomain,
	inventoryDomain,
	notificationDomain,
	requestDomain,
	workorderDomain,
	preventiveDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	staffHandler.New,
	requestHandler.New,
	workorderHandler.New,
	inventoryHandler.New,
	preventiveHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		sweeper.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
