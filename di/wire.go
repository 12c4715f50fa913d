//go:build wireinject
// +build wireinject

package di

import (
	"salondash/config"
	"salondash/infras/jwt"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/infras/redis"
	"salondash/internal/workspace"
	"salondash/permissions"
	"salondash/shared/cache"
	"salondash/transport/http"
	"salondash/transport/http/middleware"
	"salondash/transport/http/router"

	"github.com/google/wire"

	authRepository "salondash/internal/domains/auth/repository"
	authService "salondash/internal/domains/auth/service"
	availabilityRepository "salondash/internal/domains/availability/repository"
	availabilityService "salondash/internal/domains/availability/service"
	bookingRepository "salondash/internal/domains/booking/repository"
	bookingService "salondash/internal/domains/booking/service"
	contactRepository "salondash/internal/domains/contact/repository"
	contactService "salondash/internal/domains/contact/service"
	homeServiceRepository "salondash/internal/domains/homeservice/repository"
	homeServiceService "salondash/internal/domains/homeservice/service"
	notificationRepository "salondash/internal/domains/notification/repository"
	notificationService "salondash/internal/domains/notification/service"
	offerRepository "salondash/internal/domains/offer/repository"
	offerService "salondash/internal/domains/offer/service"
	pricingRepository "salondash/internal/domains/pricing/repository"
	pricingService "salondash/internal/domains/pricing/service"
	profileRepository "salondash/internal/domains/profile/repository"
	profileService "salondash/internal/domains/profile/service"
	reviewRepository "salondash/internal/domains/review/repository"
	reviewService "salondash/internal/domains/review/service"
	workingHoursRepository "salondash/internal/domains/workinghours/repository"
	workingHoursService "salondash/internal/domains/workinghours/service"

	authHandler "salondash/internal/handlers/auth"
	availabilityHandler "salondash/internal/handlers/availability"
	bookingHandler "salondash/internal/handlers/booking"
	contactHandler "salondash/internal/handlers/contact"
	homeServiceHandler "salondash/internal/handlers/homeservice"
	notificationHandler "salondash/internal/handlers/notification"
	offerHandler "salondash/internal/handlers/offer"
	pricingHandler "salondash/internal/handlers/pricing"
	profileHandler "salondash/internal/handlers/profile"
	reviewHandler "salondash/internal/handlers/review"
	toastHandler "salondash/internal/handlers/toast"
	workingHoursHandler "salondash/internal/handlers/workinghours"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	redis.NewPinger,
	jwt.New,
	ownerapi.NewHTTPClient,
	provideUpstreamMetrics,
	provideOwnerClient,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	provideFormatter,
	providePollerFactory,
)

var authDomain = wire.NewSet(
	authRepository.NewSession,
	provideAuthUpstream,
	authService.New,
)

var sessionDomain = wire.NewSet(
	workspace.NewAccessor,
	provideRegistry,
)

var dashboardDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	homeServiceRepository.New,
	homeServiceService.New,
)

var catalogDomain = wire.NewSet(
	offerRepository.New,
	offerService.New,
	pricingRepository.NewSection,
	pricingRepository.NewService,
	pricingRepository.NewSlot,
	pricingService.New,
)

var ownerDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
	contactRepository.New,
	contactService.New,
	notificationRepository.New,
	notificationService.New,
	profileRepository.New,
	profileService.New,
	workingHoursRepository.New,
	workingHoursService.New,
	availabilityRepository.New,
	availabilityService.New,
)

var domains = wire.NewSet(
	authDomain,
	sessionDomain,
	dashboardDomain,
	catalogDomain,
	ownerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	homeServiceHandler.New,
	offerHandler.New,
	pricingHandler.New,
	reviewHandler.New,
	contactHandler.New,
	notificationHandler.New,
	profileHandler.New,
	workingHoursHandler.New,
	availabilityHandler.New,
	toastHandler.New,
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
