package router

import (
	"net/http"
	"salondash/config"
	"salondash/internal/handlers/auth"
	"salondash/internal/handlers/availability"
	"salondash/internal/handlers/booking"
	"salondash/internal/handlers/contact"
	"salondash/internal/handlers/homeservice"
	"salondash/internal/handlers/notification"
	"salondash/internal/handlers/offer"
	"salondash/internal/handlers/pricing"
	"salondash/internal/handlers/profile"
	"salondash/internal/handlers/review"
	"salondash/internal/handlers/toast"
	"salondash/internal/handlers/workinghours"
	"salondash/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultCORSMaxAge = 300

type DomainHandlers struct {
	Auth         auth.Handler
	Booking      booking.Handler
	HomeService  homeservice.Handler
	Offer        offer.Handler
	Pricing      pricing.Handler
	Review       review.Handler
	Contact      contact.Handler
	Notification notification.Handler
	Profile      profile.Handler
	WorkingHours workinghours.Handler
	Availability availability.Handler
	Toast        toast.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
}

// Use installs the middleware chain shared by every route.
func (r *Router) Use(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.App.Tracing)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(r.corsOptions()))
	}

	router.Use(r.App.RateLimit())
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.Metrics.Enable {
		router.Method(http.MethodGet, r.Config.Metrics.Path, promhttp.Handler())
	}

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.Auth)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.HomeService.Router(routerGroup)
		r.DomainHandlers.Offer.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
		r.DomainHandlers.WorkingHours.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Toast.Router(routerGroup)
	})
}

func (r *Router) corsOptions() cors.Options {
	cfg := r.Config.App.CORS

	maxAge := cfg.MaxAgeSeconds
	if maxAge <= 0 {
		maxAge = defaultCORSMaxAge
	}

	return cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{"X-Redirect", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           maxAge,
	}
}

func New(cfg *config.Config, domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
