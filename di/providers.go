package di

import (
	"net/http"
	"salondash/config"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	authRepository "salondash/internal/domains/auth/repository"
	bookingService "salondash/internal/domains/booking/service"
	homeService "salondash/internal/domains/homeservice/service"
	"salondash/internal/workspace"
	"salondash/shared/format"
	"salondash/shared/poller"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	upstreamMetrics     *ownerapi.Metrics
	upstreamMetricsOnce sync.Once
)

// provideUpstreamMetrics registers the backend client collectors once per process.
func provideUpstreamMetrics() *ownerapi.Metrics {
	upstreamMetricsOnce.Do(func() {
		upstreamMetrics = ownerapi.NewMetrics(prometheus.DefaultRegisterer)
	})

	return upstreamMetrics
}

func provideFormatter(cfg *config.Config) *format.Formatter {
	return format.New(cfg.App.Locale, cfg.App.Currency)
}

func providePollerFactory() poller.Factory {
	return poller.New
}

// provideAuthUpstream builds the login client. Login is anonymous, so it needs no session accessor.
func provideAuthUpstream(cfg *config.Config, httpClient *http.Client, metrics *ownerapi.Metrics, otel otel.Otel) authRepository.Upstream {
	client := ownerapi.NewClient(cfg.Upstream.APIBase, httpClient, nil, metrics, otel)

	return authRepository.NewUpstream(client, otel)
}

// provideOwnerClient builds the client every dashboard repository shares.
func provideOwnerClient(cfg *config.Config, httpClient *http.Client, accessor *workspace.Accessor, metrics *ownerapi.Metrics, otel otel.Otel) ownerapi.Client {
	return ownerapi.NewClient(cfg.Upstream.APIBase, httpClient, accessor, metrics, otel)
}

func provideRegistry(cfg *config.Config, bookings bookingService.Booking, homeServices homeService.HomeService, pollers poller.Factory, accessor *workspace.Accessor) *workspace.Registry {
	registry := workspace.NewRegistry(cfg, bookings, homeServices, pollers)
	accessor.Attach(registry)

	return registry
}
