package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"salondash/config"
	"salondash/infras/otel"
	"salondash/infras/redis"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	"salondash/transport/http/response"
	"salondash/transport/http/router"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	defaultHost        = "0.0.0.0"
	readHeaderTimeout  = 10 * time.Second
	healthResponseText = "OK"
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Workspaces *workspace.Registry
	Otel       otel.Otel
	Cache      redis.Pinger

	state   atomic.Int32
	once    sync.Once
	handler http.Handler
	server  *http.Server
}

func New(cfg *config.Config, r router.Router, workspaces *workspace.Registry, otel otel.Otel, cache redis.Pinger) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Workspaces: workspaces,
		Otel:       otel,
		Cache:      cache,
	}
}

// State reports where the server is in its shutdown sequence.
func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	host := h.Config.Server.Host
	if host == "" {
		host = defaultHost
	}

	h.server = &http.Server{
		Addr:              net.JoinHostPort(host, h.Config.Server.Port),
		Handler:           h.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the service run behind a serverless entry point without its own listener.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.handler.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.Workspaces.StartSweeper()
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	h.Router.Use(mux)
	mux.Get("/health", h.health)
	h.Router.SetupRoutes(mux)

	h.handler = mux
}

// health is unhealthy while Redis is unreachable: no session can be read without it.
func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	switch h.State() {
	case ServerStateReady:
		if h.Cache != nil {
			if err := h.Cache.Ping(r.Context()); err != nil {
				log.Error().Err(err).Msg("health check failed")
				response.WithUnhealthy(w)

				return
			}
		}

		response.WithMessage(w, http.StatusOK, healthResponseText)
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.cleanup(context.Background())

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	h.cleanup(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// cleanup stops the listener and every session's dashboards, then flushes traces.
func (h *HTTP) cleanup(ctx context.Context) {
	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server")
		}
	}

	h.Workspaces.Shutdown()

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
