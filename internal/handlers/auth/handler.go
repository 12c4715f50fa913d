package auth

import (
	"net/http"
	"salondash/infras/otel"
	"salondash/internal/domains/auth/model/dto"
	"salondash/internal/domains/auth/service"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	"salondash/shared/validator"
	"salondash/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Auth
	workspaces *workspace.Registry
	otel       otel.Otel
}

func New(service service.Auth, workspaces *workspace.Registry, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		workspaces: workspaces,
		otel:       otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/session", handler.Persist)
		r.Post("/logout", handler.Logout)
		r.Get("/me", handler.Me)
	})
}

// Login checks owner credentials against the salon backend and opens a dashboard session.
// @Summary Log in
// @Description Exchange owner credentials for a dashboard session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Owner logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login owner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Persist stores a backend token obtained elsewhere and opens a dashboard session for it.
// @Summary Persist a session
// @Description Store an existing salon backend token and user object.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.PersistRequest true "Persist Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Session stored"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/session [post]
func (handler *Handler) Persist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Persist")
	defer scope.End()

	req := dto.PersistRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Persist(ctx, req.Token, req.User)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to persist session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Logout clears the session and stops its dashboards.
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Redirect "Logged out"
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	sessionID := workspace.SessionID(ctx)
	handler.workspaces.Expire(sessionID)

	if err := handler.service.Logout(ctx, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to logout owner")

		response.WithError(w, err)

		return
	}

	response.WithRedirect(w, http.StatusOK, "Logged out", constant.LoginPath)
}

// Me returns the persisted user of the current session.
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.MeResponse] "Current session"
// @Failure 401 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	res, err := handler.service.Me(ctx, workspace.SessionID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read current session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
