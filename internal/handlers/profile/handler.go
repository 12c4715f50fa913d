package profile

import (
	"net/http"
	"salondash/infras/otel"
	"salondash/internal/domains/profile/model/dto"
	"salondash/internal/domains/profile/service"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	"salondash/shared/validator"
	"salondash/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Profile
	workspaces *workspace.Registry
	otel       otel.Otel
}

func New(service service.Profile, workspaces *workspace.Registry, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		workspaces: workspaces,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/profile", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProfile)
		routerGroup.Patch("/", handler.UpdateProfile)
		routerGroup.Patch("/password", handler.ChangePassword)
	})
}

// GetProfile returns the owner profile.
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse] "Profile"
// @Failure 404 {object} response.Error
// @Router /v1/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	res, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile saves the changed profile fields.
// @Summary Update profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Changed fields"
// @Success 200 {object} response.Data[dto.ProfileResponse] "Profile updated"
// @Failure 400 {object} response.Error
// @Router /v1/profile [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req)
	handler.workspaces.Notify(ctx, err, "Profile updated")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword changes the owner password.
// @Summary Change password
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Passwords"
// @Success 200 {object} response.Message "Password changed"
// @Failure 400 {object} response.Error
// @Router /v1/profile/password [patch]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	err := handler.service.ChangePassword(ctx, req)
	handler.workspaces.Notify(ctx, err, "Password changed")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}
