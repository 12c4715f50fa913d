package workinghours

import (
	"net/http"
	"salondash/infras/otel"
	"salondash/internal/domains/workinghours/model/dto"
	"salondash/internal/domains/workinghours/service"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	"salondash/shared/validator"
	"salondash/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.WorkingHours
	workspaces *workspace.Registry
	otel       otel.Otel
}

func New(service service.WorkingHours, workspaces *workspace.Registry, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		workspaces: workspaces,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/working-hours", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWorkingHours)
		routerGroup.Put("/", handler.UpdateWorkingHours)
		routerGroup.Post("/reset", handler.ResetWorkingHours)
	})
}

// GetWorkingHours returns the weekly schedule.
// @Summary Get working hours
// @Tags WorkingHours
// @Produce json
// @Success 200 {object} response.Data[dto.WorkingHoursResponse] "Working hours"
// @Failure 502 {object} response.Error
// @Router /v1/working-hours [get]
// @Security BearerAuth
func (handler *Handler) GetWorkingHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkingHours")
	defer scope.End()

	res, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get working hours")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateWorkingHours replaces the weekly schedule.
// @Summary Update working hours
// @Tags WorkingHours
// @Accept json
// @Produce json
// @Param request body dto.UpdateWorkingHoursRequest true "Week"
// @Success 200 {object} response.Data[dto.WorkingHoursResponse] "Working hours saved"
// @Failure 400 {object} response.Error
// @Router /v1/working-hours [put]
// @Security BearerAuth
func (handler *Handler) UpdateWorkingHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateWorkingHours")
	defer scope.End()

	req := dto.UpdateWorkingHoursRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req)
	handler.workspaces.Notify(ctx, err, "Working hours saved")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update working hours")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ResetWorkingHours restores the backend default schedule.
// @Summary Reset working hours
// @Tags WorkingHours
// @Produce json
// @Success 200 {object} response.Data[dto.WorkingHoursResponse] "Working hours reset"
// @Failure 502 {object} response.Error
// @Router /v1/working-hours/reset [post]
// @Security BearerAuth
func (handler *Handler) ResetWorkingHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetWorkingHours")
	defer scope.End()

	res, err := handler.service.Reset(ctx)
	handler.workspaces.Notify(ctx, err, "Working hours reset")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset working hours")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
