package homeservice

import (
	"net/http"
	"salondash/config"
	"salondash/infras/otel"
	"salondash/internal/dashboard"
	"salondash/internal/domains/homeservice/model"
	"salondash/internal/domains/homeservice/model/dto"
	"salondash/internal/domains/homeservice/service"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	"salondash/shared/failure"
	"salondash/shared/validator"
	"salondash/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.HomeService
	workspaces *workspace.Registry
	cfg        *config.Config
	otel       otel.Otel
}

func New(service service.HomeService, workspaces *workspace.Registry, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		workspaces: workspaces,
		cfg:        cfg,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/home-service-bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDashboard)
		routerGroup.Post("/", handler.CreateHomeServiceBooking)
		routerGroup.Patch("/filters", handler.UpdateFilters)
		routerGroup.Post("/refresh", handler.Refresh)
		routerGroup.Put("/auto-refresh", handler.SetAutoRefresh)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/{id}", handler.GetHomeServiceBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateHomeServiceBooking)
		routerGroup.Delete("/{id}", handler.DeleteHomeServiceBooking)
		routerGroup.Post("/{id}/archive", handler.ArchiveHomeServiceBooking)
		routerGroup.Post("/{id}/unarchive", handler.UnarchiveHomeServiceBooking)
	})
}

func (handler *Handler) view(store *dashboard.Store[model.Booking]) dto.DashboardResponse {
	return dto.NewDashboardResponse(store.Snapshot(), handler.cfg.Dashboard.SkeletonRows)
}

// GetDashboard returns the home service booking grid of the session. A page query loads that page first.
// @Summary Home service dashboard
// @Description Grid rows, stats, filters, pagination and flags of the home service booking dashboard.
// @Tags HomeService
// @Produce json
// @Param page query integer false "Page to load"
// @Success 200 {object} response.Data[dto.DashboardResponse] "Home service dashboard"
// @Failure 401 {object} response.Error
// @Router /v1/home-service-bookings [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHomeServiceDashboard")
	defer scope.End()

	store := handler.workspaces.Get(workspace.SessionID(ctx)).HomeServices(ctx)

	if raw := r.URL.Query().Get(constant.RequestParamPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			response.WithError(w, failure.InvalidPageParam)

			return
		}

		if err := store.Fetch(ctx, page, nil, false); err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Int("page", page).Msg("failed to load home service booking page")
		}
	}

	response.WithJSON(w, http.StatusOK, handler.view(store))
}

// UpdateFilters merges the given filters and schedules a debounced reload of page one.
// @Summary Filter home service bookings
// @Tags HomeService
// @Accept json
// @Produce json
// @Param request body dashboard.FiltersRequest true "Filters"
// @Success 200 {object} response.Data[dto.DashboardResponse] "Home service dashboard"
// @Failure 400 {object} response.Error
// @Router /v1/home-service-bookings/filters [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHomeServiceFilters")
	defer scope.End()

	req := dashboard.FiltersRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	store := handler.workspaces.Get(workspace.SessionID(ctx)).HomeServices(ctx)
	store.UpdateFilters(req.Filters)

	response.WithJSON(w, http.StatusOK, handler.view(store))
}

// Refresh reloads the current page and the stats.
// @Summary Refresh home service bookings
// @Tags HomeService
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Home service dashboard"
// @Router /v1/home-service-bookings/refresh [post]
// @Security BearerAuth
func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshHomeServiceBookings")
	defer scope.End()

	store := handler.workspaces.Get(workspace.SessionID(ctx)).HomeServices(ctx)

	if err := store.Fetch(ctx, store.Snapshot().Pagination.Page, nil, false); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to refresh home service bookings")
	}

	store.RefreshStats(ctx)

	response.WithJSON(w, http.StatusOK, handler.view(store))
}

// SetAutoRefresh turns the silent poller on or off.
// @Summary Toggle home service booking auto refresh
// @Tags HomeService
// @Accept json
// @Produce json
// @Param request body dashboard.AutoRefreshRequest true "Auto refresh"
// @Success 200 {object} response.Data[dto.DashboardResponse] "Home service dashboard"
// @Failure 400 {object} response.Error
// @Router /v1/home-service-bookings/auto-refresh [put]
// @Security BearerAuth
func (handler *Handler) SetAutoRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetHomeServiceAutoRefresh")
	defer scope.End()

	req := dashboard.AutoRefreshRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	store := handler.workspaces.Get(workspace.SessionID(ctx)).HomeServices(ctx)
	store.SetAutoRefresh(*req.Enabled, req.Interval())

	response.WithJSON(w, http.StatusOK, handler.view(store))
}

// GetStats refetches the home service booking stats.
// @Summary Home service stats
// @Tags HomeService
// @Produce json
// @Success 200 {object} response.Data[dashboard.Stats] "Home service stats"
// @Router /v1/home-service-bookings/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHomeServiceStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get home service booking stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetHomeServiceBookingByID returns one home service booking formatted for the details modal.
// @Summary Get a home service booking by ID
// @Tags HomeService
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.HomeServiceBookingDetailsResponse] "Home service booking details"
// @Failure 404 {object} response.Error
// @Router /v1/home-service-bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHomeServiceBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHomeServiceBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get home service booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateHomeServiceBooking creates a home service booking and prepends it to the grid.
// @Summary Create a home service booking
// @Tags HomeService
// @Accept json
// @Produce json
// @Param request body dto.CreateHomeServiceBookingRequest true "Booking"
// @Success 201 {object} response.Data[dto.HomeServiceBookingResponse] "Home service booking created"
// @Failure 400 {object} response.Error
// @Router /v1/home-service-bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateHomeServiceBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHomeServiceBooking")
	defer scope.End()

	req := dto.CreateHomeServiceBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	store := handler.workspaces.Get(workspace.SessionID(ctx)).HomeServices(ctx)

	created, err := store.Create(ctx, req.ToBody())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create home service booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Home service booking created successfully")

	writeRow(w, http.StatusCreated, created, "Home service booking created successfully")
}

// UpdateHomeServiceBooking sends a partial update and replaces the row in place.
// @Summary Update a home service booking
// @Tags HomeService
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateHomeServiceBookingRequest true "Changed fields"
// @Success 200 {object} response.Data[dto.HomeServiceBookingResponse] "Home service booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/home-service-bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHomeServiceBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHomeServiceBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateHomeServiceBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	store := handler.workspaces.Get(workspace.SessionID(ctx)).HomeServices(ctx)

	updated, err := store.Update(ctx, id, req.ToBody())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update home service booking")

		response.WithError(w, err)

		return
	}

	writeRow(w, http.StatusOK, updated, "Home service booking updated successfully")
}

// DeleteHomeServiceBooking removes a home service booking from the backend and the grid.
// @Summary Delete a home service booking
// @Tags HomeService
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Home service booking deleted"
// @Failure 404 {object} response.Error
// @Router /v1/home-service-bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHomeServiceBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHomeServiceBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	store := handler.workspaces.Get(workspace.SessionID(ctx)).HomeServices(ctx)

	if err := store.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete home service booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Home service booking deleted successfully")
}

// ArchiveHomeServiceBooking archives a home service booking.
// @Summary Archive a home service booking
// @Tags HomeService
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.HomeServiceBookingResponse] "Home service booking archived"
// @Failure 404 {object} response.Error
// @Router /v1/home-service-bookings/{id}/archive [post]
// @Security BearerAuth
func (handler *Handler) ArchiveHomeServiceBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchiveHomeServiceBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	store := handler.workspaces.Get(workspace.SessionID(ctx)).HomeServices(ctx)

	archived, err := store.Archive(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to archive home service booking")

		response.WithError(w, err)

		return
	}

	writeRow(w, http.StatusOK, archived, "Home service booking archived successfully")
}

// UnarchiveHomeServiceBooking restores an archived home service booking.
// @Summary Unarchive a home service booking
// @Tags HomeService
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.HomeServiceBookingResponse] "Home service booking restored"
// @Failure 404 {object} response.Error
// @Router /v1/home-service-bookings/{id}/unarchive [post]
// @Security BearerAuth
func (handler *Handler) UnarchiveHomeServiceBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnarchiveHomeServiceBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	store := handler.workspaces.Get(workspace.SessionID(ctx)).HomeServices(ctx)

	restored, err := store.Unarchive(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to unarchive home service booking")

		response.WithError(w, err)

		return
	}

	writeRow(w, http.StatusOK, restored, "Home service booking restored successfully")
}

// writeRow answers with the echoed row, or just the message when the backend sent none.
func writeRow(w http.ResponseWriter, code int, row *model.Booking, message string) {
	if row == nil {
		response.WithMessage(w, code, message)

		return
	}

	response.WithJSON(w, code, dto.RowFromModel(*row))
}
