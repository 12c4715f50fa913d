package booking

import (
	"net/http"
	"salondash/config"
	"salondash/infras/otel"
	"salondash/internal/dashboard"
	"salondash/internal/domains/booking/model"
	"salondash/internal/domains/booking/model/dto"
	"salondash/internal/domains/booking/service"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/failure"
	"salondash/shared/validator"
	"salondash/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	workspaces *workspace.Registry
	cfg        *config.Config
	otel       otel.Otel
}

func New(service service.Booking, workspaces *workspace.Registry, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		workspaces: workspaces,
		cfg:        cfg,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDashboard)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Patch("/filters", handler.UpdateFilters)
		routerGroup.Post("/refresh", handler.Refresh)
		routerGroup.Put("/auto-refresh", handler.SetAutoRefresh)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/calendar", handler.GetCalendar)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Post("/{id}/archive", handler.ArchiveBooking)
		routerGroup.Post("/{id}/unarchive", handler.UnarchiveBooking)
	})
}

func (handler *Handler) view(store *dashboard.Store[model.Booking]) dto.DashboardResponse {
	return dto.NewDashboardResponse(store.Snapshot(), handler.cfg.Dashboard.SkeletonRows)
}

// GetDashboard returns the booking grid of the session. A page query loads that page first.
// @Summary Booking dashboard
// @Description Grid rows, stats, filters, pagination and flags of the booking dashboard.
// @Tags Booking
// @Produce json
// @Param page query integer false "Page to load"
// @Success 200 {object} response.Data[dto.DashboardResponse] "Booking dashboard"
// @Failure 401 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingDashboard")
	defer scope.End()

	store := handler.workspaces.Get(workspace.SessionID(ctx)).Bookings(ctx)

	if raw := r.URL.Query().Get(constant.RequestParamPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			response.WithError(w, failure.InvalidPageParam)

			return
		}

		if err := store.Fetch(ctx, page, nil, false); err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Int("page", page).Msg("failed to load booking page")
		}
	}

	response.WithJSON(w, http.StatusOK, handler.view(store))
}

// UpdateFilters merges the given filters and schedules a debounced reload of page one.
// @Summary Filter bookings
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dashboard.FiltersRequest true "Filters"
// @Success 200 {object} response.Data[dto.DashboardResponse] "Booking dashboard"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/filters [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingFilters")
	defer scope.End()

	req := dashboard.FiltersRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	store := handler.workspaces.Get(workspace.SessionID(ctx)).Bookings(ctx)
	store.UpdateFilters(req.Filters)

	response.WithJSON(w, http.StatusOK, handler.view(store))
}

// Refresh reloads the current page and the stats.
// @Summary Refresh bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Booking dashboard"
// @Router /v1/bookings/refresh [post]
// @Security BearerAuth
func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshBookings")
	defer scope.End()

	store := handler.workspaces.Get(workspace.SessionID(ctx)).Bookings(ctx)

	if err := store.Fetch(ctx, store.Snapshot().Pagination.Page, nil, false); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to refresh bookings")
	}

	store.RefreshStats(ctx)

	response.WithJSON(w, http.StatusOK, handler.view(store))
}

// SetAutoRefresh turns the silent poller on or off.
// @Summary Toggle booking auto refresh
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dashboard.AutoRefreshRequest true "Auto refresh"
// @Success 200 {object} response.Data[dto.DashboardResponse] "Booking dashboard"
// @Failure 400 {object} response.Error
// @Router /v1/bookings/auto-refresh [put]
// @Security BearerAuth
func (handler *Handler) SetAutoRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetBookingAutoRefresh")
	defer scope.End()

	req := dashboard.AutoRefreshRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	store := handler.workspaces.Get(workspace.SessionID(ctx)).Bookings(ctx)
	store.SetAutoRefresh(*req.Enabled, req.Interval())

	response.WithJSON(w, http.StatusOK, handler.view(store))
}

// GetStats refetches the booking stats.
// @Summary Booking stats
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dashboard.Stats] "Booking stats"
// @Router /v1/bookings/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetCalendar passes the calendar availability query through to the salon backend.
// @Summary Booking calendar availability
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[map[string]any] "Calendar availability"
// @Failure 502 {object} response.Error
// @Router /v1/bookings/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingCalendar")
	defer scope.End()

	res, err := handler.service.CalendarAvailability(ctx, gDto.FiltersFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingByID returns one booking formatted for the details modal.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingDetailsResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateBooking creates a booking and prepends it to the grid.
// @Summary Create a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	store := handler.workspaces.Get(workspace.SessionID(ctx)).Bookings(ctx)

	created, err := store.Create(ctx, req.ToBody())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	writeRow(w, http.StatusCreated, created, "Booking created successfully")
}

// UpdateBooking sends a partial update and replaces the row in place.
// @Summary Update a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Changed fields"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	store := handler.workspaces.Get(workspace.SessionID(ctx)).Bookings(ctx)

	updated, err := store.Update(ctx, id, req.ToBody())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	writeRow(w, http.StatusOK, updated, "Booking updated successfully")
}

// DeleteBooking removes a booking from the backend and the grid.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	store := handler.workspaces.Get(workspace.SessionID(ctx)).Bookings(ctx)

	if err := store.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// ArchiveBooking archives a booking.
// @Summary Archive a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking archived"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/archive [post]
// @Security BearerAuth
func (handler *Handler) ArchiveBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchiveBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	store := handler.workspaces.Get(workspace.SessionID(ctx)).Bookings(ctx)

	archived, err := store.Archive(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to archive booking")

		response.WithError(w, err)

		return
	}

	writeRow(w, http.StatusOK, archived, "Booking archived successfully")
}

// UnarchiveBooking restores an archived booking.
// @Summary Unarchive a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking restored"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/unarchive [post]
// @Security BearerAuth
func (handler *Handler) UnarchiveBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnarchiveBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	store := handler.workspaces.Get(workspace.SessionID(ctx)).Bookings(ctx)

	restored, err := store.Unarchive(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to unarchive booking")

		response.WithError(w, err)

		return
	}

	writeRow(w, http.StatusOK, restored, "Booking restored successfully")
}

// writeRow answers with the echoed row, or just the message when the backend sent none.
func writeRow(w http.ResponseWriter, code int, row *model.Booking, message string) {
	if row == nil {
		response.WithMessage(w, code, message)

		return
	}

	response.WithJSON(w, code, dto.RowFromModel(*row))
}
