package pricing

import (
	"net/http"
	"salondash/infras/otel"
	"salondash/internal/domains/pricing/model/dto"
	"salondash/internal/domains/pricing/service"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/validator"
	"salondash/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Pricing
	workspaces *workspace.Registry
	otel       otel.Otel
}

func New(service service.Pricing, workspaces *workspace.Registry, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		workspaces: workspaces,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sections", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSections)
		routerGroup.Post("/", handler.CreateSection)
		routerGroup.Get("/catalog", handler.GetCatalog)
		routerGroup.Patch("/{id}", handler.UpdateSection)
		routerGroup.Delete("/{id}", handler.DeleteSection)
	})

	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Post("/", handler.CreateService)
		routerGroup.Get("/{id}", handler.GetServiceByID)
		routerGroup.Patch("/{id}", handler.UpdateService)
		routerGroup.Delete("/{id}", handler.DeleteService)

		routerGroup.Get("/{id}/slots", handler.GetSlots)
		routerGroup.Post("/{id}/slots", handler.CreateSlot)
		routerGroup.Patch("/{id}/slots/{slotId}", handler.UpdateSlot)
		routerGroup.Delete("/{id}/slots/{slotId}", handler.DeleteSlot)
	})
}

// GetSections lists the pricing sections.
// @Summary Get sections
// @Tags Pricing
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSectionsResponse] "List of sections"
// @Failure 502 {object} response.Error
// @Router /v1/sections [get]
// @Security BearerAuth
func (handler *Handler) GetSections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSections")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetSections(ctx, queryParams, gDto.FiltersFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sections")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateSection creates a pricing section.
// @Summary Create a section
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CreateSectionRequest true "Create a section"
// @Success 201 {object} response.Data[dto.SectionResponse] "Section created"
// @Failure 400 {object} response.Error
// @Router /v1/sections [post]
// @Security BearerAuth
func (handler *Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSection")
	defer scope.End()

	req := dto.CreateSectionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateSection(ctx, req)
	handler.workspaces.Notify(ctx, err, "Section created")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create section")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateSection renames or reorders a pricing section.
// @Summary Update a section
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param request body dto.UpdateSectionRequest true "Update a section"
// @Success 200 {object} response.Data[dto.SectionResponse] "Section updated"
// @Failure 400 {object} response.Error
// @Router /v1/sections/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateSectionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateSection(ctx, id, req)
	handler.workspaces.Notify(ctx, err, "Section updated")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update section")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteSection deletes a pricing section.
// @Summary Delete a section
// @Tags Pricing
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} response.Message "Section deleted"
// @Failure 404 {object} response.Error
// @Router /v1/sections/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	err := handler.service.DeleteSection(ctx, id)
	handler.workspaces.Notify(ctx, err, "Section deleted")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete section")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Section deleted successfully")
}

// GetCatalog groups every service under its section.
// @Summary Pricing catalog
// @Tags Pricing
// @Produce json
// @Success 200 {object} response.Data[dto.CatalogResponse] "Catalog"
// @Failure 502 {object} response.Error
// @Router /v1/sections/catalog [get]
// @Security BearerAuth
func (handler *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCatalog")
	defer scope.End()

	res, err := handler.service.Catalog(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build pricing catalog")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetServices lists the salon services.
// @Summary Get services
// @Tags Pricing
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetServicesResponse] "List of services"
// @Failure 502 {object} response.Error
// @Router /v1/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetServices(ctx, queryParams, gDto.FiltersFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetServiceByID returns one service.
// @Summary Get a service by ID
// @Tags Pricing
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse] "Service"
// @Failure 404 {object} response.Error
// @Router /v1/services/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetService(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get service")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateService creates a salon service.
// @Summary Create a service
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create a service"
// @Success 201 {object} response.Data[dto.ServiceResponse] "Service created"
// @Failure 400 {object} response.Error
// @Router /v1/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateService(ctx, req)
	handler.workspaces.Notify(ctx, err, "Service created")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateService updates a salon service.
// @Summary Update a service
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update a service"
// @Success 200 {object} response.Data[dto.ServiceResponse] "Service updated"
// @Failure 400 {object} response.Error
// @Router /v1/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateService(ctx, id, req)
	handler.workspaces.Notify(ctx, err, "Service updated")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteService deletes a salon service.
// @Summary Delete a service
// @Tags Pricing
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message "Service deleted"
// @Failure 404 {object} response.Error
// @Router /v1/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	err := handler.service.DeleteService(ctx, id)
	handler.workspaces.Notify(ctx, err, "Service deleted")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}

// GetSlots lists the time slots of a service.
// @Summary Get service slots
// @Tags Pricing
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[[]dto.SlotResponse] "Slots"
// @Failure 404 {object} response.Error
// @Router /v1/services/{id}/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetSlots(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("service_id", id).Msg("failed to get service slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateSlot adds a time slot to a service.
// @Summary Create a slot
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.CreateSlotRequest true "Create a slot"
// @Success 201 {object} response.Data[dto.SlotResponse] "Slot created"
// @Failure 400 {object} response.Error
// @Router /v1/services/{id}/slots [post]
// @Security BearerAuth
func (handler *Handler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSlot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.CreateSlotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateSlot(ctx, id, req)
	handler.workspaces.Notify(ctx, err, "Slot created")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("service_id", id).Msg("failed to create slot")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateSlot updates a time slot of a service.
// @Summary Update a slot
// @Tags Pricing
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param slotId path string true "Slot ID"
// @Param request body dto.UpdateSlotRequest true "Update a slot"
// @Success 200 {object} response.Data[dto.SlotResponse] "Slot updated"
// @Failure 400 {object} response.Error
// @Router /v1/services/{id}/slots/{slotId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSlot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	slotID := chi.URLParam(r, constant.RequestParamSlotID)
	req := dto.UpdateSlotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateSlot(ctx, id, slotID, req)
	handler.workspaces.Notify(ctx, err, "Slot updated")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("service_id", id).Str("slot_id", slotID).Msg("failed to update slot")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteSlot removes a time slot from a service.
// @Summary Delete a slot
// @Tags Pricing
// @Produce json
// @Param id path string true "Service ID"
// @Param slotId path string true "Slot ID"
// @Success 200 {object} response.Message "Slot deleted"
// @Failure 404 {object} response.Error
// @Router /v1/services/{id}/slots/{slotId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSlot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	slotID := chi.URLParam(r, constant.RequestParamSlotID)

	err := handler.service.DeleteSlot(ctx, id, slotID)
	handler.workspaces.Notify(ctx, err, "Slot deleted")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("service_id", id).Str("slot_id", slotID).Msg("failed to delete slot")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Slot deleted successfully")
}
