package offer

import (
	"net/http"
	"salondash/infras/otel"
	"salondash/internal/domains/offer/model/dto"
	"salondash/internal/domains/offer/service"
	"salondash/internal/workspace"
	"salondash/shared"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/validator"
	"salondash/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const requestParamRequireService = "require_service"

type Handler struct {
	service    service.Offer
	workspaces *workspace.Registry
	otel       otel.Otel
}

func New(service service.Offer, workspaces *workspace.Registry, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		workspaces: workspaces,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/offers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetOffers)
		routerGroup.Post("/", handler.CreateOffer)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/categories", handler.GetCategories)
		routerGroup.Get("/services", handler.GetServices)
		routerGroup.Post("/form", handler.PreviewForm)
		routerGroup.Get("/{id}", handler.GetOfferByID)
		routerGroup.Get("/{id}/form", handler.EditForm)
		routerGroup.Patch("/{id}", handler.UpdateOffer)
		routerGroup.Delete("/{id}", handler.DeleteOffer)
	})
}

// GetOffers lists offers with their status and display fields.
// @Summary Get offers
// @Tags Offer
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetOffersResponse] "List of offers"
// @Failure 502 {object} response.Error
// @Router /v1/offers [get]
// @Security BearerAuth
func (handler *Handler) GetOffers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOffers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetOffers(ctx, queryParams, gDto.FiltersFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetOfferByID returns one offer.
// @Summary Get an offer by ID
// @Tags Offer
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} response.Data[dto.OfferResponse] "Offer"
// @Failure 404 {object} response.Error
// @Router /v1/offers/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOfferByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOfferByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get offer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateOffer validates the offer form and creates the offer.
// @Summary Create an offer
// @Tags Offer
// @Accept json
// @Produce json
// @Param request body dto.OfferRequest true "Offer"
// @Success 201 {object} response.Data[dto.OfferResponse] "Offer created"
// @Failure 400 {object} response.Error
// @Router /v1/offers [post]
// @Security BearerAuth
func (handler *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOffer")
	defer scope.End()

	req := dto.OfferRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	handler.workspaces.Notify(ctx, err, "Offer created")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create offer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Offer created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateOffer validates the offer form and saves it.
// @Summary Update an offer
// @Tags Offer
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body dto.OfferRequest true "Offer"
// @Success 200 {object} response.Data[dto.OfferResponse] "Offer updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/offers/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOffer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.OfferRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	handler.workspaces.Notify(ctx, err, "Offer updated")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update offer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteOffer deletes an offer.
// @Summary Delete an offer
// @Tags Offer
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} response.Message "Offer deleted"
// @Failure 404 {object} response.Error
// @Router /v1/offers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOffer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	err := handler.service.Delete(ctx, id)
	handler.workspaces.Notify(ctx, err, "Offer deleted")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete offer")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Offer deleted successfully")
}

// GetStats returns the offer summary stats.
// @Summary Offer stats
// @Tags Offer
// @Produce json
// @Success 200 {object} response.Data[dashboard.Stats] "Offer stats"
// @Router /v1/offers/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOfferStats")
	defer scope.End()

	res, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offer stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCategories returns the offer categories known to the backend.
// @Summary Offer categories
// @Tags Offer
// @Produce json
// @Success 200 {object} response.Data[[]string] "Categories"
// @Router /v1/offers/categories [get]
// @Security BearerAuth
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOfferCategories")
	defer scope.End()

	res, err := handler.service.Categories(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offer categories")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetServices returns the services an offer can be linked to.
// @Summary Linkable services
// @Tags Offer
// @Produce json
// @Success 200 {object} response.Data[[]dto.LinkedService] "Services"
// @Router /v1/offers/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOfferServices")
	defer scope.End()

	res, err := handler.service.Services(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get linkable services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// PreviewForm applies one field change to a form and returns the derived values and errors.
// @Summary Preview the offer form
// @Tags Offer
// @Accept json
// @Produce json
// @Param request body dto.FormRequest true "Form state"
// @Success 200 {object} response.Data[dto.FormResponse] "Form state"
// @Failure 400 {object} response.Error
// @Router /v1/offers/form [post]
// @Security BearerAuth
func (handler *Handler) PreviewForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviewOfferForm")
	defer scope.End()

	req := dto.FormRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.PreviewForm(ctx, req))
}

// EditForm returns the form state of an existing offer.
// @Summary Offer edit form
// @Tags Offer
// @Produce json
// @Param id path string true "Offer ID"
// @Param require_service query boolean false "Service link is mandatory"
// @Success 200 {object} response.Data[dto.FormResponse] "Form state"
// @Failure 404 {object} response.Error
// @Router /v1/offers/{id}/form [get]
// @Security BearerAuth
func (handler *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditOfferForm")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	requireService := shared.ConvertStringToBool(r.URL.Query().Get(requestParamRequireService))

	res, err := handler.service.EditForm(ctx, id, requireService != nil && *requireService)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to load offer form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
