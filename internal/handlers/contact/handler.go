package contact

import (
	"net/http"
	"salondash/infras/otel"
	"salondash/internal/domains/contact/model/dto"
	"salondash/internal/domains/contact/service"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/validator"
	"salondash/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Contact
	workspaces *workspace.Registry
	otel       otel.Otel
}

func New(service service.Contact, workspaces *workspace.Registry, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		workspaces: workspaces,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contacts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetContacts)
		routerGroup.Patch("/{id}", handler.UpdateContactStatus)
	})
}

// GetContacts lists contact messages with the status buckets of the page.
// @Summary Get contact messages
// @Tags Contact
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param search query string false "Search text"
// @Success 200 {object} response.Data[dto.GetContactsResponse] "List of contact messages"
// @Failure 502 {object} response.Error
// @Router /v1/contacts [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetContacts(ctx, queryParams, gDto.FiltersFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contacts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateContactStatus sets the status of a contact message.
// @Summary Update a contact status
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.UpdateContactRequest true "Status"
// @Success 200 {object} response.Data[dto.ContactResponse] "Contact updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/contacts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContactStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateContactRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, id, req)
	handler.workspaces.Notify(ctx, err, "Contact status updated")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update contact status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
