package review

import (
	"net/http"
	"salondash/infras/otel"
	"salondash/internal/domains/review/model/dto"
	"salondash/internal/domains/review/service"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/validator"
	"salondash/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Review
	workspaces *workspace.Registry
	otel       otel.Otel
}

func New(service service.Review, workspaces *workspace.Registry, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		workspaces: workspaces,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Patch("/{id}", handler.UpdateReview)
	})
}

// GetReviews lists reviews with the page summary.
// @Summary Get reviews
// @Tags Review
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 502 {object} response.Error
// @Router /v1/reviews [get]
// @Security BearerAuth
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetReviews(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateReview toggles visibility or the featured flag of a review.
// @Summary Update a review
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body dto.UpdateReviewRequest true "Changes"
// @Success 200 {object} response.Data[dto.ReviewResponse] "Review updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reviews/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	handler.workspaces.Notify(ctx, err, "Review updated")

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update review")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
