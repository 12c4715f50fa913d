package toast

import (
	"net/http"
	"salondash/infras/otel"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	"salondash/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	workspaces *workspace.Registry
	otel       otel.Otel
}

func New(workspaces *workspace.Registry, otel otel.Otel) Handler {
	return Handler{
		workspaces: workspaces,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/toasts", handler.DrainToasts)
}

// DrainToasts returns the queued notices of the session, oldest first, and clears them.
// @Summary Drain toasts
// @Tags Toast
// @Produce json
// @Success 200 {object} response.Data[[]toast.Toast] "Toasts"
// @Router /v1/toasts [get]
// @Security BearerAuth
func (handler *Handler) DrainToasts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DrainToasts")
	defer scope.End()

	toasts := handler.workspaces.Get(workspace.SessionID(ctx)).Toasts.Drain()
	scope.SetAttribute("toast.count", len(toasts))

	response.WithJSON(w, http.StatusOK, toasts)
}
