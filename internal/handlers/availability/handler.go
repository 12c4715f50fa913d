package availability

import (
	"net/http"
	"salondash/infras/otel"
	"salondash/internal/domains/availability/model/dto"
	"salondash/internal/domains/availability/service"
	"salondash/shared/constant"
	"salondash/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability/slots", handler.GetSlots)
}

// GetSlots returns the bookable slots of a day for one service.
// @Summary Available slots
// @Tags Availability
// @Produce json
// @Param date query string true "Day, YYYY-MM-DD"
// @Param service_id query string false "Salon service"
// @Param home_service_id query string false "Home service"
// @Param duration_minutes query integer false "Duration"
// @Param type query string false "salon or home"
// @Success 200 {object} response.Data[dto.SlotsResponse] "Slots"
// @Failure 400 {object} response.Error
// @Router /v1/availability/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSlots")
	defer scope.End()

	req := dto.SlotsRequest{}
	req.FromQuery(r.URL.Query())

	res, err := handler.service.Slots(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
