package get_bookings

import (
	"net/http"

	"github.com/consultly/booking-service/internal/api/handlers"
)

const msgFailedFetchBookings = "Failed to fetch bookings"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to fetch bookings: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFailedFetchBookings)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(list))
}
