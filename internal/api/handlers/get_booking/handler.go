package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultly/booking-service/internal/api/handlers"
	bookingsService "github.com/consultly/booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID  = "Invalid booking id"
	msgBookingNotFound   = "Booking not found"
	msgFailedFetchRecord = "Failed to fetch booking"
)

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

// Handle GET /api/booking/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /booking/{id} - Invalid booking id: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /booking/{id} - Failed to fetch booking id=%d: %v", id, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFailedFetchRecord)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(booking))
}
