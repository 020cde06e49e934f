package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/consultly/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/consultly/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate = "Date parameter required in YYYY-MM-DD format"
	msgFailed      = "Failed to fetch available slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
}

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailableSlots.Request{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("GET /available-slots - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /available-slots - Failed: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailableSlotsResponse{
		Date:           result.Date,
		AvailableSlots: result.AvailableSlots,
	})
}
