package submit_booking

import (
	"errors"
	"net/http"

	"github.com/consultly/booking-service/internal/api/handlers"
	submitBooking "github.com/consultly/booking-service/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields: name, email, date, time"
	msgInvalidEmail       = "Invalid email format"
	msgInvalidDatetime    = "Invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgPastDatetime       = "Cannot book meetings in the past"
	msgCreateFailed       = "Failed to create booking"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrMissingFields):
			h.logger.Warn("POST /book - Missing fields: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, submitBooking.ErrInvalidEmail):
			h.logger.Warn("POST /book - Invalid email: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, submitBooking.ErrInvalidDatetime):
			h.logger.Warn("POST /book - Invalid datetime: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidDatetime)

		case errors.Is(err, submitBooking.ErrPastDatetime):
			h.logger.Warn("POST /book - Past datetime: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgPastDatetime)

		case errors.Is(err, submitBooking.ErrMeetingAllocation):
			h.logger.Error("POST /book - Meeting allocation failed: email=%s, error=%v", req.Email, err)
			handlers.RespondErrorDetails(w, http.StatusInternalServerError, msgCreateFailed, err.Error())

		default:
			h.logger.Error("POST /book - Failed to create booking: email=%s, error=%v", req.Email, err)
			handlers.RespondErrorDetails(w, http.StatusInternalServerError, msgCreateFailed, err.Error())
		}
		return
	}

	h.logger.Info("POST /book - Booking created successfully: booking_id=%d, email=%s", result.ID, result.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
