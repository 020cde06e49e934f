package submit_booking

import (
	submitBooking "github.com/consultly/booking-service/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"` // "2025-10-15"
	Time  string `json:"time"` // "10:00"
}

// BookingPayload публичные поля созданного бронирования
type BookingPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	MeetingID   string `json:"meeting_id"`
	MeetingLink string `json:"meeting_link"`
	Status      string `json:"status"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Success bool           `json:"success"`
	Booking BookingPayload `json:"booking"`
	Message string         `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		Name:  r.Name,
		Email: r.Email,
		Date:  r.Date,
		Time:  r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		Success: true,
		Booking: BookingPayload{
			ID:          resp.ID,
			Name:        resp.Name,
			Email:       resp.Email,
			Date:        resp.Date,
			Time:        resp.Time,
			MeetingID:   resp.MeetingID,
			MeetingLink: resp.MeetingLink,
			Status:      resp.Status,
		},
		Message: resp.Message,
	}
}
