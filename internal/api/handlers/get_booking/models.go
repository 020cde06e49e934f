package get_booking

import (
	"time"

	"github.com/consultly/booking-service/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Datetime     string `json:"datetime"`
	MeetingID    string `json:"meeting_id"`
	MeetingLink  string `json:"meeting_link"`
	Status       string `json:"status"`
	ReminderSent bool   `json:"reminder_sent"`
	CreatedAt    string `json:"created_at"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Date:         b.Date,
		Time:         b.Time,
		Datetime:     b.MeetingAt.Format(time.RFC3339),
		MeetingID:    b.MeetingID,
		MeetingLink:  b.MeetingLink,
		Status:       b.Status,
		ReminderSent: b.ReminderSent,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}
