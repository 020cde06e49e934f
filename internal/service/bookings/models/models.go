package models

import (
	"time"

	"github.com/consultly/booking-service/internal/domain"
)

// BookingResponse модель бронирования для отдачи наружу
type BookingResponse struct {
	ID           int64
	Name         string
	Email        string
	Date         string
	Time         string
	MeetingAt    time.Time
	MeetingID    string
	MeetingLink  string
	Status       string
	ReminderSent bool
	CreatedAt    time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Date:         b.Date,
		Time:         b.Time,
		MeetingAt:    b.MeetingAt,
		MeetingID:    b.MeetingID,
		MeetingLink:  b.MeetingLink,
		Status:       string(b.Status),
		ReminderSent: b.ReminderSent,
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
