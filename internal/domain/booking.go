package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusConfirmed единственный активный статус: бронирование подтверждается
	// сразу при создании. Отмены и переносы не поддерживаются, но поле
	// сохранено для будущих состояний.
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a scheduled consultation in the system
type Booking struct {
	ID    int64
	Name  string
	Email string

	// Date и Time хранятся в том виде, в котором их прислал клиент,
	// и используются только для отображения (в ответах API и письмах)
	Date string // YYYY-MM-DD
	Time string // HH:MM

	// MeetingAt абсолютный момент встречи, вычисленный из Date+Time.
	// Единственное авторитетное время для планирования напоминаний.
	MeetingAt time.Time

	// MeetingID и MeetingLink назначаются один раз при создании и неизменны
	MeetingID   string
	MeetingLink string

	Status BookingStatus

	// ReminderSent переходит false -> true не более одного раза, только планировщиком
	ReminderSent bool

	CreatedAt time.Time
}

// IsConfirmed returns true if the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// NeedsReminder returns true if the booking still awaits its reminder
func (b *Booking) NeedsReminder() bool {
	return b.IsConfirmed() && !b.ReminderSent
}

// IsUpcoming returns true if the meeting has not started yet
func (b *Booking) IsUpcoming(now time.Time) bool {
	return b.MeetingAt.After(now)
}
