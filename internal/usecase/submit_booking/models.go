package submit_booking

import "time"

// Request модель запроса на бронирование консультации
type Request struct {
	Name  string // имя посетителя
	Email string // адрес для подтверждения и напоминания
	Date  string // дата встречи, YYYY-MM-DD
	Time  string // время встречи, HH:MM
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	Name        string
	Email       string
	Date        string
	Time        string
	MeetingID   string
	MeetingLink string
	Status      string
	Message     string // человекочитаемое сообщение об успехе
	CreatedAt   time.Time
}
