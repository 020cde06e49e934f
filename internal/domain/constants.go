package domain

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	TimeFormat     = "15:04"            // HH:MM
	DatetimeFormat = "2006-01-02 15:04" // формат склейки даты и времени из запроса
)

// Meeting constants
const (
	// MeetingDurationMinutes фиксированная длительность консультации
	MeetingDurationMinutes = 60

	// MeetingIDLength длина идентификатора встречи (hex-символы)
	MeetingIDLength = 12
)

// Reminder constants
const (
	// DefaultReminderLeadMinutes за сколько минут до встречи отправляется напоминание
	DefaultReminderLeadMinutes = 10
)

// Business validation constants
const (
	MaxNameLength  = 200
	MaxEmailLength = 320
)
