package domain

// HourlyTimeSlots статический список часовых слотов рабочего дня (09:00-17:00).
// Проверка занятости слотов не выполняется - известное ограничение.
var HourlyTimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}
