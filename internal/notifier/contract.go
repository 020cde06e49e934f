package notifier

import (
	"context"

	"github.com/consultly/booking-service/internal/domain"
)

// Result результат отправки уведомления.
// Skipped = true означает, что отправка отключена конфигурацией:
// для вызывающего это успех без эффекта, а не ошибка.
type Result struct {
	MessageID string
	Skipped   bool
}

// Notifier отправляет письма о бронированиях.
// Реализация может быть заменена на другой канал (Slack/SMS), контракт общий.
type Notifier interface {
	SendConfirmation(ctx context.Context, booking *domain.Booking) (*Result, error)
	SendReminder(ctx context.Context, booking *domain.Booking) (*Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
