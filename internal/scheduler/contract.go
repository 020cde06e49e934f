package scheduler

import (
	"context"
	"time"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/internal/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListDueForReminder(ctx context.Context, now time.Time, lead time.Duration) ([]*domain.Booking, error)
	MarkReminderSent(ctx context.Context, id int64) error
}

// Notifier интерфейс отправки напоминаний
type Notifier interface {
	SendReminder(ctx context.Context, booking *domain.Booking) (*notifier.Result, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
