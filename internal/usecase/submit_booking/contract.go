package submit_booking

import (
	"context"
	"time"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/internal/meetings"
	"github.com/consultly/booking-service/internal/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// MeetingProvider интерфейс провайдера встреч
type MeetingProvider interface {
	CreateMeeting(ctx context.Context, name, email string, meetingAt time.Time) (*meetings.Meeting, error)
}

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	SendConfirmation(ctx context.Context, booking *domain.Booking) (*notifier.Result, error)
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
