package get_available_slots

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/consultly/booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// UseCase use case получения доступных слотов.
// Возвращается статический часовой список 09:00-17:00: проверка занятости
// против существующих бронирований не выполняется (известное ограничение).
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute возвращает список слотов на указанную дату
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date parameter required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, slots=%d", req.Date, len(domain.HourlyTimeSlots))

	slots := make([]string, len(domain.HourlyTimeSlots))
	copy(slots, domain.HourlyTimeSlots)

	return &Response{
		Date:           req.Date,
		AvailableSlots: slots,
	}, nil
}
