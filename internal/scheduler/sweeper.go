package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/internal/notifier"
	"github.com/consultly/booking-service/pkg/metrics"
)

// ReminderSweeper периодически находит бронирования, попавшие в окно
// напоминания, и отправляет по каждому ровно одно напоминание.
//
// Проходы строго сериализованы: тело прохода выполняется до конца в одной
// горутине цикла Run, следующий тик не начинается, пока не завершится текущий.
// Это единственная обязательная дисциплина конкурентности планировщика.
type ReminderSweeper struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	interval     time.Duration
	lead         time.Duration
	timeProvider TimeProvider
	logger       Logger
	metrics      *metrics.Metrics // может быть nil, когда метрики выключены
}

// NewReminderSweeper создает планировщик напоминаний
func NewReminderSweeper(
	bookingRepo BookingRepository,
	n Notifier,
	interval time.Duration,
	lead time.Duration,
	logger Logger,
	m *metrics.Metrics,
) *ReminderSweeper {
	return &ReminderSweeper{
		bookingRepo:  bookingRepo,
		notifier:     n,
		interval:     interval,
		lead:         lead,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		metrics:      m,
	}
}

// Run запускает цикл планировщика и блокируется до отмены контекста
func (s *ReminderSweeper) Run(ctx context.Context) {
	s.logger.Info("ReminderSweeper: started, interval=%s, lead=%s", s.interval, s.lead)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("ReminderSweeper: stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick один проход: выборка окна, отправка, отметка.
// Никогда не паникует наружу - сбой одного прохода не снимает расписание.
func (s *ReminderSweeper) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("ReminderSweeper: tick panicked: %v", r)
		}
	}()

	if s.metrics != nil {
		s.metrics.IncReminderSweep()
	}

	now := s.timeProvider.Now()
	due, err := s.bookingRepo.ListDueForReminder(ctx, now, s.lead)
	if err != nil {
		s.logger.Error("ReminderSweeper: failed to list due bookings: %v", err)
		return
	}

	if len(due) == 0 {
		return
	}

	s.logger.Info("ReminderSweeper: found %d upcoming bookings for reminders", len(due))

	for _, booking := range due {
		// Ошибки изолированы по бронированию: неудача одного не блокирует остальные
		s.remind(ctx, booking)
	}
}

// remind отправляет одно напоминание и после успешной отправки выставляет флаг.
// Порядок принципиален: флаг ставится только после реальной отправки, поэтому
// при сбое бронирование останется в выборке и будет повторено следующим тиком,
// пока не закрылось окно. Закрывшееся окно без успешной отправки - пропущенное
// напоминание, повторов дальше нет.
func (s *ReminderSweeper) remind(ctx context.Context, booking *domain.Booking) {
	result, err := s.notifier.SendReminder(ctx, booking)
	if err != nil {
		s.incReminder("error")
		if errors.Is(err, notifier.ErrSendFailed) {
			s.logger.Error("ReminderSweeper: failed to send reminder for booking id=%d: %v", booking.ID, err)
		} else {
			s.logger.Error("ReminderSweeper: unexpected error for booking id=%d: %v", booking.ID, err)
		}
		return
	}

	if result.Skipped {
		// Почта не сконфигурирована: не отмечаем, вдруг конфигурация появится
		s.incReminder("skipped")
		s.logger.Warn("ReminderSweeper: email not configured, skipping reminder for booking id=%d", booking.ID)
		return
	}

	if err := s.bookingRepo.MarkReminderSent(ctx, booking.ID); err != nil {
		// Напоминание ушло, но флаг не записался: возможен повтор следующим
		// тиком. Guard в хранилище не даст флагу отмениться, но от двойного
		// письма при сбое записи защиты нет - принятое ограничение.
		s.incReminder("error")
		s.logger.Error("ReminderSweeper: reminder sent but failed to mark booking id=%d: %v", booking.ID, err)
		return
	}

	s.incReminder("sent")
	s.logger.Info("ReminderSweeper: reminder sent for booking id=%d, message_id=%s", booking.ID, result.MessageID)
}

func (s *ReminderSweeper) incReminder(result string) {
	if s.metrics != nil {
		s.metrics.IncReminder(result)
	}
}
