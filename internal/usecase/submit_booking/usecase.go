package submit_booking

import (
	"context"
	"fmt"

	"github.com/consultly/booking-service/internal/domain"
)

// Сообщение об успешном бронировании, возвращается клиенту вместе с данными
const successMessage = "Booking confirmed! Check your email for the meeting link."

// UseCase use case создания бронирования: валидация -> выделение встречи ->
// сохранение -> уведомление. Единственный конвейер, состояния вне хранилища нет.
type UseCase struct {
	bookingRepo  BookingRepository
	provider     MeetingProvider
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	provider MeetingProvider,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		provider:     provider,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: email=%s, date=%s, time=%s", req.Email, req.Date, req.Time)

	// 1. Валидация обязательных полей и формата email
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Склеиваем дату и время в момент встречи
	meetingAt, err := composeMeetingAt(req.Date, req.Time)
	if err != nil {
		uc.logger.Warn("SubmitBooking: datetime composition failed: %v", err)
		return nil, err
	}

	// 3. Встреча должна быть строго в будущем
	now := uc.timeProvider.Now()
	if !meetingAt.After(now) {
		uc.logger.Warn("SubmitBooking: rejected past datetime %s", meetingAt)
		return nil, ErrPastDatetime
	}

	// 4. Выделяем встречу. Детерминированный провайдер здесь не ошибается;
	// внешний (календарный) может, и тогда бронирование не создается.
	meeting, err := uc.provider.CreateMeeting(ctx, req.Name, req.Email, meetingAt)
	if err != nil {
		uc.logger.Error("SubmitBooking: meeting allocation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMeetingAllocation, err)
	}

	// 5. Сохраняем бронирование. Ошибка хранилища фатальна для всей операции.
	booking := &domain.Booking{
		Name:         req.Name,
		Email:        req.Email,
		Date:         req.Date,
		Time:         req.Time,
		MeetingAt:    meetingAt,
		MeetingID:    meeting.ID,
		MeetingLink:  meeting.Link,
		Status:       domain.StatusConfirmed,
		ReminderSent: false,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to persist booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 6. Подтверждение по почте best-effort: ошибка отправки не отменяет
	// уже созданное бронирование
	result, err := uc.notifier.SendConfirmation(ctx, created)
	switch {
	case err != nil:
		uc.logger.Error("SubmitBooking: failed to send confirmation for booking id=%d: %v", created.ID, err)
	case result.Skipped:
		uc.logger.Info("SubmitBooking: confirmation skipped for booking id=%d - email not configured", created.ID)
	}

	uc.logger.Info("SubmitBooking: successfully created booking id=%d, meeting_id=%s", created.ID, created.MeetingID)

	return &Response{
		ID:          created.ID,
		Name:        created.Name,
		Email:       created.Email,
		Date:        created.Date,
		Time:        created.Time,
		MeetingID:   created.MeetingID,
		MeetingLink: created.MeetingLink,
		Status:      string(created.Status),
		Message:     successMessage,
		CreatedAt:   created.CreatedAt,
	}, nil
}
