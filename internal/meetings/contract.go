package meetings

import (
	"context"
	"time"
)

// Meeting описание встречи: идентификатор, основная ссылка для подключения
// и альтернативные варианты
type Meeting struct {
	ID               string
	Link             string
	RoomName         string
	AlternativeLinks map[string]string
}

// Provider провайдер встреч. Выбирается один раз при старте сервиса:
// самодостаточный генератор ссылок либо интеграция с Google Calendar.
type Provider interface {
	// CreateMeeting создает встречу для бронирования.
	// Для детерминированного генератора операция чистая и не может завершиться
	// ошибкой на корректных входных данных.
	CreateMeeting(ctx context.Context, name, email string, meetingAt time.Time) (*Meeting, error)

	// Lookup восстанавливает описание встречи по идентификатору без обращения
	// к хранилищу. Возвращает ErrMeetingNotFound для некорректного идентификатора.
	Lookup(meetingID string) (*Meeting, error)
}
