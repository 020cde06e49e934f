package simple

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/internal/meetings"
)

// Шаблоны ссылок на комнаты. Комната создается самим сервисом видеосвязи
// при первом переходе по ссылке, внешних вызовов не требуется.
const (
	jitsiRoomTemplate  = "https://meet.jit.si/ConsultationRoom-%s"
	customRoomTemplate = "https://meet.consultly.app/room/%s"
	localRoomTemplate  = "/meeting/%s"
)

var meetingIDPattern = regexp.MustCompile(fmt.Sprintf("^[a-f0-9]{%d}$", domain.MeetingIDLength))

// Generator самодостаточный провайдер встреч: идентификатор выводится
// детерминированно из параметров бронирования, внешних вызовов и состояния нет
type Generator struct{}

// NewGenerator создает генератор встреч
func NewGenerator() *Generator {
	return &Generator{}
}

// CreateMeeting создает встречу для бронирования.
// Одинаковые входные данные всегда дают одинаковый идентификатор и ссылку,
// поэтому операция идемпотентна и не может завершиться ошибкой.
func (g *Generator) CreateMeeting(_ context.Context, name, email string, meetingAt time.Time) (*meetings.Meeting, error) {
	id := meetingID(name, email, meetingAt)

	return &meetings.Meeting{
		ID:               id,
		Link:             fmt.Sprintf(jitsiRoomTemplate, id),
		RoomName:         fmt.Sprintf("Consultation with %s", name),
		AlternativeLinks: alternativeLinks(id),
	}, nil
}

// Lookup восстанавливает описание встречи по идентификатору.
// Ссылка детерминирована, поэтому обращение к хранилищу не требуется.
func (g *Generator) Lookup(meetingID string) (*meetings.Meeting, error) {
	if !meetingIDPattern.MatchString(meetingID) {
		return nil, meetings.ErrMeetingNotFound
	}

	return &meetings.Meeting{
		ID:               meetingID,
		Link:             fmt.Sprintf(jitsiRoomTemplate, meetingID),
		RoomName:         fmt.Sprintf("Consultation Room %s", meetingID),
		AlternativeLinks: alternativeLinks(meetingID),
	}, nil
}

// meetingID выводит идентификатор встречи из параметров бронирования:
// первые 12 hex-символов md5 от "name-email-datetime"
func meetingID(name, email string, meetingAt time.Time) string {
	base := fmt.Sprintf("%s-%s-%s", name, email, meetingAt.UTC().Format(time.RFC3339))
	sum := md5.Sum([]byte(base))
	return hex.EncodeToString(sum[:])[:domain.MeetingIDLength]
}

func alternativeLinks(id string) map[string]string {
	return map[string]string{
		"jitsi":  fmt.Sprintf(jitsiRoomTemplate, id),
		"custom": fmt.Sprintf(customRoomTemplate, id),
		"simple": fmt.Sprintf(localRoomTemplate, id),
	}
}
