package submit_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/consultly/booking-service/internal/domain"
)

// Базовая проверка синтаксиса адреса: непустая локальная часть, @, домен с точкой
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Date) == "" ||
		strings.TrimSpace(req.Time) == "" {
		return ErrMissingFields
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrMissingFields)
	}

	if len(req.Email) > domain.MaxEmailLength || !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// composeMeetingAt склеивает дату и время запроса в абсолютный момент встречи.
// Часовой пояс сервера считается поясом встречи - мультизонность вне scope.
func composeMeetingAt(date, clock string) (time.Time, error) {
	meetingAt, err := time.ParseInLocation(domain.DatetimeFormat, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDatetime, err)
	}
	return meetingAt, nil
}
