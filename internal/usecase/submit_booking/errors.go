package submit_booking

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнено одно из обязательных полей
	ErrMissingFields = errors.New("submit_booking: missing required fields: name, email, date, time")

	// ErrInvalidEmail возвращается при некорректном формате email
	ErrInvalidEmail = errors.New("submit_booking: invalid email format")

	// ErrInvalidDatetime возвращается, когда дату и время не удалось разобрать
	ErrInvalidDatetime = errors.New("submit_booking: invalid date or time format")

	// ErrPastDatetime возвращается при попытке забронировать встречу в прошлом
	ErrPastDatetime = errors.New("submit_booking: cannot book meetings in the past")

	// ErrMeetingAllocation возвращается, когда провайдер не смог создать встречу
	ErrMeetingAllocation = errors.New("submit_booking: failed to allocate meeting")

	// ErrInternal возвращается при внутренних ошибках (в первую очередь хранилища)
	ErrInternal = errors.New("submit_booking: internal error")
)
