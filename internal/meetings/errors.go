package meetings

import "errors"

var (
	// ErrMeetingNotFound возвращается при некорректном или неизвестном идентификаторе встречи
	ErrMeetingNotFound = errors.New("meetings: meeting not found")

	// ErrCreateFailed возвращается, когда провайдер не смог создать встречу
	ErrCreateFailed = errors.New("meetings: failed to create meeting")
)
