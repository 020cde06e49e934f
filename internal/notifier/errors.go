package notifier

import "errors"

var (
	// ErrSendFailed возвращается при ошибке передачи письма.
	// Вызывающие логируют эту ошибку и никогда не считают ею провал бронирования.
	ErrSendFailed = errors.New("notifier: failed to send message")

	// ErrRenderTemplate возвращается при ошибке рендеринга шаблона письма
	ErrRenderTemplate = errors.New("notifier: failed to render template")
)
