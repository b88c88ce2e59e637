package notifier

import "errors"

var (
	// ErrUnavailable возвращается, когда сервис рассылки недоступен
	ErrUnavailable = errors.New("notifier.client: notification service unavailable")

	// ErrBadResponse возвращается при неожиданном статусе ответа
	ErrBadResponse = errors.New("notifier.client: unexpected response status")
)
