package moderation

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено.
	// Операция при этом не меняет состояние (no-op).
	ErrBookingNotFound = errors.New("moderation: booking not found")

	// ErrInvalidTransition возвращается, когда запрошенный переход
	// недопустим для текущего статуса записи. Операция при этом не
	// меняет состояние (no-op), не падение.
	ErrInvalidTransition = errors.New("moderation: invalid status transition")

	// ErrAccessDenied возвращается, когда у инициатора нет прав на операцию
	ErrAccessDenied = errors.New("moderation: access denied")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	ErrStoreUnavailable = errors.New("moderation: store unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("moderation: internal error")
)
