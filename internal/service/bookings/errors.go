package bookings

import "errors"

var (
	// ErrAccessDenied возвращается, когда у инициатора нет прав доступа
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInvalidFilter возвращается при некорректном фильтре списка
	ErrInvalidFilter = errors.New("bookings: invalid filter")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	ErrStoreUnavailable = errors.New("bookings: store unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
