package booking

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда чтение или запись коллекции
	// бронирований не удались
	ErrStoreUnavailable = errors.New("booking.repository: store unavailable")

	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("booking.repository: failed to encode collection")

	// ErrDecode возвращается при ошибке десериализации коллекции
	ErrDecode = errors.New("booking.repository: failed to decode collection")
)
