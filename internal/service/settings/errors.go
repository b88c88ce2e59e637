package settings

import "errors"

var (
	// ErrAccessDenied возвращается, когда инициатор не администратор
	ErrAccessDenied = errors.New("settings: access denied")

	// ErrInvalidSettings возвращается при некорректном объекте настроек
	ErrInvalidSettings = errors.New("settings: invalid settings")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	ErrStoreUnavailable = errors.New("settings: store unavailable")
)
