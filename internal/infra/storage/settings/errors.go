package settings

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда чтение или запись настроек
	// не удались
	ErrStoreUnavailable = errors.New("settings.repository: store unavailable")

	// ErrEncode возвращается при ошибке сериализации настроек
	ErrEncode = errors.New("settings.repository: failed to encode settings")

	// ErrDecode возвращается при ошибке десериализации настроек
	ErrDecode = errors.New("settings.repository: failed to decode settings")
)
