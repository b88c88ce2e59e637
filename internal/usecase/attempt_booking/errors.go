package attempt_booking

import "errors"

var (
	// ErrUnauthenticated возвращается при попытке бронирования без identity
	ErrUnauthenticated = errors.New("attempt_booking: not authenticated")

	// ErrSlotTaken возвращается, когда слот уже занят или удерживается
	// этой же сессией
	ErrSlotTaken = errors.New("attempt_booking: slot is taken")

	// ErrStoreUnavailable возвращается, когда чтение или запись коллекции
	// не удались; оптимистичная пометка слота при этом откатывается
	ErrStoreUnavailable = errors.New("attempt_booking: store unavailable")

	// ErrUnknownService возвращается, когда выбранной услуги нет в каталоге
	ErrUnknownService = errors.New("attempt_booking: unknown service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("attempt_booking: invalid input data")

	// ErrInvalidTimeSlot возвращается, когда запрошенное время начала не
	// лежит на сетке слотов рабочего окна
	ErrInvalidTimeSlot = errors.New("attempt_booking: time slot is outside the working grid")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("attempt_booking: internal error")
)
