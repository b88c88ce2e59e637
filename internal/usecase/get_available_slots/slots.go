package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/overlay"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateTimeSlots генерирует упорядоченный список слотов рабочего дня.
// Слоты идут от начала рабочего окна с фиксированным шагом slotMinutes;
// граница workEnd включается как последнее возможное время начала.
//
// Для workStart="09:00", workEnd="10:00", slotMinutes=30 результат:
// [09:00, 09:30, 10:00].
//
// Если workStart >= workEnd, возвращается пустой список (не ошибка).
func generateTimeSlots(settings *domain.Settings) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if settings.SlotMinutes <= 0 {
		return slots
	}
	if !settings.WorkStart.IsBefore(settings.WorkEnd) {
		return slots
	}

	current := settings.WorkStart
	for {
		if current.IsAfter(settings.WorkEnd) {
			break
		}
		slots = append(slots, current)

		next, err := current.AddMinutes(settings.SlotMinutes)
		if err != nil {
			// шаг пересек полночь — рабочее окно закончилось
			break
		}
		current = next
	}

	return slots
}

// isTakeable проверяет, можно ли занять слот.
//
// Слот занят, если на его минуту претендует активное бронирование
// (pending или approved) из коллекции, либо слот удерживается оверлеем
// сессии (включая слот, запись которого этой сессией еще не завершена).
//
// Проверка советующая: она сужает окно гонки, но не устраняет его;
// авторитетная защита — повторная проверка коллекции перед записью.
func isTakeable(
	day time.Time,
	candidate types.TimeString,
	committed []*domain.Booking,
	sessionOverlay *overlay.Overlay,
) bool {
	key := domain.SlotKey(day, candidate)

	for _, b := range committed {
		if !b.IsActive() {
			continue
		}
		if b.SlotKey() == key {
			return false
		}
	}

	if sessionOverlay != nil && sessionOverlay.Holds(key) {
		return false
	}

	return true
}
