package attempt_booking

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Отсутствие identity — отдельная ошибка ErrUnauthenticated.
func validateRequest(req *Request) error {
	if req.Identity == nil || req.Identity.Phone == "" {
		return ErrUnauthenticated
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.Services) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: too many services", ErrInvalidInput)
	}

	return nil
}

// validateSlotGrid проверяет, что время начала лежит на сетке слотов:
// внутри рабочего окна (граница workEnd — последнее возможное начало)
// и кратно шагу слота от workStart. Сетка совпадает с той, что выдается
// клиенту в списке доступных слотов.
func validateSlotGrid(start types.TimeString, settings *domain.Settings) error {
	if settings.SlotMinutes <= 0 || !settings.WorkStart.IsBefore(settings.WorkEnd) {
		return fmt.Errorf("%w: working window produces no slots", ErrInvalidTimeSlot)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	workStartMin, err := settings.WorkStart.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid workStart in settings: %v", ErrInternal, err)
	}
	workEndMin, err := settings.WorkEnd.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid workEnd in settings: %v", ErrInternal, err)
	}

	if startMin < workStartMin || startMin > workEndMin {
		return fmt.Errorf("%w: %s is outside working hours %s-%s",
			ErrInvalidTimeSlot, start, settings.WorkStart, settings.WorkEnd)
	}
	if (startMin-workStartMin)%settings.SlotMinutes != 0 {
		return fmt.Errorf("%w: %s is not aligned to the %d-minute grid",
			ErrInvalidTimeSlot, start, settings.SlotMinutes)
	}

	return nil
}

// resolveServices сопоставляет выбранные услуги с каталогом и возвращает
// суммарную длительность и сумму депозитов.
// Для пустого списка услуг длительность равна шагу слота, цена отсутствует.
func resolveServices(req *Request, settings *domain.Settings) (durationMinutes int, price *float64, err error) {
	if len(req.Services) == 0 {
		return settings.SlotMinutes, nil, nil
	}

	totalDuration := 0
	totalDeposit := 0.0

	for _, name := range req.Services {
		item := settings.ServiceByName(name)
		if item == nil {
			return 0, nil, fmt.Errorf("%w: %q", ErrUnknownService, name)
		}
		totalDuration += item.DurationMinutes
		totalDeposit += item.Deposit
	}

	if totalDuration <= 0 {
		totalDuration = settings.SlotMinutes
	}

	return totalDuration, &totalDeposit, nil
}
