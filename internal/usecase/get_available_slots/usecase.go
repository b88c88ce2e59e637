package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case получения слотов дня с признаком доступности
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	overlays     OverlayRegistry
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	overlays OverlayRegistry,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		overlays:     overlays,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: session=%s, date=%s",
		req.SessionID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем настройки (рабочее окно, шаг слота)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrStoreUnavailable, err)
	}

	// 3. Читаем коллекцию бронирований целиком — свежее чтение на каждую
	// операцию, кэшированных копий между операциями нет
	bookings, err := uc.bookingRepo.ReadAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to read bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to read bookings: %v", ErrStoreUnavailable, err)
	}

	// 4. Генерируем слоты рабочего окна
	timeSlots := generateTimeSlots(settings)

	// 5. Вычисляем доступность каждого слота с учетом оверлея сессии
	sessionOverlay := uc.overlays.Session(req.SessionID)

	slots := make([]Slot, len(timeSlots))
	for i, start := range timeSlots {
		slots[i] = Slot{
			StartTime:       start,
			DurationMinutes: settings.SlotMinutes,
			Available:       isTakeable(req.Date, start, bookings, sessionOverlay),
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
