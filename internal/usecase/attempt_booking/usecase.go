package attempt_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case бронирования слота клиентом.
//
// Порядок шагов фиксирован: проверка identity → советующая проверка
// доступности по свежему чтению → пометка слота в оверлее сессии →
// полная перезапись коллекции → промоушен пометки (или откат при
// неудачной записи). Уведомление рассылки отправляется после успешной
// записи и не влияет на исход.
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	overlays     OverlayRegistry
	notifier     NotifierClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	overlays OverlayRegistry,
	notifier NotifierClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		overlays:     overlays,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет попытку бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация: без identity бронирование не начинается
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AttemptBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("AttemptBooking: phone=%s, date=%s, time=%s, services=%d",
		req.Identity.Phone, req.Date.Format(domain.DateFormat), req.StartTime, len(req.Services))

	// 2. Читаем настройки (шаг слота, каталог услуг)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("AttemptBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrStoreUnavailable, err)
	}

	// Время начала обязано лежать на той же сетке, что выдается клиенту
	// в списке доступных слотов
	if err := validateSlotGrid(req.StartTime, settings); err != nil {
		uc.logger.Warn("AttemptBooking: slot grid check failed: %v", err)
		return nil, err
	}

	durationMinutes, price, err := resolveServices(req, settings)
	if err != nil {
		uc.logger.Warn("AttemptBooking: service resolution failed: %v", err)
		return nil, err
	}

	// 3. Свежее чтение коллекции и советующая проверка доступности
	bookings, err := uc.bookingRepo.ReadAll(ctx)
	if err != nil {
		uc.logger.Error("AttemptBooking: failed to read bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to read bookings: %v", ErrStoreUnavailable, err)
	}

	slotKey := domain.SlotKey(req.Date, req.StartTime)

	for _, b := range bookings {
		if b.IsActive() && b.SlotKey() == slotKey {
			uc.logger.Warn("AttemptBooking: slot %s already taken by booking id=%s", slotKey, b.ID)
			return nil, ErrSlotTaken
		}
	}

	// 4. Помечаем слот "в работе" до записи, чтобы та же сессия не
	// отправила его повторно, пока запись не завершилась
	sessionOverlay := uc.overlays.Session(req.SessionID)
	if !sessionOverlay.MarkProcessing(slotKey) {
		uc.logger.Warn("AttemptBooking: slot %s is already held by session %s", slotKey, req.SessionID)
		return nil, ErrSlotTaken
	}

	// 5. Строим запись и переписываем коллекцию целиком
	now := uc.timeProvider.Now()

	endTime, err := req.StartTime.AddMinutes(durationMinutes)
	if err != nil {
		sessionOverlay.Release(slotKey)
		uc.logger.Warn("AttemptBooking: end time out of day range: %v", err)
		return nil, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}

	booking := &domain.Booking{
		ID:        uuid.NewString(),
		User:      *req.Identity,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   endTime,
		Services:  append([]string{}, req.Services...),
		Price:     price,
		Status:    domain.StatusPending,
		Paid:      false,
		CreatedAt: now,
	}

	updated := append(bookings, booking)

	if err := uc.bookingRepo.WriteAll(ctx, updated); err != nil {
		// откат оптимистичной пометки: слот снова доступен
		sessionOverlay.Release(slotKey)
		uc.logger.Error("AttemptBooking: failed to write bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to write bookings: %v", ErrStoreUnavailable, err)
	}

	// 6. Запись подтверждена: слот известен сессии как занятый еще до
	// следующего чтения хранилища
	sessionOverlay.Promote(slotKey)

	uc.logger.Info("AttemptBooking: created booking id=%s, slot=%s", booking.ID, slotKey)

	// 7. Уведомление рассылки — fire-and-forget
	uc.notifyCreated(booking)

	return &Response{
		ID:        booking.ID,
		User:      booking.User,
		Date:      booking.Date,
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		Services:  booking.Services,
		Price:     booking.Price,
		Status:    string(booking.Status),
		Paid:      booking.Paid,
		CreatedAt: booking.CreatedAt,
	}, nil
}

// notifyCreated отправляет уведомление о созданном бронировании.
// Ошибки доставки только логируются.
func (uc *UseCase) notifyCreated(b *domain.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := uc.notifier.BookingCreated(ctx, b); err != nil {
			uc.logger.Warn("AttemptBooking: notification failed for booking id=%s: %v", b.ID, err)
		}
	}()
}
