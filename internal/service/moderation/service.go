package moderation

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Service сервис модерации бронирований: подтверждение, отмена и отметка
// оплаты. Каждая операция — защищенная перезапись одной записи внутри
// полной коллекции: прочитать всё, найти по id, применить переход,
// записать всё. Успешная запись публикует Sync Signal (этим владеет
// репозиторий).
type Service struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	notifier     NotifierClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса модерации
func NewService(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	notifier NotifierClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Approve подтверждает бронирование. Доступно только администратору и
// только из статуса pending. Повторное подтверждение уже подтвержденной
// записи — no-op с тем же конечным состоянием.
func (s *Service) Approve(ctx context.Context, id string, actor domain.UserIdentity) (*domain.Booking, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	bookings, target, err := s.locate(ctx, id)
	if err != nil {
		return nil, err
	}

	// идемпотентность: второй Approve ничего не меняет
	if target.Status == domain.StatusApproved {
		s.logger.Info("Approve: booking id=%s is already approved, no-op", id)
		return target, nil
	}

	if !target.CanBeApproved() {
		s.logger.Warn("Approve: invalid transition from %s for booking id=%s", target.Status, id)
		return target, ErrInvalidTransition
	}

	now := s.timeProvider.Now()
	target.Status = domain.StatusApproved
	target.ApprovedAt = &now

	if err := s.bookingRepo.WriteAll(ctx, bookings); err != nil {
		s.logger.Error("Approve: failed to write bookings: %v", err)
		return nil, fmt.Errorf("%w: Approve - write collection: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Approve: booking id=%s approved", id)
	s.notify(func(ctx context.Context) error { return s.notifier.BookingApproved(ctx, target) }, id)

	return target, nil
}

// Cancel отменяет бронирование. Администратор переводит запись в
// canceled_admin; владелец — в canceled_client. Прочим инициаторам
// операция запрещена. Переход допустим только из pending/approved.
func (s *Service) Cancel(ctx context.Context, id string, actor domain.UserIdentity) (*domain.Booking, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Cancel: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: Cancel - get settings: %v", ErrStoreUnavailable, err)
	}

	bookings, target, err := s.locate(ctx, id)
	if err != nil {
		return nil, err
	}

	var status domain.BookingStatus
	switch {
	case settings.IsAdmin(actor):
		status = domain.StatusCanceledAdmin
	case target.IsOwnedBy(actor):
		status = domain.StatusCanceledClient
	default:
		s.logger.Warn("Cancel: access denied for phone=%s to booking id=%s", actor.Phone, id)
		return nil, ErrAccessDenied
	}

	if !target.CanBeCanceled() {
		s.logger.Warn("Cancel: invalid transition from %s for booking id=%s", target.Status, id)
		return target, ErrInvalidTransition
	}

	now := s.timeProvider.Now()
	target.Status = status
	target.CanceledAt = &now
	// отметка оплаты при отмене не сбрасывается

	if err := s.bookingRepo.WriteAll(ctx, bookings); err != nil {
		s.logger.Error("Cancel: failed to write bookings: %v", err)
		return nil, fmt.Errorf("%w: Cancel - write collection: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Cancel: booking id=%s canceled with status=%s", id, status)
	s.notify(func(ctx context.Context) error { return s.notifier.BookingCanceled(ctx, target) }, id)

	return target, nil
}

// TogglePaid переключает отметку оплаты. Доступно только администратору.
// Допускается в любом статусе, включая терминальные, — поведение
// источника сохранено намеренно.
func (s *Service) TogglePaid(ctx context.Context, id string, actor domain.UserIdentity) (*domain.Booking, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	bookings, target, err := s.locate(ctx, id)
	if err != nil {
		return nil, err
	}

	target.Paid = !target.Paid

	if err := s.bookingRepo.WriteAll(ctx, bookings); err != nil {
		s.logger.Error("TogglePaid: failed to write bookings: %v", err)
		return nil, fmt.Errorf("%w: TogglePaid - write collection: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("TogglePaid: booking id=%s paid=%t", id, target.Paid)

	if target.Paid {
		s.notify(func(ctx context.Context) error { return s.notifier.BookingPaid(ctx, target) }, id)
	}

	return target, nil
}

// locate читает коллекцию целиком и находит запись по id
func (s *Service) locate(ctx context.Context, id string) ([]*domain.Booking, *domain.Booking, error) {
	bookings, err := s.bookingRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("locate: failed to read bookings: %v", err)
		return nil, nil, fmt.Errorf("%w: locate - read collection: %v", ErrStoreUnavailable, err)
	}

	for _, b := range bookings {
		if b.ID == id {
			return bookings, b, nil
		}
	}

	s.logger.Warn("locate: booking id=%s not found, no-op", id)
	return nil, nil, ErrBookingNotFound
}

// requireAdmin проверяет, что инициатор — администратор
func (s *Service) requireAdmin(ctx context.Context, actor domain.UserIdentity) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("requireAdmin: failed to get settings: %v", err)
		return fmt.Errorf("%w: requireAdmin - get settings: %v", ErrStoreUnavailable, err)
	}

	if !settings.IsAdmin(actor) {
		s.logger.Warn("requireAdmin: access denied for phone=%s", actor.Phone)
		return ErrAccessDenied
	}

	return nil
}

// notify отправляет уведомление рассылки fire-and-forget
func (s *Service) notify(fn func(ctx context.Context) error, id string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := fn(ctx); err != nil {
			s.logger.Warn("Moderation: notification failed for booking id=%s: %v", id, err)
		}
	}()
}
