package bookings

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// Service сервис списков бронирований: админская выборка с фильтрацией
// и сортировкой, снимок для экспорта и перенос снимка identity при
// изменении профиля клиента.
type Service struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса списков
func NewService(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// List возвращает бронирования по фильтру. Доступно только администратору.
// Сортировка всегда одна: по началу слота по возрастанию, при равенстве —
// по времени создания (кто раньше создал, тот выше).
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter, actor domain.UserIdentity) ([]*domain.Booking, error) {
	if err := s.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	if err := validateFilter(filter); err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	all, err := s.bookingRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("List: failed to read bookings: %v", err)
		return nil, fmt.Errorf("%w: List - read collection: %v", ErrStoreUnavailable, err)
	}

	filtered := applyFilter(all, filter)
	sortBookings(filtered)

	s.logger.Info("List: returned %d of %d bookings", len(filtered), len(all))
	return filtered, nil
}

// Export возвращает снимок отфильтрованного списка для внешнего экспорта.
// Записи идут в том же порядке, что и в List с тем же фильтром, —
// экспорт не пересортировывает выдачу.
func (s *Service) Export(ctx context.Context, filter domain.BookingsFilter, actor domain.UserIdentity) (*models.ExportView, error) {
	records, err := s.List(ctx, filter, actor)
	if err != nil {
		return nil, err
	}

	view := &models.ExportView{
		Records:     records,
		FilterLabel: filterLabel(filter),
	}

	s.logger.Info("Export: prepared %d records, filter=%q", len(records), view.FilterLabel)
	return view, nil
}

// PropagateIdentity переписывает снимок identity во всех бронированиях
// со старым телефоном. Вызывается редактором профиля; возвращает число
// обновленных записей. Запись коллекции публикует Sync Signal, и открытые
// представления перечитывают данные.
func (s *Service) PropagateIdentity(ctx context.Context, oldPhone string, identity domain.UserIdentity) (int, error) {
	if oldPhone == "" || identity.Phone == "" {
		return 0, fmt.Errorf("%w: phone is required", ErrInvalidFilter)
	}

	all, err := s.bookingRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("PropagateIdentity: failed to read bookings: %v", err)
		return 0, fmt.Errorf("%w: PropagateIdentity - read collection: %v", ErrStoreUnavailable, err)
	}

	updated := 0
	for _, b := range all {
		if b.User.Phone == oldPhone {
			b.User = identity
			updated++
		}
	}

	if updated == 0 {
		s.logger.Info("PropagateIdentity: no bookings matched phone=%s", oldPhone)
		return 0, nil
	}

	if err := s.bookingRepo.WriteAll(ctx, all); err != nil {
		s.logger.Error("PropagateIdentity: failed to write bookings: %v", err)
		return 0, fmt.Errorf("%w: PropagateIdentity - write collection: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("PropagateIdentity: rewrote %d bookings from phone=%s to phone=%s",
		updated, oldPhone, identity.Phone)
	return updated, nil
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

// validateFilter проверяет фильтр списка
func validateFilter(filter domain.BookingsFilter) error {
	if filter.Status == "" || filter.Status == domain.StatusFilterAll {
		return nil
	}
	if !domain.BookingStatus(filter.Status).IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, filter.Status)
	}
	return nil
}

// applyFilter применяет фильтр к коллекции
func applyFilter(all []*domain.Booking, filter domain.BookingsFilter) []*domain.Booking {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if filter.Date != nil && !sameDay(b.Date, *filter.Date) {
			continue
		}
		if filter.Status != "" && filter.Status != domain.StatusFilterAll &&
			string(b.Status) != filter.Status {
			continue
		}
		if query != "" && !matchesQuery(b, query) {
			continue
		}
		out = append(out, b)
	}

	return out
}

// matchesQuery проверяет совпадение с поисковой строкой без учета
// регистра по имени, телефону и instagram
func matchesQuery(b *domain.Booking, query string) bool {
	if strings.Contains(strings.ToLower(b.User.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(b.User.Phone), query) {
		return true
	}
	if b.User.Instagram != nil && strings.Contains(strings.ToLower(*b.User.Instagram), query) {
		return true
	}
	return false
}

// sortBookings сортирует по началу слота, затем по времени создания
func sortBookings(list []*domain.Booking) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		if list[i].StartTime != list[j].StartTime {
			return list[i].StartTime.IsBefore(list[j].StartTime)
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}

// filterLabel строит человекочитаемое описание активного фильтра
func filterLabel(filter domain.BookingsFilter) string {
	parts := make([]string, 0, 3)

	if filter.Date != nil {
		parts = append(parts, "дата "+filter.Date.Format(domain.DateFormat))
	}
	if filter.Status != "" && filter.Status != domain.StatusFilterAll {
		parts = append(parts, "статус "+filter.Status)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		parts = append(parts, "поиск «"+q+"»")
	}

	if len(parts) == 0 {
		return "все записи"
	}
	return strings.Join(parts, ", ")
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
