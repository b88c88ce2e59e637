package settings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Service сервис настроек: чтение с подстановкой значений по умолчанию
// и валидированное обновление объекта целиком.
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки
func (s *Service) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: Get - read settings: %v", ErrStoreUnavailable, err)
	}
	return settings, nil
}

// Update заменяет настройки целиком. Доступно только администратору
// (сверка по телефону из текущих настроек).
func (s *Service) Update(ctx context.Context, updated *domain.Settings, actor domain.UserIdentity) (*domain.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to get current settings: %v", err)
		return nil, fmt.Errorf("%w: Update - read settings: %v", ErrStoreUnavailable, err)
	}

	if !current.IsAdmin(actor) {
		s.logger.Warn("Update: access denied for phone=%s", actor.Phone)
		return nil, ErrAccessDenied
	}

	if err := validateSettings(updated); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.settingsRepo.Update(ctx, updated); err != nil {
		s.logger.Error("Update: failed to write settings: %v", err)
		return nil, fmt.Errorf("%w: Update - write settings: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Update: settings replaced (workStart=%s, workEnd=%s, slotMinutes=%d, services=%d)",
		updated.WorkStart, updated.WorkEnd, updated.SlotMinutes, len(updated.Services))
	return updated, nil
}

// validateSettings проверяет объект настроек перед записью
func validateSettings(s *domain.Settings) error {
	if err := s.WorkStart.Validate(); err != nil {
		return fmt.Errorf("%w: workStart: %v", ErrInvalidSettings, err)
	}
	if err := s.WorkEnd.Validate(); err != nil {
		return fmt.Errorf("%w: workEnd: %v", ErrInvalidSettings, err)
	}

	if s.SlotMinutes < domain.MinSlotMinutes || s.SlotMinutes > domain.MaxSlotMinutes {
		return fmt.Errorf("%w: slotMinutes must be between %d and %d",
			ErrInvalidSettings, domain.MinSlotMinutes, domain.MaxSlotMinutes)
	}

	for _, item := range s.Services {
		if item.Name == "" || len(item.Name) > domain.MaxServiceNameLength {
			return fmt.Errorf("%w: service name length must be 1..%d",
				ErrInvalidSettings, domain.MaxServiceNameLength)
		}
		if item.DurationMinutes <= 0 {
			return fmt.Errorf("%w: service %q duration must be positive",
				ErrInvalidSettings, item.Name)
		}
		if item.Deposit < 0 {
			return fmt.Errorf("%w: service %q deposit must not be negative",
				ErrInvalidSettings, item.Name)
		}
	}

	return nil
}
