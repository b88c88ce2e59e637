package update_settings

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UpdateSettingsRequest HTTP request model. Настройки заменяются целиком.
type UpdateSettingsRequest struct {
	WorkStart   string           `json:"workStart"` // HH:MM
	WorkEnd     string           `json:"workEnd"`   // HH:MM
	SlotMinutes int              `json:"slotMinutes"`
	Services    []ServiceRequest `json:"services"`
	MasterName  string           `json:"masterName"`
	AdminPhone  string           `json:"adminPhone"`
}

// ServiceRequest модель услуги каталога
type ServiceRequest struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Deposit         float64 `json:"deposit"`
}

// ToSettings конвертирует HTTP запрос в доменные настройки
func (r *UpdateSettingsRequest) ToSettings() (*domain.Settings, error) {
	workStart, err := types.NewTimeStringFromString(r.WorkStart)
	if err != nil {
		return nil, err
	}
	workEnd, err := types.NewTimeStringFromString(r.WorkEnd)
	if err != nil {
		return nil, err
	}

	services := make([]domain.ServiceItem, len(r.Services))
	for i, item := range r.Services {
		services[i] = domain.ServiceItem{
			Name:            item.Name,
			DurationMinutes: item.DurationMinutes,
			Deposit:         item.Deposit,
		}
	}

	return &domain.Settings{
		WorkStart:   workStart,
		WorkEnd:     workEnd,
		SlotMinutes: r.SlotMinutes,
		Services:    services,
		MasterName:  r.MasterName,
		AdminPhone:  r.AdminPhone,
	}, nil
}
