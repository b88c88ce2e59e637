package get_settings

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// SettingsResponse HTTP response model
type SettingsResponse struct {
	WorkStart   string            `json:"workStart"` // HH:MM
	WorkEnd     string            `json:"workEnd"`   // HH:MM
	SlotMinutes int               `json:"slotMinutes"`
	Services    []ServiceResponse `json:"services"`
	MasterName  string            `json:"masterName"`
	AdminPhone  string            `json:"adminPhone"`
}

// ServiceResponse модель услуги каталога
type ServiceResponse struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Deposit         float64 `json:"deposit"`
}

// FromSettings конвертирует доменные настройки в HTTP response
func FromSettings(s *domain.Settings) *SettingsResponse {
	services := make([]ServiceResponse, len(s.Services))
	for i, item := range s.Services {
		services[i] = ServiceResponse{
			Name:            item.Name,
			DurationMinutes: item.DurationMinutes,
			Deposit:         item.Deposit,
		}
	}

	return &SettingsResponse{
		WorkStart:   s.WorkStart.String(),
		WorkEnd:     s.WorkEnd.String(),
		SlotMinutes: s.SlotMinutes,
		Services:    services,
		MasterName:  s.MasterName,
		AdminPhone:  s.AdminPhone,
	}
}
