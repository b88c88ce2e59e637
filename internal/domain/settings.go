package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// ServiceItem is one entry of the master's service catalog
type ServiceItem struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Deposit         float64 `json:"deposit"`
}

// Settings is the process-wide booking configuration: working window,
// slot granularity and the service catalog. Stored as a single document
// and replaced wholesale on every update.
type Settings struct {
	WorkStart   types.TimeString `json:"workStart"`
	WorkEnd     types.TimeString `json:"workEnd"`
	SlotMinutes int              `json:"slotMinutes"`
	Services    []ServiceItem    `json:"services"`
	MasterName  string           `json:"masterName"`
	AdminPhone  string           `json:"adminPhone"`
}

// DefaultSettings returns the configuration injected on first read when
// no settings document exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		WorkStart:   DefaultWorkStart,
		WorkEnd:     DefaultWorkEnd,
		SlotMinutes: DefaultSlotMinutes,
		Services:    []ServiceItem{},
	}
}

// ServiceByName returns the catalog entry with the given name, or nil
func (s *Settings) ServiceByName(name string) *ServiceItem {
	for i := range s.Services {
		if s.Services[i].Name == name {
			return &s.Services[i]
		}
	}
	return nil
}

// IsAdmin returns true if the identity matches the configured admin phone
func (s *Settings) IsAdmin(identity UserIdentity) bool {
	return s.AdminPhone != "" && identity.Phone == s.AdminPhone
}
