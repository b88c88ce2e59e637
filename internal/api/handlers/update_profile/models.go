package update_profile

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// UpdateProfileRequest HTTP request model: новые данные профиля.
// Старая identity берется из контекста запроса.
type UpdateProfileRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

// ToIdentity конвертирует запрос в доменную identity
func (r *UpdateProfileRequest) ToIdentity() domain.UserIdentity {
	return domain.UserIdentity{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Instagram: r.Instagram,
	}
}

// UpdateProfileResponse HTTP response model
type UpdateProfileResponse struct {
	UpdatedBookings int `json:"updatedBookings"`
}
