package attempt_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	attemptBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/attempt_booking"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AttemptBookingRequest HTTP request model
type AttemptBookingRequest struct {
	Date      string   `json:"date"`      // "2026-09-14"
	StartTime string   `json:"startTime"` // "10:00"
	Services  []string `json:"services,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Identity и сессия приходят из контекста, не из тела.
func (r *AttemptBookingRequest) ToUseCaseRequest(
	identity *domain.UserIdentity,
	sessionID string,
) (*attemptBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &attemptBooking.Request{
		Identity:  identity,
		SessionID: sessionID,
		Date:      date,
		StartTime: startTime,
		Services:  r.Services,
	}, nil
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Date      string   `json:"date"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Services  []string `json:"services"`
	Price     *float64 `json:"price,omitempty"`
	Status    string   `json:"status"`
	Paid      bool     `json:"paid"`
	CreatedAt string   `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *attemptBooking.Response) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		ID:        resp.ID,
		Name:      resp.User.Name,
		Phone:     resp.User.Phone,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Services:  resp.Services,
		Price:     resp.Price,
		Status:    resp.Status,
		Paid:      resp.Paid,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
