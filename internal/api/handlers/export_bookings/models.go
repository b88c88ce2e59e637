package export_bookings

import (
	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// ExportResponse HTTP response model. Порядок записей совпадает с
// порядком экрана, с которого запрошен экспорт.
type ExportResponse struct {
	FilterLabel string                 `json:"filterLabel"`
	Records     []handlers.BookingView `json:"records"`
}

// FromExportView конвертирует снимок экспорта в HTTP response
func FromExportView(view *models.ExportView) *ExportResponse {
	return &ExportResponse{
		FilterLabel: view.FilterLabel,
		Records:     handlers.NewBookingViews(view.Records),
	}
}
