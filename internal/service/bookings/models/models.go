package models

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// ExportView снимок отфильтрованного списка для внешнего экспорта.
// Порядок записей совпадает с порядком на экране, с которого запрошен
// экспорт; получатель не должен изменять записи.
type ExportView struct {
	Records     []*domain.Booking
	FilterLabel string
}
