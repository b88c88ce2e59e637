package list_bookings

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ParseFilter строит фильтр списка из query-параметров:
// date=YYYY-MM-DD, status=<enum|all>, q=<текст>
func ParseFilter(query url.Values) (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Status: domain.StatusFilterAll,
		Query:  query.Get("q"),
	}

	if status := query.Get("status"); status != "" {
		filter.Status = status
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Date = &date
	}

	return filter, nil
}
