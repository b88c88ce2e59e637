package export_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	listBookings "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_bookings"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter    = "некорректный фильтр списка"
	msgForbidden        = "доступ запрещен"
	msgStoreUnavailable = "хранилище временно недоступно, попробуйте позже"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/export?date=YYYY-MM-DD&status=all&q=...
// Фильтр тот же, что и у списка, поэтому парсится тем же кодом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	filter, err := listBookings.ParseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /bookings/export - Invalid date filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, err := h.service.Export(r.Context(), filter, *identity)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/export - Access denied: phone=%s", identity.Phone)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidFilter):
			h.logger.Warn("GET /bookings/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, bookings.ErrStoreUnavailable):
			h.logger.Error("GET /bookings/export - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /bookings/export - Failed to export bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/export - Exported %d records, filter=%q",
		len(view.Records), view.FilterLabel)
	handlers.RespondJSON(w, http.StatusOK, FromExportView(view))
}
