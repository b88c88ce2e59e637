package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProfile     = "имя и телефон обязательны"
	msgUnauthenticated    = "требуется аутентификация"
	msgStoreUnavailable   = "хранилище временно недоступно, попробуйте позже"
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

// Handle PUT /api/v1/profile
// После смены данных профиля снимки identity во всех бронированиях со
// старым телефоном переписываются на новые (propagation on rename).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Name == "" || req.Phone == "" {
		handlers.RespondBadRequest(w, msgInvalidProfile)
		return
	}

	updated, err := h.service.PropagateIdentity(r.Context(), identity.Phone, req.ToIdentity())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStoreUnavailable):
			h.logger.Error("PUT /profile - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		case errors.Is(err, bookings.ErrInvalidFilter):
			h.logger.Warn("PUT /profile - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		default:
			h.logger.Error("PUT /profile - Failed to propagate identity: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile - Identity propagated: phone=%s -> %s, updated=%d",
		identity.Phone, req.Phone, updated)
	handlers.RespondJSON(w, http.StatusOK, UpdateProfileResponse{UpdatedBookings: updated})
}
