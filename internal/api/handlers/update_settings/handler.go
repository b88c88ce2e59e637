package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getSettings "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_settings"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	settingsService "github.com/m04kA/SMC-AppointmentService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSettings    = "некорректные настройки"
	msgForbidden          = "изменять настройки может только администратор"
	msgStoreUnavailable   = "хранилище временно недоступно, попробуйте позже"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := req.ToSettings()
	if err != nil {
		h.logger.Warn("PUT /settings - Failed to parse settings: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSettings)
		return
	}

	result, err := h.service.Update(r.Context(), updated, *identity)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrAccessDenied):
			h.logger.Warn("PUT /settings - Access denied: phone=%s", identity.Phone)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settingsService.ErrInvalidSettings):
			h.logger.Warn("PUT /settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		case errors.Is(err, settingsService.ErrStoreUnavailable):
			h.logger.Error("PUT /settings - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated by phone=%s", identity.Phone)
	handlers.RespondJSON(w, http.StatusOK, getSettings.FromSettings(result))
}
