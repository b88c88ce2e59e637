package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/document"
	"github.com/m04kA/SMC-AppointmentService/internal/syncbus"
)

// Repository репозиторий объекта настроек.
// Настройки хранятся одним документом и заменяются целиком.
type Repository struct {
	store    document.Store
	bus      *syncbus.Bus
	defaults *domain.Settings
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(store document.Store, bus *syncbus.Bus) *Repository {
	return &Repository{store: store, bus: bus}
}

// WithDefaults задает стартовые настройки для инициализации чистой базы.
// Здесь прокидывается телефон администратора из конфигурации: без него
// ни один пользователь не прошел бы проверку прав.
func (r *Repository) WithDefaults(s *domain.Settings) *Repository {
	r.defaults = s
	return r
}

// Get читает настройки. При отсутствии документа записывает и возвращает
// стартовые настройки (инициализация при первом чтении).
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	body, err := r.store.Get(ctx, document.DocSettings)
	if errors.Is(err, document.ErrDocumentNotFound) {
		defaults := r.defaults
		if defaults == nil {
			defaults = domain.DefaultSettings()
		}
		if err := r.put(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - read document: %v", ErrStoreUnavailable, err)
	}

	var s domain.Settings
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal settings: %v", ErrDecode, err)
	}

	return &s, nil
}

// Update заменяет объект настроек целиком и публикует событие изменения
func (r *Repository) Update(ctx context.Context, s *domain.Settings) error {
	if err := r.put(ctx, s); err != nil {
		return err
	}

	r.bus.Publish(syncbus.Event{Kind: syncbus.KindSettings})
	return nil
}

func (r *Repository) put(ctx context.Context, s *domain.Settings) error {
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: put - marshal settings: %v", ErrEncode, err)
	}

	if err := r.store.Put(ctx, document.DocSettings, body); err != nil {
		return fmt.Errorf("%w: put - write document: %v", ErrStoreUnavailable, err)
	}

	return nil
}
