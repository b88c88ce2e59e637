// Package overlay реализует сессионный оверлей "слот в работе".
// Оверлей сужает окно гонки двойного бронирования внутри одной клиентской
// сессии; авторитетной защитой остается повторная проверка коллекции
// перед записью.
package overlay

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-AppointmentService/internal/syncbus"
)

// Overlay двухфазный набор слотов одной сессии.
//
// Фаза processing: слот помечен до завершения записи в хранилище, чтобы
// та же сессия не отправила его повторно, пока запись не завершилась.
// Фаза taken: запись подтверждена; слот считается занятым для этой
// сессии еще до следующего чтения хранилища.
type Overlay struct {
	mu         sync.Mutex
	processing map[string]struct{}
	taken      map[string]struct{}
}

// NewOverlay создает пустой оверлей
func NewOverlay() *Overlay {
	return &Overlay{
		processing: make(map[string]struct{}),
		taken:      make(map[string]struct{}),
	}
}

// MarkProcessing помечает слот как "в работе". Возвращает false, если
// слот уже удерживается этой сессией (в любой из фаз).
func (o *Overlay) MarkProcessing(slotKey string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.processing[slotKey]; ok {
		return false
	}
	if _, ok := o.taken[slotKey]; ok {
		return false
	}

	o.processing[slotKey] = struct{}{}
	return true
}

// Promote переводит слот из processing в taken после успешной записи
func (o *Overlay) Promote(slotKey string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.processing, slotKey)
	o.taken[slotKey] = struct{}{}
}

// Release снимает пометку processing (откат при неудачной записи).
// Слот снова становится доступным для бронирования.
func (o *Overlay) Release(slotKey string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.processing, slotKey)
}

// clearTaken снимает все подтвержденные пометки сессии
func (o *Overlay) clearTaken() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.taken = make(map[string]struct{})
}

// empty возвращает true, если сессия не удерживает ни одного слота
func (o *Overlay) empty() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.processing) == 0 && len(o.taken) == 0
}

// Holds возвращает true, если слот удерживается сессией в любой фазе
func (o *Overlay) Holds(slotKey string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.processing[slotKey]; ok {
		return true
	}
	_, ok := o.taken[slotKey]
	return ok
}

// Registry выдает оверлеи по идентификатору сессии
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Overlay
}

// NewRegistry создает пустой реестр сессий
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Overlay),
	}
}

// Session возвращает оверлей сессии, создавая его при первом обращении
func (r *Registry) Session(sessionID string) *Overlay {
	r.mu.Lock()
	defer r.mu.Unlock()

	ov, ok := r.sessions[sessionID]
	if !ok {
		ov = NewOverlay()
		r.sessions[sessionID] = ov
	}
	return ov
}

// PruneTaken снимает подтвержденные пометки во всех сессиях и выселяет
// опустевшие сессии. После события записи коллекция уже содержит запись,
// и свежее чтение хранилища блокирует слот само; без очистки пометка
// держала бы слот занятым для сессии даже после отмены администратором.
func (r *Registry) PruneTaken() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, ov := range r.sessions {
		ov.clearTaken()
		if ov.empty() {
			delete(r.sessions, id)
		}
	}
}

// Run подписывается на шину изменений и очищает подтвержденные пометки
// после каждой успешной записи коллекции бронирований
func (r *Registry) Run(ctx context.Context, bus *syncbus.Bus) {
	events, cancel := bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Kind == syncbus.KindBookings {
				r.PruneTaken()
			}
		}
	}
}
