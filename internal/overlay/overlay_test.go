package overlay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/internal/syncbus"
)

const slotKey = "2026-03-15 10:00"

func TestOverlay_MarkProcessing(t *testing.T) {
	t.Parallel()

	ov := NewOverlay()

	assert.True(t, ov.MarkProcessing(slotKey), "первая пометка должна пройти")
	assert.False(t, ov.MarkProcessing(slotKey), "повторная пометка того же слота должна быть отклонена")
	assert.True(t, ov.MarkProcessing("2026-03-15 11:00"), "другой слот помечается независимо")
}

func TestOverlay_Promote(t *testing.T) {
	t.Parallel()

	ov := NewOverlay()
	ov.MarkProcessing(slotKey)
	ov.Promote(slotKey)

	assert.True(t, ov.Holds(slotKey), "после промоушена слот удерживается")
	assert.False(t, ov.MarkProcessing(slotKey), "подтвержденный слот нельзя пометить снова")
}

func TestOverlay_Release(t *testing.T) {
	t.Parallel()

	ov := NewOverlay()
	ov.MarkProcessing(slotKey)
	ov.Release(slotKey)

	assert.False(t, ov.Holds(slotKey), "после отката слот свободен")
	assert.True(t, ov.MarkProcessing(slotKey), "после отката слот можно пометить снова")
}

func TestOverlay_ReleaseDoesNotTouchTaken(t *testing.T) {
	t.Parallel()

	ov := NewOverlay()
	ov.MarkProcessing(slotKey)
	ov.Promote(slotKey)
	ov.Release(slotKey)

	// Release снимает только фазу processing
	assert.True(t, ov.Holds(slotKey))
}

func TestOverlay_Holds(t *testing.T) {
	t.Parallel()

	ov := NewOverlay()
	assert.False(t, ov.Holds(slotKey))

	ov.MarkProcessing(slotKey)
	assert.True(t, ov.Holds(slotKey), "processing считается удержанием")

	ov.Promote(slotKey)
	assert.True(t, ov.Holds(slotKey), "taken считается удержанием")
}

func TestRegistry_Session(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	first := reg.Session("session-a")
	second := reg.Session("session-a")
	other := reg.Session("session-b")

	assert.Same(t, first, second, "одна сессия — один оверлей")
	assert.NotSame(t, first, other, "разные сессии изолированы")

	// пометки одной сессии не видны другой
	first.MarkProcessing(slotKey)
	assert.False(t, other.Holds(slotKey))
}

func TestRegistry_PruneTaken(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	confirmed := reg.Session("session-a")
	confirmed.MarkProcessing(slotKey)
	confirmed.Promote(slotKey)

	inFlight := reg.Session("session-b")
	inFlight.MarkProcessing(slotKey)

	reg.PruneTaken()

	// подтвержденная пометка снята: коллекция уже блокирует слот сама,
	// а после отмены администратором слот снова должен быть виден сессии
	assert.False(t, confirmed.Holds(slotKey))

	// незавершенная запись не трогается
	assert.True(t, inFlight.Holds(slotKey))

	// опустевшая сессия выселена из реестра, занятая остается
	assert.NotSame(t, confirmed, reg.Session("session-a"))
	assert.Same(t, inFlight, reg.Session("session-b"))
}

func TestRegistry_RunPrunesOnBookingsEvent(t *testing.T) {
	t.Parallel()

	bus := syncbus.New()
	reg := NewRegistry()

	ov := reg.Session("session-a")
	ov.MarkProcessing(slotKey)
	ov.Promote(slotKey)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reg.Run(ctx, bus)

	// событие настроек пометки не трогает
	bus.Publish(syncbus.Event{Kind: syncbus.KindSettings})

	// публикуем в цикле: подписка в Run оформляется асинхронно
	assert.Eventually(t, func() bool {
		bus.Publish(syncbus.Event{Kind: syncbus.KindBookings})
		return !ov.Holds(slotKey)
	}, 2*time.Second, 10*time.Millisecond, "после события записи пометка должна быть снята")
}
