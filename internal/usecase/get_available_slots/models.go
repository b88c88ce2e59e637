package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Date      time.Time // день, на который запрашиваются слоты (без времени)
	SessionID string    // идентификатор клиентской сессии (для оверлея)
}

// Response модель ответа со слотами дня
type Response struct {
	Date  time.Time // день, на который запрашивались слоты
	Slots []Slot    // все слоты рабочего окна по порядку
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // время начала слота (например, "10:00")
	DurationMinutes int              // длительность слота в минутах
	Available       bool             // можно ли занять слот
}
