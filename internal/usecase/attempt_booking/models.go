package attempt_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	Identity  *domain.UserIdentity // identity клиента; nil = не аутентифицирован
	SessionID string               // идентификатор клиентской сессии (для оверлея)
	Date      time.Time            // день бронирования (без времени)
	StartTime types.TimeString     // время начала слота (например, "10:00")
	Services  []string             // выбранные услуги из каталога (может быть пусто)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string              // ID созданного бронирования
	User      domain.UserIdentity // снимок identity клиента
	Date      time.Time           // день бронирования
	StartTime types.TimeString    // время начала
	EndTime   types.TimeString    // время окончания
	Services  []string            // выбранные услуги
	Price     *float64            // сумма депозитов выбранных услуг, если есть
	Status    string              // статус бронирования (всегда pending)
	Paid      bool                // признак оплаты (всегда false)
	CreatedAt time.Time           // время создания
}
