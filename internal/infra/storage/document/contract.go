package document

import "context"

// Хранилище именованных документов: каждый документ читается и
// заменяется целиком, частичных обновлений на границе хранилища нет.

// Store интерфейс хранилища документов
type Store interface {
	// Get возвращает тело документа. ErrDocumentNotFound, если документа нет.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put заменяет тело документа целиком, создавая документ при отсутствии
	Put(ctx context.Context, name string, body []byte) error
}

// Имена документов сервиса
const (
	DocBookings = "bookings"
	DocSettings = "settings"
)
