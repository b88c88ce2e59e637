package document

import (
	"context"
	"sync"
)

// MemoryStore хранилище документов в памяти.
// Используется в тестах и при запуске без базы данных.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string][]byte),
	}
}

// Get читает тело документа целиком
func (s *MemoryStore) Get(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	body, ok := s.docs[name]
	if !ok {
		return nil, ErrDocumentNotFound
	}

	// копия, чтобы вызывающий не мог изменить содержимое хранилища
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

// Put заменяет тело документа целиком
func (s *MemoryStore) Put(_ context.Context, name string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(body))
	copy(stored, body)
	s.docs[name] = stored
	return nil
}
