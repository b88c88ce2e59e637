package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// PostgresStore хранилище документов поверх PostgreSQL.
// Один документ — одна строка таблицы documents с jsonb-телом.
type PostgresStore struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// NewPostgresStore создает новый экземпляр хранилища документов
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// WithMetrics включает учет операций с документами
func (s *PostgresStore) WithMetrics(m *metrics.Metrics) *PostgresStore {
	s.metrics = m
	return s
}

// Get читает тело документа целиком
func (s *PostgresStore) Get(ctx context.Context, name string) (body []byte, err error) {
	if s.metrics != nil {
		defer func() { s.metrics.ObserveStoreOp("get", name, err) }()
	}
	return s.get(ctx, name)
}

func (s *PostgresStore) get(ctx context.Context, name string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("body").
		From("documents").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var body []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&body)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan document %q: %v", ErrScanRow, name, err)
	}

	return body, nil
}

// Put заменяет тело документа целиком (upsert по имени)
func (s *PostgresStore) Put(ctx context.Context, name string, body []byte) error {
	query, args, err := psqlbuilder.Insert("documents").
		Columns("name", "body").
		Values(name, body).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Put - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Put - execute upsert for %q: %v", ErrExecQuery, name, err)
	}

	return nil
}
