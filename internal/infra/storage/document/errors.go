package document

import "errors"

var (
	// ErrDocumentNotFound возвращается, когда документ не найден
	ErrDocumentNotFound = errors.New("document.store: document not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("document.store: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("document.store: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("document.store: failed to scan row")
)
