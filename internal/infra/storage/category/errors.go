package category

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория номеров не найдена
	ErrCategoryNotFound = errors.New("category.repository: room category not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("category.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("category.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("category.repository: failed to scan row")
)
