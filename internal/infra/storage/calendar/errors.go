package calendar

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда переопределение цены не найдено
	ErrOverrideNotFound = errors.New("calendar.repository: date override not found")

	// ErrRuleNotFound возвращается, когда праздничное правило не найдено
	ErrRuleNotFound = errors.New("calendar.repository: holiday rule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
