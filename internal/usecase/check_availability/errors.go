package check_availability

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат проживания
	// (дата заезда не раньше даты выезда либо дата не распарсилась)
	ErrInvalidRange = errors.New("check_availability: invalid stay date range")

	// ErrCategoryNotFound возвращается, когда категория номеров не найдена
	ErrCategoryNotFound = errors.New("check_availability: room category not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
