package quote_price

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат проживания,
	// включая диапазон нулевой длины (checkIn == checkOut)
	ErrInvalidRange = errors.New("quote_price: invalid stay date range")

	// ErrCategoryNotFound возвращается, когда категория номеров не найдена
	ErrCategoryNotFound = errors.New("quote_price: room category not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
