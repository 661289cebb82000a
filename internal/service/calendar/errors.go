package calendar

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория номеров не найдена
	ErrCategoryNotFound = errors.New("room category not found")

	// ErrOverrideNotFound возвращается, когда переопределение цены не найдено
	ErrOverrideNotFound = errors.New("date override not found")

	// ErrRuleNotFound возвращается, когда праздничное правило не найдено
	ErrRuleNotFound = errors.New("holiday rule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
