package create_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат проживания
	// (checkIn >= checkOut либо дата не распарсилась). Всегда ошибка вызывающей
	// стороны, повтор бессмыслен.
	ErrInvalidRange = errors.New("create_reservation: invalid stay date range")

	// ErrCategoryNotFound возвращается, когда категория номеров не найдена
	ErrCategoryNotFound = errors.New("create_reservation: room category not found")

	// ErrRoomUnavailable возвращается, когда хотя бы на одну ночь диапазона
	// не осталось свободных номеров
	ErrRoomUnavailable = errors.New("create_reservation: no units available for the requested dates")

	// ErrTimeout возвращается при превышении таймаута транзакции бронирования.
	// Запись не применена, повтор всего вызова безопасен.
	ErrTimeout = errors.New("create_reservation: reservation transaction timed out")

	// ErrTxConflict возвращается, когда повторы сериализуемой транзакции
	// исчерпаны из-за конфликтов. Запись не применена, повтор безопасен.
	ErrTxConflict = errors.New("create_reservation: reservation transaction conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// RoomUnavailableError несет минимальное число свободных номеров по ночам
// диапазона, чтобы вызывающая сторона могла показать "осталось N номеров"
// без второго запроса. Сопоставляется через errors.Is с ErrRoomUnavailable.
type RoomUnavailableError struct {
	MinRemaining int
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("%v (remaining units: %d)", ErrRoomUnavailable, e.MinRemaining)
}

func (e *RoomUnavailableError) Unwrap() error {
	return ErrRoomUnavailable
}
