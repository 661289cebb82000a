package lunarcalendar

import "errors"

var (
	// ErrDateNotResolvable возвращается, когда лунная дата не существует
	// в запрошенном году (например, 30-й день короткого лунного месяца)
	ErrDateNotResolvable = errors.New("lunarcalendar client: lunar date not resolvable for this year")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("lunarcalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("lunarcalendar client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что календарный сервис недоступен и лунные праздничные
	// правила следует считать несработавшими.
	ErrServiceDegraded = errors.New("lunarcalendar unavailable: graceful degradation applied")
)
