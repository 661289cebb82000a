package check_availability

import (
	"context"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByCategoryWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// CategoryRepository интерфейс репозитория каталога категорий
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RoomCategory, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
