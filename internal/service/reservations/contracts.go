package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByReference(ctx context.Context, reference uuid.UUID) (*domain.Reservation, error)
	GetByGuestEmail(ctx context.Context, email string, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetByCategoryWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
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
