package get_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error)
	GetByReference(ctx context.Context, reference uuid.UUID) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
