package get_guest_reservations

import (
	"context"

	"github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations/models"
)

type ReservationService interface {
	GetGuestReservations(ctx context.Context, email string, status *string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
