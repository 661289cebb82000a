package get_category_reservations

import (
	"context"

	"github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations/models"
)

type ReservationService interface {
	GetCategoryReservations(ctx context.Context, req *models.GetCategoryReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
