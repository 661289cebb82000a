package upsert_date_override

import (
	"context"

	"github.com/m04kA/HMS-RoomInventoryService/internal/service/calendar/models"
)

type CalendarService interface {
	UpsertOverride(ctx context.Context, categoryID int64, req *models.UpsertOverrideRequest) (*models.DateOverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
