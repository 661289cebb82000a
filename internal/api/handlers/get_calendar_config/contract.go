package get_calendar_config

import (
	"context"

	"github.com/m04kA/HMS-RoomInventoryService/internal/service/calendar/models"
)

type CalendarService interface {
	GetCalendar(ctx context.Context, categoryID int64) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
