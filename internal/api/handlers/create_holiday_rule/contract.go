package create_holiday_rule

import (
	"context"

	"github.com/m04kA/HMS-RoomInventoryService/internal/service/calendar/models"
)

type CalendarService interface {
	CreateHolidayRule(ctx context.Context, categoryID int64, req *models.CreateHolidayRuleRequest) (*models.HolidayRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
