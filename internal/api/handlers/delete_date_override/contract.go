package delete_date_override

import "context"

type CalendarService interface {
	DeleteOverride(ctx context.Context, categoryID int64, dateStr string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
