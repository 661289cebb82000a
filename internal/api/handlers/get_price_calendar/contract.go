package get_price_calendar

import (
	"context"

	quotePrice "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/quote_price"
)

type PriceCalendarUseCase interface {
	MonthCalendar(ctx context.Context, req *quotePrice.CalendarRequest) (*quotePrice.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
