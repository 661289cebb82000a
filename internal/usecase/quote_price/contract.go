package quote_price

import (
	"context"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
)

// CategoryRepository интерфейс репозитория каталога категорий
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RoomCategory, error)
}

// CalendarRepository интерфейс репозитория ценового календаря
type CalendarRepository interface {
	ListDateOverrides(ctx context.Context, categoryID int64) ([]*domain.DateOverride, error)
	ListHolidayRules(ctx context.Context, categoryID int64) ([]*domain.HolidayRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
