package calendar

import (
	"context"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// CalendarRepository интерфейс репозитория ценового календаря
type CalendarRepository interface {
	ListDateOverrides(ctx context.Context, categoryID int64) ([]*domain.DateOverride, error)
	UpsertDateOverride(ctx context.Context, override *domain.DateOverride) (*domain.DateOverride, error)
	DeleteDateOverride(ctx context.Context, categoryID int64, date types.DateString) error
	ListHolidayRules(ctx context.Context, categoryID int64) ([]*domain.HolidayRule, error)
	CreateHolidayRule(ctx context.Context, rule *domain.HolidayRule) (*domain.HolidayRule, error)
	SetHolidayRuleActive(ctx context.Context, ruleID int64, active bool) error
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
