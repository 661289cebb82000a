package create_reservation

import (
	"context"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	"github.com/m04kA/HMS-RoomInventoryService/internal/integrations/notifyservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByCategoryWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// CategoryRepository интерфейс репозитория каталога категорий
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RoomCategory, error)
}

// CalendarRepository интерфейс репозитория ценового календаря
type CalendarRepository interface {
	ListDateOverrides(ctx context.Context, categoryID int64) ([]*domain.DateOverride, error)
	ListHolidayRules(ctx context.Context, categoryID int64) ([]*domain.HolidayRule, error)
}

// NotifyServiceClient интерфейс клиента сервиса уведомлений
type NotifyServiceClient interface {
	SendReservationCreated(ctx context.Context, event *notifyservice.ReservationCreatedEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс счетчиков бронирований
type Metrics interface {
	IncReservationCreated(category string)
	IncReservationConflict()
}

// NopMetrics заглушка счетчиков, используется при выключенных метриках
type NopMetrics struct{}

func (NopMetrics) IncReservationCreated(string) {}
func (NopMetrics) IncReservationConflict()      {}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
