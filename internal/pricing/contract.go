package pricing

import (
	"context"

	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// LunarResolver интерфейс внешнего сервиса лунного календаря
type LunarResolver interface {
	ResolveLunarDateWithGracefulDegradation(ctx context.Context, month, day, year int) (types.DateString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
