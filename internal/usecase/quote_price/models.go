package quote_price

import (
	"github.com/m04kA/HMS-RoomInventoryService/internal/pricing"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// Request модель запроса на расчет стоимости проживания
type Request struct {
	CategoryID int64            // ID категории номеров
	CheckIn    types.DateString // Дата заезда
	CheckOut   types.DateString // Дата выезда (исключительно)
}

// Response модель ответа с расчетом стоимости
type Response struct {
	CategoryID int64
	CheckIn    types.DateString
	CheckOut   types.DateString
	TotalPrice int64                // Итоговая стоимость всех ночей
	Nights     []pricing.NightPrice // Разбивка по ночам с источником цены
}

// CalendarRequest модель запроса цен на календарный месяц (для UI календаря)
type CalendarRequest struct {
	CategoryID int64
	Year       int
	Month      int // 1-12
}

// CalendarResponse цены всех дат календарного месяца
type CalendarResponse struct {
	CategoryID int64
	Year       int
	Month      int
	Days       []pricing.NightPrice
}
