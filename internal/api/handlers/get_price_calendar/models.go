package get_price_calendar

import (
	quotePrice "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/quote_price"
)

// PriceCalendarResponse HTTP response model: цены всех дат месяца
type PriceCalendarResponse struct {
	CategoryID int64      `json:"categoryId"`
	Year       int        `json:"year"`
	Month      int        `json:"month"`
	Days       []DayPrice `json:"days"`
}

// DayPrice цена одной даты с источником
type DayPrice struct {
	Date        string  `json:"date"`
	Price       int64   `json:"price"`
	Source      string  `json:"source"` // override | holiday | weekend | base
	HolidayName *string `json:"holidayName,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.CalendarResponse) *PriceCalendarResponse {
	days := make([]DayPrice, 0, len(resp.Days))
	for _, d := range resp.Days {
		item := DayPrice{
			Date:   d.Date.String(),
			Price:  d.Price,
			Source: string(d.Source),
		}
		if d.HolidayName != "" {
			name := d.HolidayName
			item.HolidayName = &name
		}
		days = append(days, item)
	}

	return &PriceCalendarResponse{
		CategoryID: resp.CategoryID,
		Year:       resp.Year,
		Month:      resp.Month,
		Days:       days,
	}
}
