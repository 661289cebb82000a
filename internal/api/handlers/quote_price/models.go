package quote_price

import (
	"github.com/m04kA/HMS-RoomInventoryService/internal/pricing"
	quotePrice "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/quote_price"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	CategoryID int64        `json:"categoryId"`
	CheckIn    string       `json:"checkIn"`
	CheckOut   string       `json:"checkOut"` // исключительно
	TotalPrice int64        `json:"totalPrice"`
	Nights     []NightPrice `json:"nights"`
}

// NightPrice цена одной ночи с источником
type NightPrice struct {
	Date        string  `json:"date"`
	Price       int64   `json:"price"`
	Source      string  `json:"source"` // override | holiday | weekend | base
	HolidayName *string `json:"holidayName,omitempty"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(categoryID int64, checkInStr, checkOutStr string) (*quotePrice.Request, error) {
	checkIn, err := types.NewDateStringFromString(checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.NewDateStringFromString(checkOutStr)
	if err != nil {
		return nil, err
	}

	return &quotePrice.Request{
		CategoryID: categoryID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		CategoryID: resp.CategoryID,
		CheckIn:    resp.CheckIn.String(),
		CheckOut:   resp.CheckOut.String(),
		TotalPrice: resp.TotalPrice,
		Nights:     fromNightPrices(resp.Nights),
	}
}

func fromNightPrices(nights []pricing.NightPrice) []NightPrice {
	out := make([]NightPrice, 0, len(nights))
	for _, n := range nights {
		item := NightPrice{
			Date:   n.Date.String(),
			Price:  n.Price,
			Source: string(n.Source),
		}
		if n.HolidayName != "" {
			name := n.HolidayName
			item.HolidayName = &name
		}
		out = append(out, item)
	}
	return out
}
