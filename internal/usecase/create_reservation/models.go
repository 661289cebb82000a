package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CategoryID int64            // ID категории номеров
	CheckIn    types.DateString // Дата заезда
	CheckOut   types.DateString // Дата выезда (исключительно)
	GuestName  string           // Имя гостя
	GuestEmail string           // Email гостя для уведомлений
	Notes      *string          // Дополнительные пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	Reference  uuid.UUID // Внешний идентификатор бронирования
	CategoryID int64
	CheckIn    types.DateString
	CheckOut   types.DateString
	Status     string // Всегда "pending": подтверждение выполняет внешний административный workflow
	GuestName  string
	GuestEmail string
	Notes      *string
	TotalPrice int64 // Стоимость проживания, зафиксированная в момент бронирования
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:         res.ID,
		Reference:  res.Reference,
		CategoryID: res.CategoryID,
		CheckIn:    res.CheckIn,
		CheckOut:   res.CheckOut,
		Status:     string(res.Status),
		GuestName:  res.GuestName,
		GuestEmail: res.GuestEmail,
		Notes:      res.Notes,
		TotalPrice: res.TotalPrice,
		CreatedAt:  res.CreatedAt,
		UpdatedAt:  res.UpdatedAt,
	}
}
