package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/create_reservation"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CategoryID int64   `json:"categoryId"`
	CheckIn    string  `json:"checkIn"`  // "2025-10-15"
	CheckOut   string  `json:"checkOut"` // "2025-10-18", исключительно
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	Notes      *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	Reference  string  `json:"reference"`
	CategoryID int64   `json:"categoryId"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Status     string  `json:"status"`
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	Notes      *string `json:"notes,omitempty"`
	TotalPrice int64   `json:"totalPrice"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// UnavailableResponse тело ответа 409: сколько номеров осталось в самую загруженную ночь
type UnavailableResponse struct {
	Error          string `json:"error"`
	RemainingUnits int    `json:"remainingUnits"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	checkIn, err := types.NewDateStringFromString(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.NewDateStringFromString(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		CategoryID: r.CategoryID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		Reference:  resp.Reference.String(),
		CategoryID: resp.CategoryID,
		CheckIn:    resp.CheckIn.String(),
		CheckOut:   resp.CheckOut.String(),
		Status:     resp.Status,
		GuestName:  resp.GuestName,
		GuestEmail: resp.GuestEmail,
		Notes:      resp.Notes,
		TotalPrice: resp.TotalPrice,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
