package check_availability

import (
	checkAvailability "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/check_availability"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CategoryID     int64            `json:"categoryId"`
	CheckIn        string           `json:"checkIn"`
	CheckOut       string           `json:"checkOut"` // исключительно
	Available      bool             `json:"available"`
	RemainingUnits int              `json:"remainingUnits"`
	TotalUnits     int              `json:"totalUnits"`
	Nights         []NightOccupancy `json:"nights"`
}

// NightOccupancy занятость одной ночи проживания
type NightOccupancy struct {
	Date      string `json:"date"`
	Occupied  int    `json:"occupied"`
	Remaining int    `json:"remaining"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(categoryID int64, checkInStr, checkOutStr string) (*checkAvailability.Request, error) {
	checkIn, err := types.NewDateStringFromString(checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.NewDateStringFromString(checkOutStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		CategoryID: categoryID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	nights := make([]NightOccupancy, 0, len(resp.Nights))
	for _, n := range resp.Nights {
		nights = append(nights, NightOccupancy{
			Date:      n.Date.String(),
			Occupied:  n.Occupied,
			Remaining: n.Remaining,
		})
	}

	return &AvailabilityResponse{
		CategoryID:     resp.CategoryID,
		CheckIn:        resp.CheckIn.String(),
		CheckOut:       resp.CheckOut.String(),
		Available:      resp.Available,
		RemainingUnits: resp.RemainingUnits,
		TotalUnits:     resp.TotalUnits,
		Nights:         nights,
	}
}
