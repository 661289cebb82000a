package get_category_reservations

import (
	"strconv"

	"github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
func ToServiceRequest(categoryID int64, fromStr, toStr, statusStr, includeInactiveStr string) (*models.GetCategoryReservationsRequest, error) {
	req := &models.GetCategoryReservationsRequest{
		CategoryID: categoryID,
	}

	if fromStr != "" {
		req.From = &fromStr
	}

	if toStr != "" {
		req.To = &toStr
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
