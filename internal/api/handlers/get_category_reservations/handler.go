package get_category_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations"
)

const (
	msgInvalidCategoryID = "некорректный ID категории"
	msgInvalidParams     = "некорректные параметры запроса"
	msgCategoryNotFound  = "категория номеров не найдена"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/categories/{categoryId}/reservations
// Query params: from, to, status, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем categoryId из URL
	vars := mux.Vars(r)
	categoryIDStr := vars["categoryId"]

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /categories/{id}/reservations - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	// Получаем опциональные query параметры
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	statusStr := r.URL.Query().Get("status")
	includeInactiveStr := r.URL.Query().Get("includeInactive")

	// Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(categoryID, fromStr, toStr, statusStr, includeInactiveStr)
	if err != nil {
		h.logger.Warn("GET /categories/{id}/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования категории
	result, err := h.service.GetCategoryReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrCategoryNotFound):
			h.logger.Warn("GET /categories/{id}/reservations - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /categories/{id}/reservations - Invalid filter: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /categories/{id}/reservations - Failed to get reservations: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /categories/{id}/reservations - Reservations retrieved successfully: category_id=%d, count=%d",
		categoryID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
