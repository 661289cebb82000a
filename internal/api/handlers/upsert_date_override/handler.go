package upsert_date_override

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/calendar"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/calendar/models"
)

const (
	msgInvalidCategoryID  = "некорректный ID категории"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCategoryNotFound   = "категория номеров не найдена"
	msgInvalidData        = "некорректные данные переопределения цены"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/categories/{categoryId}/calendar/overrides
// Идемпотентно: повторный запрос на ту же дату обновляет цену
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем categoryId из URL
	vars := mux.Vars(r)
	categoryIDStr := vars["categoryId"]

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /categories/{id}/calendar/overrides - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	// Декодируем body
	var req models.UpsertOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /categories/{id}/calendar/overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сохраняем переопределение цены
	result, err := h.service.UpsertOverride(r.Context(), categoryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrCategoryNotFound):
			h.logger.Warn("PUT /categories/{id}/calendar/overrides - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("PUT /categories/{id}/calendar/overrides - Invalid data: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /categories/{id}/calendar/overrides - Failed to upsert override: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /categories/{id}/calendar/overrides - Override saved successfully: category_id=%d, date=%s, price=%d",
		categoryID, result.Date, result.Price)
	handlers.RespondJSON(w, http.StatusOK, result)
}
