package create_holiday_rule

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
	msgInvalidData        = "некорректные данные праздничного правила"
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

// Handle POST /api/v1/categories/{categoryId}/calendar/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем categoryId из URL
	vars := mux.Vars(r)
	categoryIDStr := vars["categoryId"]

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /categories/{id}/calendar/holidays - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	// Декодируем body
	var req models.CreateHolidayRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories/{id}/calendar/holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем праздничное правило
	result, err := h.service.CreateHolidayRule(r.Context(), categoryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrCategoryNotFound):
			h.logger.Warn("POST /categories/{id}/calendar/holidays - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /categories/{id}/calendar/holidays - Invalid data: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /categories/{id}/calendar/holidays - Failed to create rule: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /categories/{id}/calendar/holidays - Rule created successfully: category_id=%d, rule_id=%d, name=%s",
		categoryID, result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
