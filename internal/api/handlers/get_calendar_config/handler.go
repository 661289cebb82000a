package get_calendar_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/calendar"
)

const (
	msgInvalidCategoryID = "некорректный ID категории"
	msgCategoryNotFound  = "категория номеров не найдена"
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

// Handle GET /api/v1/categories/{categoryId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем categoryId из URL
	vars := mux.Vars(r)
	categoryIDStr := vars["categoryId"]

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /categories/{id}/calendar - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	// Получаем ценовой календарь категории
	result, err := h.service.GetCalendar(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrCategoryNotFound):
			h.logger.Warn("GET /categories/{id}/calendar - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		default:
			h.logger.Error("GET /categories/{id}/calendar - Failed to get calendar: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /categories/{id}/calendar - Calendar retrieved successfully: category_id=%d, overrides=%d, rules=%d",
		categoryID, len(result.Overrides), len(result.HolidayRules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
