package delete_date_override

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
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound          = "переопределение цены не найдено"
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

// Handle DELETE /api/v1/categories/{categoryId}/calendar/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем categoryId и date из URL
	vars := mux.Vars(r)
	categoryIDStr := vars["categoryId"]
	dateStr := vars["date"]

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /categories/{id}/calendar/overrides/{date} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	// Удаляем переопределение цены
	if err := h.service.DeleteOverride(r.Context(), categoryID, dateStr); err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("DELETE /categories/{id}/calendar/overrides/{date} - Invalid date %q: category_id=%d",
				dateStr, categoryID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, calendar.ErrOverrideNotFound):
			h.logger.Warn("DELETE /categories/{id}/calendar/overrides/{date} - Override not found: category_id=%d, date=%s",
				categoryID, dateStr)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /categories/{id}/calendar/overrides/{date} - Failed to delete override: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /categories/{id}/calendar/overrides/{date} - Override deleted successfully: category_id=%d, date=%s",
		categoryID, dateStr)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
