package update_holiday_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/calendar"
)

const (
	msgInvalidRuleID      = "некорректный ID правила"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "праздничное правило не найдено"
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

// Handle PATCH /api/v1/calendar/holidays/{ruleId}/active
// Отключенное правило перестает влиять на расчет цен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем ruleId из URL
	vars := mux.Vars(r)
	ruleIDStr := vars["ruleId"]

	ruleID, err := strconv.ParseInt(ruleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /calendar/holidays/{id}/active - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	// Декодируем body
	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /calendar/holidays/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Переключаем активность правила
	if err := h.service.SetHolidayRuleActive(r.Context(), ruleID, req.Active); err != nil {
		switch {
		case errors.Is(err, calendar.ErrRuleNotFound):
			h.logger.Warn("PATCH /calendar/holidays/{id}/active - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /calendar/holidays/{id}/active - Failed to update rule: rule_id=%d, error=%v",
				ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /calendar/holidays/{id}/active - Rule updated successfully: rule_id=%d, active=%v",
		ruleID, req.Active)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
