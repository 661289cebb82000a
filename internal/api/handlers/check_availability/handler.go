package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers"
	checkAvailability "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/check_availability"
)

const (
	msgInvalidCategoryID = "некорректный ID категории"
	msgMissingCheckIn    = "дата заезда обязательна"
	msgMissingCheckOut   = "дата выезда обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange      = "дата заезда должна быть раньше даты выезда"
	msgCategoryNotFound  = "категория номеров не найдена"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/categories/{categoryId}/availability
// Query params: checkIn (required, YYYY-MM-DD), checkOut (required, YYYY-MM-DD, исключительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем categoryId из URL
	vars := mux.Vars(r)
	categoryIDStr := vars["categoryId"]

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /categories/{id}/availability - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	// Извлекаем даты из query параметров
	checkInStr := r.URL.Query().Get("checkIn")
	if checkInStr == "" {
		h.logger.Warn("GET /categories/{id}/availability - Missing checkIn: category_id=%d", categoryID)
		handlers.RespondBadRequest(w, msgMissingCheckIn)
		return
	}

	checkOutStr := r.URL.Query().Get("checkOut")
	if checkOutStr == "" {
		h.logger.Warn("GET /categories/{id}/availability - Missing checkOut: category_id=%d", categoryID)
		handlers.RespondBadRequest(w, msgMissingCheckOut)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(categoryID, checkInStr, checkOutStr)
	if err != nil {
		h.logger.Warn("GET /categories/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /categories/{id}/availability - Invalid range: category_id=%d, checkIn=%s, checkOut=%s",
				categoryID, checkInStr, checkOutStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrCategoryNotFound):
			h.logger.Warn("GET /categories/{id}/availability - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		default:
			h.logger.Error("GET /categories/{id}/availability - Failed to check availability: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /categories/{id}/availability - Availability checked: category_id=%d, available=%v, remaining=%d",
		categoryID, result.Available, result.RemainingUnits)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
