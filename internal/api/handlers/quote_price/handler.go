package quote_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers"
	quotePrice "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/quote_price"
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
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/categories/{categoryId}/quote
// Query params: checkIn (required, YYYY-MM-DD), checkOut (required, YYYY-MM-DD, исключительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем categoryId из URL
	vars := mux.Vars(r)
	categoryIDStr := vars["categoryId"]

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /categories/{id}/quote - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	// Извлекаем даты из query параметров
	checkInStr := r.URL.Query().Get("checkIn")
	if checkInStr == "" {
		h.logger.Warn("GET /categories/{id}/quote - Missing checkIn: category_id=%d", categoryID)
		handlers.RespondBadRequest(w, msgMissingCheckIn)
		return
	}

	checkOutStr := r.URL.Query().Get("checkOut")
	if checkOutStr == "" {
		h.logger.Warn("GET /categories/{id}/quote - Missing checkOut: category_id=%d", categoryID)
		handlers.RespondBadRequest(w, msgMissingCheckOut)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(categoryID, checkInStr, checkOutStr)
	if err != nil {
		h.logger.Warn("GET /categories/{id}/quote - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidRange):
			h.logger.Warn("GET /categories/{id}/quote - Invalid range: category_id=%d, checkIn=%s, checkOut=%s",
				categoryID, checkInStr, checkOutStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, quotePrice.ErrCategoryNotFound):
			h.logger.Warn("GET /categories/{id}/quote - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		default:
			h.logger.Error("GET /categories/{id}/quote - Failed to quote price: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /categories/{id}/quote - Price quoted: category_id=%d, nights=%d, total=%d",
		categoryID, len(result.Nights), result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
