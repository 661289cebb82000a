package get_price_calendar

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
	msgMissingYear       = "год обязателен"
	msgMissingMonth      = "месяц обязателен"
	msgInvalidYear       = "некорректный год"
	msgInvalidMonth      = "некорректный месяц, ожидается 1-12"
	msgCategoryNotFound  = "категория номеров не найдена"
)

type Handler struct {
	useCase PriceCalendarUseCase
	logger  Logger
}

func NewHandler(useCase PriceCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/categories/{categoryId}/price-calendar
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем categoryId из URL
	vars := mux.Vars(r)
	categoryIDStr := vars["categoryId"]

	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /categories/{id}/price-calendar - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	// Извлекаем год из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /categories/{id}/price-calendar - Missing year: category_id=%d", categoryID)
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		h.logger.Warn("GET /categories/{id}/price-calendar - Invalid year %q: category_id=%d", yearStr, categoryID)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Извлекаем месяц из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /categories/{id}/price-calendar - Missing month: category_id=%d", categoryID)
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /categories/{id}/price-calendar - Invalid month %q: category_id=%d", monthStr, categoryID)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Вызываем use case
	result, err := h.useCase.MonthCalendar(r.Context(), &quotePrice.CalendarRequest{
		CategoryID: categoryID,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrCategoryNotFound):
			h.logger.Warn("GET /categories/{id}/price-calendar - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("GET /categories/{id}/price-calendar - Invalid input: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /categories/{id}/price-calendar - Failed to build calendar: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /categories/{id}/price-calendar - Calendar built: category_id=%d, year=%d, month=%d, days=%d",
		categoryID, year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
