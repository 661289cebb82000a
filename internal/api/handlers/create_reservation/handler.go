package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers"
	createReservation "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата заезда должна быть раньше даты выезда"
	msgCategoryNotFound   = "категория номеров не найдена"
	msgRoomUnavailable    = "нет свободных номеров на выбранные даты"
	msgInvalidInput       = "некорректные данные бронирования"
	msgTimeout            = "бронирование не выполнено за отведенное время, повторите запрос"
	msgTxConflict         = "бронирование отклонено из-за конкурентных запросов, повторите запрос"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrRoomUnavailable):
			h.logger.Warn("POST /reservations - Room unavailable: category_id=%d, checkIn=%s, checkOut=%s",
				req.CategoryID, req.CheckIn, req.CheckOut)
			// Отдаем остаток номеров, если use case его сообщил
			var unavailable *createReservation.RoomUnavailableError
			if errors.As(err, &unavailable) {
				handlers.RespondJSON(w, http.StatusConflict, UnavailableResponse{
					Error:          msgRoomUnavailable,
					RemainingUnits: unavailable.MinRemaining,
				})
				return
			}
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		case errors.Is(err, createReservation.ErrInvalidRange):
			h.logger.Warn("POST /reservations - Invalid range: category_id=%d, checkIn=%s, checkOut=%s",
				req.CategoryID, req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createReservation.ErrCategoryNotFound):
			h.logger.Warn("POST /reservations - Category not found: category_id=%d", req.CategoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: category_id=%d, error=%v", req.CategoryID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrTimeout):
			h.logger.Warn("POST /reservations - Transaction timeout: category_id=%d, checkIn=%s, checkOut=%s",
				req.CategoryID, req.CheckIn, req.CheckOut)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTimeout)

		case errors.Is(err, createReservation.ErrTxConflict):
			h.logger.Warn("POST /reservations - Transaction conflict: category_id=%d, checkIn=%s, checkOut=%s",
				req.CategoryID, req.CheckIn, req.CheckOut)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTxConflict)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: category_id=%d, error=%v",
				req.CategoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, reference=%s, category_id=%d",
		result.ID, result.Reference, req.CategoryID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
