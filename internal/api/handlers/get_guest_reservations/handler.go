package get_guest_reservations

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations"
)

const (
	msgMissingEmail  = "email гостя обязателен"
	msgInvalidEmail  = "некорректный email гостя"
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/guests/reservations
// Query params: email (required), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем email из query параметров
	email := r.URL.Query().Get("email")
	if email == "" {
		h.logger.Warn("GET /guests/reservations - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	if _, err := mail.ParseAddress(email); err != nil {
		h.logger.Warn("GET /guests/reservations - Invalid email: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmail)
		return
	}

	// Извлекаем опциональный фильтр по статусу
	var status *string
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status = &statusStr
	}

	// Получаем историю бронирований гостя
	result, err := h.service.GetGuestReservations(r.Context(), email, status)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /guests/reservations - Invalid status filter: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /guests/reservations - Failed to get reservations: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guests/reservations - Reservations retrieved successfully: count=%d",
		len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
