package get_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный идентификатор бронирования"
	msgNotFound             = "бронирование не найдено"
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

// Handle GET /api/v1/reservations/{reservationId}
// Принимает внутренний числовой ID либо внешний UUID (reference)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["reservationId"]

	var (
		reservation *models.ReservationResponse
		err         error
	)

	// Числовой идентификатор - внутренний ID, иначе пробуем UUID
	if reservationID, parseErr := strconv.ParseInt(idStr, 10, 64); parseErr == nil {
		reservation, err = h.service.GetByID(r.Context(), reservationID)
	} else if reference, parseErr := uuid.Parse(idStr); parseErr == nil {
		reservation, err = h.service.GetByReference(r.Context(), reference)
	} else {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation identifier: %s", idStr)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Reservation not found: id=%s", idStr)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to get reservation: id=%s, error=%v", idStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id} - Reservation retrieved successfully: id=%s", idStr)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
