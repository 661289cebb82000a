package create_reservation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CategoryID <= 0 {
		return fmt.Errorf("%w: categoryID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName exceeds %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if _, err := mail.ParseAddress(req.GuestEmail); err != nil {
		return fmt.Errorf("%w: guestEmail is not a valid email address", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStayLength проверяет, что длительность проживания в допустимых пределах
func validateStayLength(nights int) error {
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}
	return nil
}
