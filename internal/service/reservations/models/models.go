package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date in filter")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest запрос на смену статуса бронирования (административный workflow)
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetCategoryReservationsRequest запрос на получение бронирований категории
type GetCategoryReservationsRequest struct {
	CategoryID      int64   `json:"categoryId"`
	From            *string `json:"from,omitempty"`            // Начало периода YYYY-MM-DD (опционально)
	To              *string `json:"to,omitempty"`              // Конец периода YYYY-MM-DD, исключительно (опционально)
	Status          *string `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool    `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCategoryReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		CategoryID:      r.CategoryID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.From != nil {
		from, err := types.NewDateStringFromString(*r.From)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.From = &from
	}

	if r.To != nil {
		to, err := types.NewDateStringFromString(*r.To)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.To = &to
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64  `json:"id"`
	Reference  string `json:"reference"`
	CategoryID int64  `json:"categoryId"`
	CheckIn    string `json:"checkIn"`  // "2025-10-15"
	CheckOut   string `json:"checkOut"` // "2025-10-18", исключительно
	Status     string `json:"status"`

	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	Notes      *string `json:"notes,omitempty"`
	TotalPrice int64   `json:"totalPrice"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		Reference:          r.Reference.String(),
		CategoryID:         r.CategoryID,
		CheckIn:            r.CheckIn.String(),
		CheckOut:           r.CheckOut.String(),
		Status:             string(r.Status),
		GuestName:          r.GuestName,
		GuestEmail:         r.GuestEmail,
		Notes:              r.Notes,
		TotalPrice:         r.TotalPrice,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		if converted := FromDomainReservation(r); converted != nil {
			result = append(result, *converted)
		}
	}
	return &ReservationListResponse{Reservations: result}
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(s) {
	case domain.StatusPending:
		return domain.StatusPending, nil
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}
