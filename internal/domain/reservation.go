package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a stay booked for one unit of a room category.
// Nights occupied are every date in [CheckIn, CheckOut); CheckOut is exclusive.
type Reservation struct {
	ID         int64
	Reference  uuid.UUID // Внешний идентификатор для гостей и уведомлений
	CategoryID int64
	CheckIn    types.DateString
	CheckOut   types.DateString
	Status     ReservationStatus

	GuestName  string
	GuestEmail string
	Notes      *string

	// Итоговая цена проживания, зафиксированная в момент бронирования
	TotalPrice int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies inventory
// (pending and confirmed reservations both count against capacity)
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the reservation can be confirmed by the admin workflow
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

// OccupiesNight returns true if the given date falls within [CheckIn, CheckOut)
func (r *Reservation) OccupiesNight(date types.DateString) bool {
	return !date.IsBefore(r.CheckIn) && date.IsBefore(r.CheckOut)
}

// Overlaps returns true if the reservation occupies at least one night in [from, to)
func (r *Reservation) Overlaps(from, to types.DateString) bool {
	return r.CheckIn.IsBefore(to) && from.IsBefore(r.CheckOut)
}

// ReservationFilter фильтр для выборки бронирований категории
type ReservationFilter struct {
	CategoryID      int64              // Обязательный параметр
	From            *types.DateString  // Начало периода (включительно, опционально)
	To              *types.DateString  // Конец периода (исключительно, опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые бронирования
}
