package domain

import (
	"errors"

	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// ErrInvalidRange возвращается, когда диапазон дат проживания некорректен:
// дата заезда не раньше даты выезда либо одна из дат не распарсилась
var ErrInvalidRange = errors.New("domain: invalid stay date range")

// StayNights returns every occupied night of a stay, i.e. each date in
// [checkIn, checkOut). A zero-night range (checkIn == checkOut) is invalid.
func StayNights(checkIn, checkOut types.DateString) ([]types.DateString, error) {
	if err := checkIn.Validate(); err != nil {
		return nil, ErrInvalidRange
	}
	if err := checkOut.Validate(); err != nil {
		return nil, ErrInvalidRange
	}
	if !checkIn.IsBefore(checkOut) {
		return nil, ErrInvalidRange
	}

	nights := make([]types.DateString, 0)
	for d := checkIn; d.IsBefore(checkOut); d = d.Next() {
		nights = append(nights, d)
	}
	return nights, nil
}

// CountOccupied returns, for the given night, how many of the reservations
// occupy it. Cancelled reservations never count.
func CountOccupied(night types.DateString, reservations []*Reservation) int {
	count := 0
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if r.OccupiesNight(night) {
			count++
		}
	}
	return count
}

// MaxOccupied returns the highest per-night occupancy over the given nights.
// The most constrained night is the binding constraint for a whole stay.
func MaxOccupied(nights []types.DateString, reservations []*Reservation) int {
	maxCount := 0
	for _, night := range nights {
		if c := CountOccupied(night, reservations); c > maxCount {
			maxCount = c
		}
	}
	return maxCount
}
