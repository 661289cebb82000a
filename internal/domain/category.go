package domain

import "time"

// RoomCategory represents a bookable room type with a fixed pool of
// interchangeable physical units. Managed by an external catalog workflow;
// immutable within a quote or reservation attempt.
type RoomCategory struct {
	ID           int64
	Code         string // Короткий код категории (например "std", "dlx")
	Name         string
	TotalUnits   int
	BasePrice    int64 // Цена за ночь в будний день
	WeekendPrice int64 // Цена за ночь в субботу и воскресенье
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PriceForWeekday returns the weekend price for Saturday/Sunday nights
// and the base price otherwise
func (c *RoomCategory) PriceForWeekday(isWeekend bool) int64 {
	if isWeekend {
		return c.WeekendPrice
	}
	return c.BasePrice
}
