package domain

import (
	"math"
	"time"

	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

// CalendarType тип календаря, по которому повторяется праздничное правило
type CalendarType string

const (
	CalendarSolar CalendarType = "solar"
	CalendarLunar CalendarType = "lunar"
)

// DateOverride is an explicit nightly price for one exact date.
// It supersedes holiday, weekend and base pricing for that date.
// Unique per (CategoryID, Date).
type DateOverride struct {
	ID         int64
	CategoryID int64
	Date       types.DateString
	Price      int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HolidayRule is a recurring pricing rule applied to a specific day each year.
// Solar rules resolve directly to a Gregorian month/day; lunar rules require
// a lunar-to-solar conversion for the relevant year.
//
// Pricing semantics: Price > 0 makes the rule an explicit nightly price,
// identical in kind to a DateOverride. Otherwise Multiplier is applied to the
// weekend-or-base price of the date. When both are set, Price wins.
type HolidayRule struct {
	ID           int64
	CategoryID   int64
	Name         string
	CalendarType CalendarType
	Month        int
	Day          int
	Price        int64
	Multiplier   float64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasExplicitPrice returns true if the rule carries a fixed nightly price
func (h *HolidayRule) HasExplicitPrice() bool {
	return h.Price > 0
}

// EffectivePrice resolves the nightly price for a date matched by this rule.
// weekendOrBase is the price that would apply without the rule. Multiplier
// results are rounded to the nearest integral currency unit, ties away from zero.
func (h *HolidayRule) EffectivePrice(weekendOrBase int64) int64 {
	if h.HasExplicitPrice() {
		return h.Price
	}
	return int64(math.Round(float64(weekendOrBase) * h.Multiplier))
}
