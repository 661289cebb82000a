package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHolidayRule_EffectivePrice(t *testing.T) {
	tests := []struct {
		name          string
		rule          HolidayRule
		weekendOrBase int64
		want          int64
	}{
		{
			name:          "explicit price wins",
			rule:          HolidayRule{Price: 2_000_000},
			weekendOrBase: 1_000_000,
			want:          2_000_000,
		},
		{
			name:          "explicit price wins over multiplier",
			rule:          HolidayRule{Price: 2_000_000, Multiplier: 3.0},
			weekendOrBase: 1_000_000,
			want:          2_000_000,
		},
		{
			name:          "multiplier on base",
			rule:          HolidayRule{Multiplier: 1.5},
			weekendOrBase: 1_000_000,
			want:          1_500_000,
		},
		{
			name:          "multiplier rounds to nearest unit",
			rule:          HolidayRule{Multiplier: 1.5},
			weekendOrBase: 999,
			want:          1499, // 1498.5 округляется от нуля
		},
		{
			name:          "multiplier rounds down",
			rule:          HolidayRule{Multiplier: 1.2},
			weekendOrBase: 333,
			want:          400, // 399.6
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.EffectivePrice(tt.weekendOrBase))
		})
	}
}

func TestHolidayRule_HasExplicitPrice(t *testing.T) {
	assert.True(t, (&HolidayRule{Price: 1}).HasExplicitPrice())
	assert.False(t, (&HolidayRule{Price: 0, Multiplier: 2.0}).HasExplicitPrice())
}

func TestRoomCategory_PriceForWeekday(t *testing.T) {
	c := &RoomCategory{BasePrice: 1_000_000, WeekendPrice: 1_500_000}

	assert.Equal(t, int64(1_000_000), c.PriceForWeekday(false))
	assert.Equal(t, int64(1_500_000), c.PriceForWeekday(true))
}
