package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DateString
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2024-06-03",
			want:  "2024-06-03",
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  "2024-02-29",
		},
		{
			name:    "non-leap year february 29",
			input:   "2023-02-29",
			wantErr: true,
		},
		{
			name:    "missing leading zeros",
			input:   "2024-6-3",
			wantErr: true,
		},
		{
			name:    "wrong separator",
			input:   "2024/06/03",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "2024-13-01",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDateStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDateString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateString_Validate(t *testing.T) {
	assert.NoError(t, DateString("2024-06-03").Validate())
	assert.Error(t, DateString("").Validate())
	assert.Error(t, DateString("not-a-date").Validate())
}

func TestDateString_Ordering(t *testing.T) {
	a := DateString("2024-06-03")
	b := DateString("2024-06-04")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestDateString_AddDays(t *testing.T) {
	tests := []struct {
		name string
		date DateString
		days int
		want DateString
	}{
		{
			name: "next day",
			date: "2024-06-03",
			days: 1,
			want: "2024-06-04",
		},
		{
			name: "month boundary",
			date: "2024-06-30",
			days: 1,
			want: "2024-07-01",
		},
		{
			name: "year boundary",
			date: "2024-12-31",
			days: 1,
			want: "2025-01-01",
		},
		{
			name: "leap february",
			date: "2024-02-28",
			days: 1,
			want: "2024-02-29",
		},
		{
			name: "backwards",
			date: "2024-06-03",
			days: -3,
			want: "2024-05-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.AddDays(tt.days))
		})
	}
}

func TestDateString_IsWeekend(t *testing.T) {
	// 2024-06-03 понедельник, 2024-06-08 суббота, 2024-06-09 воскресенье
	assert.False(t, DateString("2024-06-03").IsWeekend())
	assert.True(t, DateString("2024-06-08").IsWeekend())
	assert.True(t, DateString("2024-06-09").IsWeekend())
	assert.Equal(t, time.Monday, DateString("2024-06-03").Weekday())
}

func TestDateString_Components(t *testing.T) {
	d := DateString("2024-06-03")

	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 6, d.Month())
	assert.Equal(t, 3, d.Day())
	assert.Equal(t, "2024-06-03", d.String())
	assert.False(t, d.IsZero())
	assert.True(t, DateString("").IsZero())
}

func TestNewDateString(t *testing.T) {
	// Компонент времени отбрасывается
	ts := time.Date(2024, 6, 3, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DateString("2024-06-03"), NewDateString(ts))
}
