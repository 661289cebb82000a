package quote_price

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
	"github.com/m04kA/HMS-RoomInventoryService/internal/pricing"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCategoryRepo struct {
	categories map[int64]*domain.RoomCategory
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.RoomCategory, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, categoryRepo.ErrCategoryNotFound
	}
	return c, nil
}

type fakeCalendarRepo struct {
	overrides []*domain.DateOverride
	rules     []*domain.HolidayRule
}

func (f *fakeCalendarRepo) ListDateOverrides(_ context.Context, categoryID int64) ([]*domain.DateOverride, error) {
	return f.overrides, nil
}

func (f *fakeCalendarRepo) ListHolidayRules(_ context.Context, categoryID int64) ([]*domain.HolidayRule, error) {
	return f.rules, nil
}

type stubLunarResolver struct{}

func (stubLunarResolver) ResolveLunarDateWithGracefulDegradation(context.Context, int, int, int) (types.DateString, error) {
	return "", nil
}

func newTestUseCase(overrides []*domain.DateOverride, rules []*domain.HolidayRule) *UseCase {
	return NewUseCase(
		&fakeCategoryRepo{categories: map[int64]*domain.RoomCategory{
			1: {ID: 1, Code: "std", TotalUnits: 3, BasePrice: 1_000_000, WeekendPrice: 1_500_000},
		}},
		&fakeCalendarRepo{overrides: overrides, rules: rules},
		pricing.NewCalculator(stubLunarResolver{}, nopLogger{}),
		nopLogger{},
	)
}

func TestExecute_WeekdayStay(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	// Понедельник - четверг: три будние ночи
	resp, err := uc.Execute(context.Background(), &Request{
		CategoryID: 1,
		CheckIn:    "2024-06-03",
		CheckOut:   "2024-06-06",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3_000_000), resp.TotalPrice)
	require.Len(t, resp.Nights, 3)
	for _, n := range resp.Nights {
		assert.Equal(t, pricing.SourceBase, n.Source)
		assert.Equal(t, int64(1_000_000), n.Price)
	}
}

func TestExecute_WeekendAndOverride(t *testing.T) {
	uc := newTestUseCase(
		[]*domain.DateOverride{{CategoryID: 1, Date: "2024-06-07", Price: 4_000_000}},
		nil,
	)

	// Пятница (override), суббота (weekend)
	resp, err := uc.Execute(context.Background(), &Request{
		CategoryID: 1,
		CheckIn:    "2024-06-07",
		CheckOut:   "2024-06-09",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5_500_000), resp.TotalPrice)
	assert.Equal(t, pricing.SourceOverride, resp.Nights[0].Source)
	assert.Equal(t, pricing.SourceWeekend, resp.Nights[1].Source)
}

func TestExecute_Deterministic(t *testing.T) {
	uc := newTestUseCase(nil, []*domain.HolidayRule{
		{ID: 1, Name: "City Day", CalendarType: domain.CalendarSolar, Month: 6, Day: 4, Multiplier: 1.5, Active: true},
	})

	req := &Request{CategoryID: 1, CheckIn: "2024-06-03", CheckOut: "2024-06-06"}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Повторный расчет без изменений календаря дает идентичный результат
	assert.Equal(t, first.TotalPrice, second.TotalPrice)
	assert.Equal(t, first.Nights, second.Nights)
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "zero-night range",
			req:     &Request{CategoryID: 1, CheckIn: "2024-06-03", CheckOut: "2024-06-03"},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "unknown category",
			req:     &Request{CategoryID: 42, CheckIn: "2024-06-03", CheckOut: "2024-06-06"},
			wantErr: ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPriceForDate(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	np, err := uc.PriceForDate(context.Background(), 1, "2024-06-08")
	require.NoError(t, err)
	assert.Equal(t, pricing.SourceWeekend, np.Source)
	assert.Equal(t, int64(1_500_000), np.Price)

	_, err = uc.PriceForDate(context.Background(), 1, "bad-date")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMonthCalendar(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	resp, err := uc.MonthCalendar(context.Background(), &CalendarRequest{
		CategoryID: 1,
		Year:       2024,
		Month:      2,
	})
	require.NoError(t, err)

	// Високосный февраль
	require.Len(t, resp.Days, 29)
	assert.Equal(t, types.DateString("2024-02-01"), resp.Days[0].Date)
	assert.Equal(t, types.DateString("2024-02-29"), resp.Days[28].Date)

	_, err = uc.MonthCalendar(context.Background(), &CalendarRequest{CategoryID: 1, Year: 2024, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
