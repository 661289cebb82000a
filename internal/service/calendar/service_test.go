package calendar

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	calendarRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/calendar"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/calendar/models"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCalendarRepo struct {
	overrides map[types.DateString]*domain.DateOverride
	rules     map[int64]*domain.HolidayRule
	nextID    int64
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{
		overrides: make(map[types.DateString]*domain.DateOverride),
		rules:     make(map[int64]*domain.HolidayRule),
	}
}

func (f *fakeCalendarRepo) ListDateOverrides(_ context.Context, categoryID int64) ([]*domain.DateOverride, error) {
	out := make([]*domain.DateOverride, 0, len(f.overrides))
	for _, o := range f.overrides {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeCalendarRepo) UpsertDateOverride(_ context.Context, override *domain.DateOverride) (*domain.DateOverride, error) {
	saved := *override
	if existing, ok := f.overrides[override.Date]; ok {
		saved.ID = existing.ID
	} else {
		f.nextID++
		saved.ID = f.nextID
	}
	f.overrides[override.Date] = &saved
	return &saved, nil
}

func (f *fakeCalendarRepo) DeleteDateOverride(_ context.Context, categoryID int64, date types.DateString) error {
	if _, ok := f.overrides[date]; !ok {
		return calendarRepo.ErrOverrideNotFound
	}
	delete(f.overrides, date)
	return nil
}

func (f *fakeCalendarRepo) ListHolidayRules(_ context.Context, categoryID int64) ([]*domain.HolidayRule, error) {
	out := make([]*domain.HolidayRule, 0, len(f.rules))
	for _, r := range f.rules {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeCalendarRepo) CreateHolidayRule(_ context.Context, rule *domain.HolidayRule) (*domain.HolidayRule, error) {
	f.nextID++
	saved := *rule
	saved.ID = f.nextID
	f.rules[saved.ID] = &saved
	return &saved, nil
}

func (f *fakeCalendarRepo) SetHolidayRuleActive(_ context.Context, ruleID int64, active bool) error {
	rule, ok := f.rules[ruleID]
	if !ok {
		return calendarRepo.ErrRuleNotFound
	}
	rule.Active = active
	return nil
}

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

func newTestService(repo *fakeCalendarRepo) *Service {
	return NewService(
		repo,
		&fakeCategoryRepo{categories: map[int64]*domain.RoomCategory{
			1: {ID: 1, Code: "std", TotalUnits: 3},
		}},
		nopLogger{},
	)
}

func TestUpsertOverride(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := newTestService(repo)

	resp, err := svc.UpsertOverride(context.Background(), 1, &models.UpsertOverrideRequest{
		Date:  "2024-12-31",
		Price: 5_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", resp.Date)
	assert.Equal(t, int64(5_000_000), resp.Price)

	// Повторная установка на ту же дату обновляет существующую запись
	updated, err := svc.UpsertOverride(context.Background(), 1, &models.UpsertOverrideRequest{
		Date:  "2024-12-31",
		Price: 6_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, updated.ID)
	assert.Equal(t, int64(6_000_000), updated.Price)
	assert.Len(t, repo.overrides, 1)
}

func TestUpsertOverride_Validation(t *testing.T) {
	svc := newTestService(newFakeCalendarRepo())

	tests := []struct {
		name    string
		req     *models.UpsertOverrideRequest
		wantErr error
	}{
		{
			name:    "malformed date",
			req:     &models.UpsertOverrideRequest{Date: "31.12.2024", Price: 5_000_000},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero price",
			req:     &models.UpsertOverrideRequest{Date: "2024-12-31", Price: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative price",
			req:     &models.UpsertOverrideRequest{Date: "2024-12-31", Price: -1},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertOverride(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := svc.UpsertOverride(context.Background(), 42, &models.UpsertOverrideRequest{Date: "2024-12-31", Price: 1})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteOverride(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := newTestService(repo)

	_, err := svc.UpsertOverride(context.Background(), 1, &models.UpsertOverrideRequest{
		Date:  "2024-12-31",
		Price: 5_000_000,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOverride(context.Background(), 1, "2024-12-31"))
	assert.Empty(t, repo.overrides)

	assert.ErrorIs(t, svc.DeleteOverride(context.Background(), 1, "2024-12-31"), ErrOverrideNotFound)
	assert.ErrorIs(t, svc.DeleteOverride(context.Background(), 1, "bad-date"), ErrInvalidInput)
}

func TestCreateHolidayRule(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := newTestService(repo)

	resp, err := svc.CreateHolidayRule(context.Background(), 1, &models.CreateHolidayRuleRequest{
		Name:         "  New Year  ",
		CalendarType: "solar",
		Month:        1,
		Day:          1,
		Price:        3_000_000,
		Active:       true,
	})
	require.NoError(t, err)

	// Имя сохраняется без окружающих пробелов
	assert.Equal(t, "New Year", resp.Name)
	assert.Equal(t, "solar", resp.CalendarType)
	assert.True(t, resp.Active)
	assert.Len(t, repo.rules, 1)
}

func TestCreateHolidayRule_Validation(t *testing.T) {
	svc := newTestService(newFakeCalendarRepo())

	valid := func() *models.CreateHolidayRuleRequest {
		return &models.CreateHolidayRuleRequest{
			Name:         "City Day",
			CalendarType: "solar",
			Month:        6,
			Day:          3,
			Multiplier:   1.5,
			Active:       true,
		}
	}

	tests := []struct {
		name   string
		mutate func(req *models.CreateHolidayRuleRequest)
	}{
		{name: "empty name", mutate: func(r *models.CreateHolidayRuleRequest) { r.Name = "   " }},
		{name: "name too long", mutate: func(r *models.CreateHolidayRuleRequest) { r.Name = strings.Repeat("x", domain.MaxHolidayNameLength+1) }},
		{name: "unknown calendar type", mutate: func(r *models.CreateHolidayRuleRequest) { r.CalendarType = "gregorian" }},
		{name: "month out of range", mutate: func(r *models.CreateHolidayRuleRequest) { r.Month = 13 }},
		{name: "solar day out of range", mutate: func(r *models.CreateHolidayRuleRequest) { r.Month = 4; r.Day = 31 }},
		{name: "february 30th", mutate: func(r *models.CreateHolidayRuleRequest) { r.Month = 2; r.Day = 30 }},
		{name: "lunar day out of range", mutate: func(r *models.CreateHolidayRuleRequest) { r.CalendarType = "lunar"; r.Day = 31 }},
		{name: "negative price", mutate: func(r *models.CreateHolidayRuleRequest) { r.Price = -1 }},
		{name: "negative multiplier", mutate: func(r *models.CreateHolidayRuleRequest) { r.Multiplier = -0.5 }},
		{name: "neither price nor multiplier", mutate: func(r *models.CreateHolidayRuleRequest) { r.Multiplier = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			_, err := svc.CreateHolidayRule(context.Background(), 1, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateHolidayRule_Leap(t *testing.T) {
	svc := newTestService(newFakeCalendarRepo())

	// 29 февраля допустимо для солнечного правила
	_, err := svc.CreateHolidayRule(context.Background(), 1, &models.CreateHolidayRuleRequest{
		Name:         "Leap Day",
		CalendarType: "solar",
		Month:        2,
		Day:          29,
		Multiplier:   2.0,
		Active:       true,
	})
	assert.NoError(t, err)
}

func TestSetHolidayRuleActive(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := newTestService(repo)

	created, err := svc.CreateHolidayRule(context.Background(), 1, &models.CreateHolidayRuleRequest{
		Name:         "City Day",
		CalendarType: "solar",
		Month:        6,
		Day:          3,
		Multiplier:   1.5,
		Active:       true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetHolidayRuleActive(context.Background(), created.ID, false))
	assert.False(t, repo.rules[created.ID].Active)

	assert.ErrorIs(t, svc.SetHolidayRuleActive(context.Background(), 42, false), ErrRuleNotFound)
}

func TestGetCalendar(t *testing.T) {
	repo := newFakeCalendarRepo()
	svc := newTestService(repo)

	_, err := svc.UpsertOverride(context.Background(), 1, &models.UpsertOverrideRequest{Date: "2024-12-31", Price: 5_000_000})
	require.NoError(t, err)
	_, err = svc.CreateHolidayRule(context.Background(), 1, &models.CreateHolidayRuleRequest{
		Name:         "New Year",
		CalendarType: "solar",
		Month:        1,
		Day:          1,
		Price:        3_000_000,
		Active:       true,
	})
	require.NoError(t, err)

	resp, err := svc.GetCalendar(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.CategoryID)
	assert.Len(t, resp.Overrides, 1)
	assert.Len(t, resp.HolidayRules, 1)

	_, err = svc.GetCalendar(context.Background(), 42)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
