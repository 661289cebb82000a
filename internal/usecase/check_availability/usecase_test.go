package check_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetByCategoryWithFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.CategoryID != filter.CategoryID {
			continue
		}
		if !filter.IncludeInactive && !r.IsActive() {
			continue
		}
		if filter.From != nil && filter.To != nil && !r.Overlaps(*filter.From, *filter.To) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
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

func reservation(categoryID int64, status domain.ReservationStatus, checkIn, checkOut types.DateString) *domain.Reservation {
	return &domain.Reservation{
		CategoryID: categoryID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     status,
	}
}

func newTestUseCase(reservations []*domain.Reservation, totalUnits int) *UseCase {
	return NewUseCase(
		&fakeReservationRepo{reservations: reservations},
		&fakeCategoryRepo{categories: map[int64]*domain.RoomCategory{
			1: {ID: 1, Code: "std", TotalUnits: totalUnits, BasePrice: 1_000_000, WeekendPrice: 1_500_000},
		}},
		nopLogger{},
	)
}

func TestExecute_RemainingFollowsBusiestNight(t *testing.T) {
	// Ночь 06-04 самая загруженная: 2 из 3 номеров заняты
	uc := newTestUseCase([]*domain.Reservation{
		reservation(1, domain.StatusPending, "2024-06-03", "2024-06-06"),
		reservation(1, domain.StatusConfirmed, "2024-06-04", "2024-06-05"),
	}, 3)

	resp, err := uc.Execute(context.Background(), &Request{
		CategoryID: 1,
		CheckIn:    "2024-06-03",
		CheckOut:   "2024-06-06",
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 1, resp.RemainingUnits)
	assert.Equal(t, 3, resp.TotalUnits)
	require.Len(t, resp.Nights, 3)

	assert.Equal(t, 1, resp.Nights[0].Occupied)
	assert.Equal(t, 2, resp.Nights[0].Remaining)
	assert.Equal(t, 2, resp.Nights[1].Occupied)
	assert.Equal(t, 1, resp.Nights[1].Remaining)
	assert.Equal(t, 1, resp.Nights[2].Occupied)
}

func TestExecute_CancelledReservationsFreeUnits(t *testing.T) {
	uc := newTestUseCase([]*domain.Reservation{
		reservation(1, domain.StatusCancelled, "2024-06-03", "2024-06-06"),
	}, 1)

	resp, err := uc.Execute(context.Background(), &Request{
		CategoryID: 1,
		CheckIn:    "2024-06-03",
		CheckOut:   "2024-06-06",
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 1, resp.RemainingUnits)
}

func TestExecute_FullyBooked(t *testing.T) {
	uc := newTestUseCase([]*domain.Reservation{
		reservation(1, domain.StatusPending, "2024-06-04", "2024-06-05"),
	}, 1)

	resp, err := uc.Execute(context.Background(), &Request{
		CategoryID: 1,
		CheckIn:    "2024-06-03",
		CheckOut:   "2024-06-06",
	})
	require.NoError(t, err)

	// Одна занятая ночь внутри диапазона блокирует всю поездку
	assert.False(t, resp.Available)
	assert.Equal(t, 0, resp.RemainingUnits)
}

func TestExecute_BackToBackStaysDoNotCollide(t *testing.T) {
	uc := newTestUseCase([]*domain.Reservation{
		reservation(1, domain.StatusConfirmed, "2024-06-01", "2024-06-03"),
	}, 1)

	// Заезд в день чужого выезда
	resp, err := uc.Execute(context.Background(), &Request{
		CategoryID: 1,
		CheckIn:    "2024-06-03",
		CheckOut:   "2024-06-05",
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 1, resp.RemainingUnits)
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUseCase(nil, 3)

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
			name:    "checkIn after checkOut",
			req:     &Request{CategoryID: 1, CheckIn: "2024-06-06", CheckOut: "2024-06-03"},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "unknown category",
			req:     &Request{CategoryID: 42, CheckIn: "2024-06-03", CheckOut: "2024-06-06"},
			wantErr: ErrCategoryNotFound,
		},
		{
			name:    "missing checkIn",
			req:     &Request{CategoryID: 1, CheckOut: "2024-06-06"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
