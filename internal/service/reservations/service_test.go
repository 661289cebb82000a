package reservations

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
	reservationRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	byID map[int64]*domain.Reservation

	cancelledID  int64
	cancelReason string
	updatedID    int64
	newStatus    domain.ReservationStatus
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) GetByReference(_ context.Context, reference uuid.UUID) (*domain.Reservation, error) {
	for _, r := range f.byID {
		if r.Reference == reference {
			return r, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) GetByGuestEmail(_ context.Context, email string, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f.byID {
		if r.GuestEmail != email {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReservationRepo) GetByCategoryWithFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f.byID {
		if r.CategoryID != filter.CategoryID {
			continue
		}
		if !filter.IncludeInactive && !r.IsActive() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	f.updatedID = id
	f.newStatus = status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, reason string) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	f.cancelledID = id
	f.cancelReason = reason
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

func reservation(id int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		Reference:  uuid.New(),
		CategoryID: 1,
		CheckIn:    "2024-06-03",
		CheckOut:   "2024-06-06",
		Status:     status,
		GuestName:  "Ivan Petrov",
		GuestEmail: "ivan@example.com",
	}
}

func newTestService(repo *fakeReservationRepo) *Service {
	return NewService(
		repo,
		&fakeCategoryRepo{categories: map[int64]*domain.RoomCategory{
			1: {ID: 1, Code: "std", TotalUnits: 3},
		}},
		nopLogger{},
	)
}

func TestGetByID(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		7: reservation(7, domain.StatusPending),
	}}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByReference(t *testing.T) {
	res := reservation(7, domain.StatusConfirmed)
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{7: res}}
	svc := newTestService(repo)

	resp, err := svc.GetByReference(context.Background(), res.Reference)
	require.NoError(t, err)
	assert.Equal(t, res.Reference.String(), resp.Reference)

	_, err = svc.GetByReference(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetGuestReservations(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		1: reservation(1, domain.StatusPending),
		2: reservation(2, domain.StatusCancelled),
	}}
	svc := newTestService(repo)

	resp, err := svc.GetGuestReservations(context.Background(), "ivan@example.com", nil)
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	status := "cancelled"
	resp, err = svc.GetGuestReservations(context.Background(), "ivan@example.com", &status)
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "cancelled", resp.Reservations[0].Status)

	bad := "checked-in"
	_, err = svc.GetGuestReservations(context.Background(), "ivan@example.com", &bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCategoryReservations(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		1: reservation(1, domain.StatusPending),
		2: reservation(2, domain.StatusCancelled),
	}}
	svc := newTestService(repo)

	// Отменённые не возвращаются без includeInactive
	resp, err := svc.GetCategoryReservations(context.Background(), &models.GetCategoryReservationsRequest{CategoryID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	resp, err = svc.GetCategoryReservations(context.Background(), &models.GetCategoryReservationsRequest{
		CategoryID:      1,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	_, err = svc.GetCategoryReservations(context.Background(), &models.GetCategoryReservationsRequest{CategoryID: 42})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	badFrom := "03.06.2024"
	_, err = svc.GetCategoryReservations(context.Background(), &models.GetCategoryReservationsRequest{
		CategoryID: 1,
		From:       &badFrom,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.ReservationStatus
		wantErr error
	}{
		{name: "pending can be cancelled", status: domain.StatusPending},
		{name: "confirmed can be cancelled", status: domain.StatusConfirmed},
		{name: "cancelled is terminal", status: domain.StatusCancelled, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
				7: reservation(7, tt.status),
			}}
			svc := newTestService(repo)

			err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{Reason: "plans changed"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.cancelledID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), repo.cancelledID)
			assert.Equal(t, "plans changed", repo.cancelReason)
		})
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		7: reservation(7, domain.StatusPending),
	}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{
		Reason: strings.Repeat("x", domain.MaxCancelReasonLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.ReservationStatus
		to      string
		wantErr error
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed"},
		{name: "pending to cancelled", from: domain.StatusPending, to: "cancelled"},
		{name: "confirmed to cancelled", from: domain.StatusConfirmed, to: "cancelled"},
		{name: "confirmed to confirmed", from: domain.StatusConfirmed, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "cancelled to confirmed", from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "back to pending", from: domain.StatusConfirmed, to: "pending", wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusPending, to: "checked-in", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
				7: reservation(7, tt.from),
			}}
			svc := newTestService(repo)

			err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, repo.updatedID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), repo.updatedID)
			assert.Equal(t, domain.ReservationStatus(tt.to), repo.newStatus)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{byID: map[int64]*domain.Reservation{}})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
