package create_reservation

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-RoomInventoryService/internal/domain"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
	"github.com/m04kA/HMS-RoomInventoryService/internal/integrations/notifyservice"
	"github.com/m04kA/HMS-RoomInventoryService/internal/pricing"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/txmanager"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager сериализует транзакции мьютексом, имитируя сериализуемый
// уровень изоляции: конкурентные транзакции выполняются строго по очереди
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

// errTxManager всегда возвращает заданную транспортную ошибку транзакции
type errTxManager struct {
	err error
}

func (f *errTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.err
}

type fakeReservationStore struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
	nextID       int64
}

func (f *fakeReservationStore) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	created := *res
	created.ID = f.nextID
	f.reservations = append(f.reservations, &created)
	return &created, nil
}

func (f *fakeReservationStore) GetByCategoryWithFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

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

func (f *fakeReservationStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reservations)
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

type fakeCalendarRepo struct{}

func (fakeCalendarRepo) ListDateOverrides(context.Context, int64) ([]*domain.DateOverride, error) {
	return nil, nil
}

func (fakeCalendarRepo) ListHolidayRules(context.Context, int64) ([]*domain.HolidayRule, error) {
	return nil, nil
}

type fakeNotifyClient struct {
	mu     sync.Mutex
	events []*notifyservice.ReservationCreatedEvent
}

func (f *fakeNotifyClient) SendReservationCreated(_ context.Context, event *notifyservice.ReservationCreatedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

type fakeMetrics struct {
	mu        sync.Mutex
	created   int
	conflicts int
}

func (f *fakeMetrics) IncReservationCreated(category string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
}

func (f *fakeMetrics) IncReservationConflict() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conflicts++
}

type stubLunarResolver struct{}

func (stubLunarResolver) ResolveLunarDateWithGracefulDegradation(context.Context, int, int, int) (types.DateString, error) {
	return "", nil
}

type testEnv struct {
	uc      *UseCase
	store   *fakeReservationStore
	notify  *fakeNotifyClient
	metrics *fakeMetrics
}

func newTestEnv(totalUnits int, txManager TransactionManager) *testEnv {
	store := &fakeReservationStore{}
	notify := &fakeNotifyClient{}
	collector := &fakeMetrics{}

	uc := NewUseCase(
		store,
		&fakeCategoryRepo{categories: map[int64]*domain.RoomCategory{
			1: {ID: 1, Code: "std", TotalUnits: totalUnits, BasePrice: 1_000_000, WeekendPrice: 1_500_000},
		}},
		fakeCalendarRepo{},
		notify,
		txManager,
		pricing.NewCalculator(stubLunarResolver{}, nopLogger{}),
		collector,
		nopLogger{},
	)

	return &testEnv{uc: uc, store: store, notify: notify, metrics: collector}
}

func validRequest() *Request {
	return &Request{
		CategoryID: 1,
		CheckIn:    "2024-06-03",
		CheckOut:   "2024-06-06",
		GuestName:  "Ivan Petrov",
		GuestEmail: "ivan@example.com",
	}
}

func TestExecute_Success(t *testing.T) {
	env := newTestEnv(3, &fakeTxManager{})

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.NotEqual(t, uuid.Nil, resp.Reference)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	// Три будние ночи по базовой цене
	assert.Equal(t, int64(3_000_000), resp.TotalPrice)

	assert.Equal(t, 1, env.store.count())
	assert.Equal(t, 1, env.metrics.created)
	assert.Equal(t, 0, env.metrics.conflicts)

	require.Len(t, env.notify.events, 1)
	assert.Equal(t, resp.Reference.String(), env.notify.events[0].Reference)
	assert.Equal(t, "std", env.notify.events[0].CategoryCode)
	assert.Equal(t, int64(3_000_000), env.notify.events[0].TotalPrice)
}

func TestExecute_ConcurrentRequestsNeverOverbook(t *testing.T) {
	const (
		totalUnits = 3
		attempts   = 8
	)

	env := newTestEnv(totalUnits, &fakeTxManager{})

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}

		require.ErrorIs(t, err, ErrRoomUnavailable)

		var unavailable *RoomUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, 0, unavailable.MinRemaining)
	}

	// Ровно по числу номеров, ни одним больше
	assert.Equal(t, totalUnits, succeeded)
	assert.Equal(t, totalUnits, env.store.count())
	assert.Equal(t, totalUnits, env.metrics.created)
	assert.Equal(t, attempts-totalUnits, env.metrics.conflicts)
}

func TestExecute_ValidationFailures(t *testing.T) {
	longNotes := strings.Repeat("x", domain.MaxNotesLength+1)

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "empty guest name",
			mutate:  func(req *Request) { req.GuestName = "   " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "invalid email",
			mutate:  func(req *Request) { req.GuestEmail = "not-an-email" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "notes too long",
			mutate:  func(req *Request) { req.Notes = &longNotes },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero-night range",
			mutate:  func(req *Request) { req.CheckOut = req.CheckIn },
			wantErr: ErrInvalidRange,
		},
		{
			name: "stay too long",
			mutate: func(req *Request) {
				req.CheckIn = "2024-01-01"
				req.CheckOut = "2024-06-01"
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(3, &fakeTxManager{})

			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			// Невалидный запрос не доходит до хранилища
			assert.Equal(t, 0, env.store.count())
		})
	}
}

func TestExecute_CategoryNotFound(t *testing.T) {
	env := newTestEnv(3, &fakeTxManager{})

	req := validRequest()
	req.CategoryID = 42

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestExecute_TxErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		txErr   error
		wantErr error
	}{
		{
			name:    "timeout",
			txErr:   txmanager.ErrTxTimeout,
			wantErr: ErrTimeout,
		},
		{
			name:    "serialization retries exhausted",
			txErr:   txmanager.ErrSerializationFailure,
			wantErr: ErrTxConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(3, &errTxManager{err: tt.txErr})

			_, err := env.uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_NilNotifyClientDoesNotPanic(t *testing.T) {
	store := &fakeReservationStore{}
	uc := NewUseCase(
		store,
		&fakeCategoryRepo{categories: map[int64]*domain.RoomCategory{
			1: {ID: 1, Code: "std", TotalUnits: 3, BasePrice: 1_000_000, WeekendPrice: 1_500_000},
		}},
		fakeCalendarRepo{},
		nil,
		&fakeTxManager{},
		pricing.NewCalculator(stubLunarResolver{}, nopLogger{}),
		nil,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, store.count())
	assert.NotEqual(t, uuid.Nil, resp.Reference)
}
