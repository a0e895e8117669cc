package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/interval"
	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// memStore is an in-memory BookingStore/RoomStore/UserDirectory used to
// exercise the engine without a database.  Mutating methods take the store
// mutex so the concurrency test observes the same object-level atomicity a
// real store provides; the check-then-act race between Find and Create is
// intentionally NOT closed here; that is the engine's job.
type memStore struct {
	mu       sync.Mutex
	nextID   uint64
	rooms    map[uint64]model.Room
	users    map[uint64]bool
	bookings map[uint64]model.Booking
}

func newMemStore() *memStore {
	return &memStore{
		nextID:   1,
		rooms:    make(map[uint64]model.Room),
		users:    make(map[uint64]bool),
		bookings: make(map[uint64]model.Booking),
	}
}

func (s *memStore) GetRoom(_ context.Context, id uint64) (*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return &r, nil
}

func (s *memStore) UserExists(_ context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id], nil
}

func (s *memStore) FindConfirmedOverlapping(_ context.Context, roomID uint64, start, end time.Time) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Booking
	for _, b := range s.bookings {
		if b.RoomID == roomID && b.Status == model.StatusConfirmed &&
			interval.Overlaps(b.CheckIn, b.CheckOut, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memStore) Create(_ context.Context, b *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextID
	s.nextID++
	s.bookings[b.ID] = *b
	return nil
}

func (s *memStore) GetByID(_ context.Context, id uint64) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

func (s *memStore) UpdateStatus(_ context.Context, id uint64, status model.BookingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = status
	s.bookings[id] = b
	return nil
}

func (s *memStore) ListByUser(_ context.Context, userID uint64) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memStore) ListAll(_ context.Context) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out, nil
}

type fakePayments struct{}

func (fakePayments) Charge(context.Context, uint64, int64) (string, error) { return "pay_test", nil }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestEngine() (*Engine, *memStore) {
	s := newMemStore()
	s.users[1] = true
	s.users[2] = true
	s.rooms[10] = model.Room{ID: 10, HotelID: 1, RoomType: "double", PriceCents: 12_000, Available: true}
	return New(s, s, s, fakePayments{}), s
}

func TestBookComputesFrozenPrice(t *testing.T) {
	e, _ := newTestEngine()

	b, err := e.Book(context.Background(), 1, 10, day("2024-01-10"), day("2024-01-15"))
	require.NoError(t, err)
	assert.Equal(t, int64(5*12_000), b.TotalCents)
	assert.Equal(t, model.StatusConfirmed, b.Status)
	require.NotNil(t, b.PaymentRef)
	assert.NotZero(t, b.ID)
}

func TestBookRejectsInvalidRanges(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	_, err := e.Book(ctx, 1, 10, day("2024-01-15"), day("2024-01-15"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = e.Book(ctx, 1, 10, day("2024-01-15"), day("2024-01-10"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestBookUnknownUserAndRoom(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	_, err := e.Book(ctx, 99, 10, day("2024-01-10"), day("2024-01-12"))
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = e.Book(ctx, 1, 99, day("2024-01-10"), day("2024-01-12"))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestBookRejectsOverlap(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	_, err := e.Book(ctx, 1, 10, day("2024-01-10"), day("2024-01-15"))
	require.NoError(t, err)

	_, err = e.Book(ctx, 2, 10, day("2024-01-12"), day("2024-01-18"))
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	// fully contained range conflicts too
	_, err = e.Book(ctx, 2, 10, day("2024-01-11"), day("2024-01-12"))
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestBackToBackBookingsShareTurnoverDate(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	_, err := e.Book(ctx, 1, 10, day("2024-01-10"), day("2024-01-15"))
	require.NoError(t, err)

	// checkout day is not occupied, so a stay starting that day is fine
	_, err = e.Book(ctx, 2, 10, day("2024-01-15"), day("2024-01-20"))
	assert.NoError(t, err)
}

func TestCancelFreesTheRange(t *testing.T) {
	e, s := newTestEngine()
	ctx := context.Background()

	b, err := e.Book(ctx, 1, 10, day("2024-01-10"), day("2024-01-15"))
	require.NoError(t, err)

	require.NoError(t, e.Cancel(ctx, b.ID))
	got, err := s.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCanceled, got.Status)

	// cancelling again is a no-op, not an error
	assert.NoError(t, e.Cancel(ctx, b.ID))

	// the same dates are bookable again
	_, err = e.Book(ctx, 2, 10, day("2024-01-10"), day("2024-01-15"))
	assert.NoError(t, err)
}

func TestCancelUnknownBooking(t *testing.T) {
	e, _ := newTestEngine()
	assert.ErrorIs(t, e.Cancel(context.Background(), 404), ErrBookingNotFound)
}

func TestListByUser(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	_, err := e.Book(ctx, 1, 10, day("2024-01-10"), day("2024-01-12"))
	require.NoError(t, err)
	b2, err := e.Book(ctx, 1, 10, day("2024-02-10"), day("2024-02-12"))
	require.NoError(t, err)
	require.NoError(t, e.Cancel(ctx, b2.ID))

	mine, err := e.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2) // canceled bookings stay visible in history

	other, err := e.ListByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

// TestConcurrentBookSingleWinner races N identical requests for the same
// room and dates: exactly one must commit, the rest must fail with
// ErrRoomUnavailable under any interleaving.
func TestConcurrentBookSingleWinner(t *testing.T) {
	e, s := newTestEngine()
	ctx := context.Background()

	const n = 32
	errs := make([]error, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = e.Book(ctx, 1, 10, day("2024-06-01"), day("2024-06-05"))
		}(i)
	}
	close(start)
	wg.Wait()

	won, lost := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case err == ErrRoomUnavailable:
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, n-1, lost)

	// and the store holds no overlapping CONFIRMED pair afterwards
	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	confirmed := 0
	for _, b := range all {
		if b.Status == model.StatusConfirmed {
			confirmed++
		}
	}
	assert.Equal(t, 1, confirmed)
}
