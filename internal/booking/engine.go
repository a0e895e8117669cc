package booking

import (
    "context"
    "fmt"
    "time"

    "github.com/iliyamo/hotel-room-reservation/internal/interval"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

// RoomStore is the slice of the persistence layer the engine needs for rooms.
// GetRoom must return ErrRoomNotFound when the id does not resolve.
type RoomStore interface {
    GetRoom(ctx context.Context, roomID uint64) (*model.Room, error)
}

// BookingStore is the persistence surface for bookings.
//
// FindConfirmedOverlapping returns every CONFIRMED booking on the room whose
// half-open [check-in, check-out) range intersects [start, end).  Create
// persists a new booking and assigns its ID; implementations backed by a
// shared database should re-check the overlap inside the same transaction as
// the insert and return ErrRoomUnavailable on conflict, so that a second
// process writing to the same database cannot slip past the engine's
// in-process lock.  UpdateStatus and GetByID must return ErrBookingNotFound
// when the id does not resolve.
type BookingStore interface {
    FindConfirmedOverlapping(ctx context.Context, roomID uint64, start, end time.Time) ([]model.Booking, error)
    Create(ctx context.Context, b *model.Booking) error
    GetByID(ctx context.Context, id uint64) (*model.Booking, error)
    UpdateStatus(ctx context.Context, id uint64, status model.BookingStatus) error
    ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error)
    ListAll(ctx context.Context) ([]model.Booking, error)
}

// UserDirectory resolves user existence.  Registration, credentials and
// sessions live elsewhere; Book only needs to fail fast on unknown users.
type UserDirectory interface {
    UserExists(ctx context.Context, userID uint64) (bool, error)
}

// PaymentProvider charges the user for a booking and returns an opaque
// payment reference.  The production wiring uses a mock that always
// succeeds; the indirection keeps the engine unchanged when a real gateway
// arrives.
type PaymentProvider interface {
    Charge(ctx context.Context, userID uint64, amountCents int64) (string, error)
}

// Engine orchestrates booking creation, cancellation and listing.
type Engine struct {
    rooms    RoomStore
    bookings BookingStore
    users    UserDirectory
    payments PaymentProvider
    locks    *lockTable
}

// New constructs an Engine.  rooms, bookings and users must be non-nil;
// payments may be nil, in which case bookings carry no payment reference.
func New(rooms RoomStore, bookings BookingStore, users UserDirectory, payments PaymentProvider) *Engine {
    if rooms == nil || bookings == nil || users == nil {
        panic("nil store passed to booking.New")
    }
    return &Engine{
        rooms:    rooms,
        bookings: bookings,
        users:    users,
        payments: payments,
        locks:    newLockTable(),
    }
}

// Book reserves a room for [checkIn, checkOut) on behalf of userID.
//
// Dates are normalised to UTC calendar dates before any comparison.  The
// overlap check and the insert run under the room's mutex: two requests
// racing for the same room serialise here, so at most one of a conflicting
// pair can commit.  Any storage failure aborts without writing; there is no
// partial-success state.
func (e *Engine) Book(ctx context.Context, userID, roomID uint64, checkIn, checkOut time.Time) (*model.Booking, error) {
    checkIn = interval.Date(checkIn)
    checkOut = interval.Date(checkOut)

    nights, err := interval.Nights(checkIn, checkOut)
    if err != nil {
        return nil, ErrInvalidDateRange
    }

    ok, err := e.users.UserExists(ctx, userID)
    if err != nil {
        return nil, fmt.Errorf("resolve user %d: %w", userID, err)
    }
    if !ok {
        return nil, ErrUserNotFound
    }

    room, err := e.rooms.GetRoom(ctx, roomID)
    if err != nil {
        return nil, err
    }

    lock := e.locks.forRoom(roomID)
    lock.Lock()
    defer lock.Unlock()

    overlapping, err := e.bookings.FindConfirmedOverlapping(ctx, roomID, checkIn, checkOut)
    if err != nil {
        // Fail closed: if the overlap check cannot be trusted, do not book.
        return nil, fmt.Errorf("overlap check for room %d: %w", roomID, err)
    }
    if len(overlapping) > 0 {
        return nil, ErrRoomUnavailable
    }

    b := &model.Booking{
        UserID:     userID,
        RoomID:     roomID,
        CheckIn:    checkIn,
        CheckOut:   checkOut,
        TotalCents: int64(nights) * room.PriceCents,
        Status:     model.StatusConfirmed,
    }
    if e.payments != nil {
        ref, err := e.payments.Charge(ctx, userID, b.TotalCents)
        if err != nil {
            return nil, fmt.Errorf("charge payment: %w", err)
        }
        b.PaymentRef = &ref
    }
    if err := e.bookings.Create(ctx, b); err != nil {
        return nil, err
    }
    return b, nil
}

// Cancel moves a CONFIRMED booking to CANCELED.  Cancelling a booking that
// is already terminal is a no-op rather than a re-save, which keeps the call
// idempotent; the booking row is never deleted so reports keep their history.
func (e *Engine) Cancel(ctx context.Context, bookingID uint64) error {
    b, err := e.bookings.GetByID(ctx, bookingID)
    if err != nil {
        return err
    }
    if b.Status.Terminal() {
        return nil
    }
    return e.bookings.UpdateStatus(ctx, bookingID, model.StatusCanceled)
}

// ListByUser returns every booking for a user regardless of status.
func (e *Engine) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
    return e.bookings.ListByUser(ctx, userID)
}

// ListAll returns every booking in the system.  Administrative use only; the
// transport layer is responsible for gating it behind the ADMIN role.
func (e *Engine) ListAll(ctx context.Context) ([]model.Booking, error) {
    return e.bookings.ListAll(ctx)
}
