// Package report computes time-windowed revenue and occupancy aggregates
// over the booking history.  Both reports are read-only: they scan the
// store's current snapshot and never mutate a booking or a room.
package report

import (
    "context"
    "time"

    "github.com/iliyamo/hotel-room-reservation/internal/booking"
    "github.com/iliyamo/hotel-room-reservation/internal/interval"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

// RoomLister is the slice of the room store the reports need.
type RoomLister interface {
    AllRooms(ctx context.Context) ([]model.Room, error)
}

// BookingLister provides the full booking scan the reports aggregate over.
type BookingLister interface {
    ListAll(ctx context.Context) ([]model.Booking, error)
}

// Revenue is the result of a revenue report.
type Revenue struct {
    TotalCents int64 `json:"total_revenue_cents"`
}

// Occupancy is the result of an occupancy report.
type Occupancy struct {
    Rate float64 `json:"occupancy_rate"` // percentage, 0..100
}

// Engine evaluates reports against the booking and room stores.
type Engine struct {
    rooms    RoomLister
    bookings BookingLister
}

// New constructs a report engine over the given stores.
func New(rooms RoomLister, bookings BookingLister) *Engine {
    if rooms == nil || bookings == nil {
        panic("nil store passed to report.New")
    }
    return &Engine{rooms: rooms, bookings: bookings}
}

// inWindow is the report-side intersection test: a booking counts when any
// part of its stay falls inside the window, with INCLUSIVE bounds on both
// ends (checkIn <= end AND checkOut >= start).  This differs from the
// half-open rule used for conflict detection: a booking checking out on the
// window's first day still shows up in reports even though it would not
// conflict with a booking starting that day.
func inWindow(b model.Booking, start, end time.Time) bool {
    return !b.CheckIn.After(end) && !b.CheckOut.Before(start)
}

// Revenue sums the frozen total of every CONFIRMED booking whose stay
// intersects [start, end] inclusively.  Dates are normalised to UTC
// calendar dates; the window may be a single day (start == end).
func (e *Engine) Revenue(ctx context.Context, start, end time.Time) (Revenue, error) {
    start, end = interval.Date(start), interval.Date(end)
    if end.Before(start) {
        return Revenue{}, booking.ErrInvalidDateRange
    }
    all, err := e.bookings.ListAll(ctx)
    if err != nil {
        return Revenue{}, err
    }
    var rev Revenue
    for _, b := range all {
        if b.Status != model.StatusConfirmed {
            continue
        }
        if inWindow(b, start, end) {
            rev.TotalCents += b.TotalCents
        }
    }
    return rev, nil
}

// Occupancy reports booked room-nights over available room-nights for
// [start, end) as a percentage.  Each qualifying booking contributes only
// the nights that survive clipping against the window, so stays straddling
// a window edge are counted partially.  When there are no rooms or the
// window spans zero nights the rate is 0 rather than a division by zero.
func (e *Engine) Occupancy(ctx context.Context, start, end time.Time) (Occupancy, error) {
    start, end = interval.Date(start), interval.Date(end)
    if end.Before(start) {
        return Occupancy{}, booking.ErrInvalidDateRange
    }
    rooms, err := e.rooms.AllRooms(ctx)
    if err != nil {
        return Occupancy{}, err
    }
    all, err := e.bookings.ListAll(ctx)
    if err != nil {
        return Occupancy{}, err
    }

    windowNights := 0
    if n, err := interval.Nights(start, end); err == nil {
        windowNights = n
    }
    totalRoomNights := len(rooms) * windowNights
    if totalRoomNights == 0 {
        return Occupancy{Rate: 0}, nil
    }

    bookedNights := 0
    for _, b := range all {
        if b.Status != model.StatusConfirmed || !inWindow(b, start, end) {
            continue
        }
        s, t, ok := interval.Clip(b.CheckIn, b.CheckOut, start, end)
        if !ok {
            continue
        }
        if n, err := interval.Nights(s, t); err == nil {
            bookedNights += n
        }
    }
    return Occupancy{Rate: float64(bookedNights) / float64(totalRoomNights) * 100}, nil
}
