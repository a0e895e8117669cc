// Package booking implements the reservation engine: it is the only code
// path that creates bookings or moves them between statuses, and it owns the
// cross-request invariant that no two CONFIRMED bookings on one room may
// overlap.  Stores are consumed through small interfaces so the engine can
// be exercised against fakes as well as the MySQL repositories.
package booking

import "errors"

// Sentinel errors returned by the engine.  Handlers distinguish them with
// errors.Is and translate them to HTTP statuses; anything else coming out of
// an engine call is a storage failure and maps to a 500.
var (
    // ErrInvalidDateRange signals that check-out is not strictly after
    // check-in, or that a report window is degenerate.
    ErrInvalidDateRange = errors.New("booking: check-out must be after check-in")

    // ErrUserNotFound signals that the user directory does not know the
    // booking user.
    ErrUserNotFound = errors.New("booking: user not found")

    // ErrRoomNotFound signals that the room id does not resolve.
    ErrRoomNotFound = errors.New("booking: room not found")

    // ErrBookingNotFound signals that the booking id does not resolve.
    ErrBookingNotFound = errors.New("booking: booking not found")

    // ErrRoomUnavailable signals that a CONFIRMED booking already overlaps
    // the requested date range on that room.
    ErrRoomUnavailable = errors.New("booking: room is already booked for the selected dates")
)
