package model

import "time"

// BookingStatus is a closed enumeration of the states a booking can be in.
// CONFIRMED is the only state assigned at creation; CANCELED and COMPLETED
// are terminal.  Modelling the status as a typed constant set rather than a
// free string keeps invalid values out of the database by construction.
type BookingStatus string

const (
    StatusConfirmed BookingStatus = "CONFIRMED" // active booking, occupies its date range
    StatusCanceled  BookingStatus = "CANCELED"  // canceled by the user; kept for history
    StatusCompleted BookingStatus = "COMPLETED" // stay finished (set operationally, never by the engine)
)

// Valid reports whether s is one of the known status values.
func (s BookingStatus) Valid() bool {
    switch s {
    case StatusConfirmed, StatusCanceled, StatusCompleted:
        return true
    }
    return false
}

// Terminal reports whether the status permits no further transition.
func (s BookingStatus) Terminal() bool {
    return s == StatusCanceled || s == StatusCompleted
}

// Booking records a user's stay in a room over a half-open date range:
// the check-in day is occupied, the check-out day is not, so back-to-back
// bookings may share a turnover date.
//
// Fields:
//  ID          – primary key identifier, assigned on insert.
//  UserID      – user who made the booking.
//  RoomID      – room being booked.
//  CheckIn     – first occupied night (UTC midnight calendar date).
//  CheckOut    – departure date, strictly after CheckIn.
//  TotalCents  – nights × room price at booking time; frozen, never recomputed.
//  Status      – CONFIRMED, CANCELED or COMPLETED.
//  PaymentRef  – reference returned by the (mocked) payment provider.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Booking struct {
    ID         uint64        // bookings.id
    UserID     uint64        // bookings.user_id
    RoomID     uint64        // bookings.room_id
    CheckIn    time.Time     // bookings.check_in (DATE)
    CheckOut   time.Time     // bookings.check_out (DATE)
    TotalCents int64         // bookings.total_cents
    Status     BookingStatus // bookings.status
    PaymentRef *string       // bookings.payment_ref (nullable)
    CreatedAt  time.Time     // bookings.created_at
    UpdatedAt  time.Time     // bookings.updated_at
}
