// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// committed.  It carries enough information for downstream consumers to
// log, notify, or feed analytics without querying the primary database.
type BookingConfirmedEvent struct {
    BookingID  uint64 `json:"booking_id"`
    UserID     uint64 `json:"user_id"`
    RoomID     uint64 `json:"room_id"`
    HotelName  string `json:"hotel_name"`
    RoomType   string `json:"room_type"`
    CheckIn    string `json:"check_in"`  // YYYY-MM-DD
    CheckOut   string `json:"check_out"` // YYYY-MM-DD
    Nights     int    `json:"nights"`
    TotalCents int64  `json:"total_cents"`
    BookedAt   string `json:"booked_at"` // RFC3339
}
