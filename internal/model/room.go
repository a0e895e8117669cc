package model

import "time"

// Room is a bookable unit belonging to a hotel.  PriceCents is the nightly
// rate used to compute a booking's frozen total; changing it later does not
// touch existing bookings.
type Room struct {
    ID         uint64    // rooms.id
    HotelID    uint64    // rooms.hotel_id
    RoomType   string    // rooms.room_type (single, double, suite, ...)
    PriceCents int64     // rooms.price_cents, nightly rate, non-negative
    Amenities  string    // rooms.amenities, free text
    Available  bool      // rooms.is_available, catalog visibility flag
    CreatedAt  time.Time // rooms.created_at
    UpdatedAt  time.Time // rooms.updated_at
}
