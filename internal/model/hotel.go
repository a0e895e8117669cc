package model

import "time"

// Hotel holds the display metadata for a property.  Rooms reference their
// hotel by ID; the hotel row itself carries no booking state.
type Hotel struct {
    ID          uint64    // hotels.id
    Name        string    // hotels.name
    Location    string    // hotels.location
    Description string    // hotels.description
    Rating      float64   // hotels.rating (0..5)
    CreatedAt   time.Time // hotels.created_at
    UpdatedAt   time.Time // hotels.updated_at
}
