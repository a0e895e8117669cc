// Package repository implements the MySQL persistence layer.  Each table has
// a small repository struct holding a *sql.DB; methods that participate in a
// larger atomic unit take an explicit *sql.Tx.  Not-found conditions on the
// reservation-engine types (rooms, bookings, users) are reported with the
// sentinels from the booking package so handlers and the engine share one
// error vocabulary; catalog-only sentinels live here.
package repository

import "errors"

// ErrHotelNotFound is returned when a hotel id does not resolve.  Handlers
// should translate this into an HTTP 404 response.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrDuplicateEmail is returned by UserRepo.Create when the email is already
// registered.  Handlers should translate this into an HTTP 409 response.
var ErrDuplicateEmail = errors.New("email already registered")
