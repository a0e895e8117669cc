package repository

import (
    "context"
    "database/sql"
    "errors"

    "time"

    "github.com/iliyamo/hotel-room-reservation/internal/booking"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

// BookingRepo provides data access to the bookings table.  Check-in and
// check-out are DATE columns; with parseTime=true they scan into time.Time
// at UTC midnight, which is exactly the calendar-date form the interval
// package expects.  Bookings are never deleted: cancellation is a status
// change so reports keep their history.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, user_id, room_id, check_in, check_out, total_cents, status, payment_ref, created_at, updated_at`

const dateLayout = "2006-01-02"

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
    var payRef sql.NullString
    var status string
    if err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CheckIn, &b.CheckOut,
        &b.TotalCents, &status, &payRef, &b.CreatedAt, &b.UpdatedAt); err != nil {
        return err
    }
    b.Status = model.BookingStatus(status)
    if payRef.Valid {
        ref := payRef.String
        b.PaymentRef = &ref
    }
    return nil
}

// FindConfirmedOverlapping returns the CONFIRMED bookings on a room whose
// half-open [check_in, check_out) range intersects [start, end).  The SQL
// predicate mirrors interval.Overlaps: check_in < end AND check_out > start.
func (r *BookingRepo) FindConfirmedOverlapping(ctx context.Context, roomID uint64, start, end time.Time) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings
               WHERE room_id = ? AND status = 'CONFIRMED'
                 AND check_in < ? AND check_out > ?`
    rows, err := r.db.QueryContext(ctx, q, roomID, end.Format(dateLayout), start.Format(dateLayout))
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        if err := scanBooking(rows, &b); err != nil {
            return nil, err
        }
        out = append(out, b)
    }
    return out, rows.Err()
}

// Create inserts a booking and populates its generated id and timestamps.
//
// The insert runs in a transaction that first re-checks the overlap with
// SELECT ... FOR UPDATE.  The engine's per-room lock already serialises
// requests within this process; the locked re-check extends the guarantee
// to deployments where several processes share the database.  On conflict
// the transaction rolls back and booking.ErrRoomUnavailable is returned.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    const lockQ = `SELECT id FROM bookings
                   WHERE room_id = ? AND status = 'CONFIRMED'
                     AND check_in < ? AND check_out > ?
                   FOR UPDATE`
    rows, err := tx.QueryContext(ctx, lockQ, b.RoomID, b.CheckOut.Format(dateLayout), b.CheckIn.Format(dateLayout))
    if err != nil {
        return err
    }
    conflict := rows.Next()
    if err := rows.Close(); err != nil {
        return err
    }
    if conflict {
        return booking.ErrRoomUnavailable
    }

    const ins = `INSERT INTO bookings (user_id, room_id, check_in, check_out, total_cents, status, payment_ref)
                 VALUES (?, ?, ?, ?, ?, ?, ?)`
    var payRef interface{}
    if b.PaymentRef != nil {
        payRef = *b.PaymentRef
    }
    res, err := tx.ExecContext(ctx, ins, b.UserID, b.RoomID,
        b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout),
        b.TotalCents, string(b.Status), payRef)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)

    // Query back timestamps populated by column defaults.
    const sel = `SELECT created_at, updated_at FROM bookings WHERE id = ?`
    if err := tx.QueryRowContext(ctx, sel, b.ID).Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

// GetByID returns a single booking by id.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
    var b model.Booking
    if err := scanBooking(r.db.QueryRowContext(ctx, q, id), &b); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, booking.ErrBookingNotFound
        }
        return nil, err
    }
    return &b, nil
}

// UpdateStatus sets a booking's status.  The booking row itself is the only
// record touched; no cross-record invariant is involved.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status model.BookingStatus) error {
    const q = `UPDATE bookings SET status = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, string(status), id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        var exists uint64
        if err := r.db.QueryRowContext(ctx, `SELECT id FROM bookings WHERE id = ?`, id).Scan(&exists); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return booking.ErrBookingNotFound
            }
            return err
        }
    }
    return nil
}

// ListByUser returns every booking for a user, any status, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = ? ORDER BY created_at DESC, id DESC`
    return r.list(ctx, q, userID)
}

// ListAll returns every booking in the system, newest first.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`
    return r.list(ctx, q)
}

func (r *BookingRepo) list(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        if err := scanBooking(rows, &b); err != nil {
            return nil, err
        }
        out = append(out, b)
    }
    return out, rows.Err()
}

// BookingView is a read-time projection joining a booking to its room and
// hotel for display.  Hotel name and room type are looked up at query time
// rather than copied onto the booking row, so renames never go stale.
type BookingView struct {
    model.Booking
    RoomType  string `json:"room_type"`
    HotelName string `json:"hotel_name"`
}

// ViewByUser returns the user's bookings joined with room and hotel display
// fields, newest first.
func (r *BookingRepo) ViewByUser(ctx context.Context, userID uint64) ([]BookingView, error) {
    const q = `SELECT b.id, b.user_id, b.room_id, b.check_in, b.check_out,
                      b.total_cents, b.status, b.payment_ref, b.created_at, b.updated_at,
                      rm.room_type, h.name
               FROM bookings b
               JOIN rooms rm ON rm.id = b.room_id
               JOIN hotels h ON h.id = rm.hotel_id
               WHERE b.user_id = ?
               ORDER BY b.created_at DESC, b.id DESC`
    rows, err := r.db.QueryContext(ctx, q, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]BookingView, 0)
    for rows.Next() {
        var v BookingView
        var payRef sql.NullString
        var status string
        if err := rows.Scan(&v.ID, &v.UserID, &v.RoomID, &v.CheckIn, &v.CheckOut,
            &v.TotalCents, &status, &payRef, &v.CreatedAt, &v.UpdatedAt,
            &v.RoomType, &v.HotelName); err != nil {
            return nil, err
        }
        v.Status = model.BookingStatus(status)
        if payRef.Valid {
            ref := payRef.String
            v.PaymentRef = &ref
        }
        out = append(out, v)
    }
    return out, rows.Err()
}
