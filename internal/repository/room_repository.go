package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/hotel-room-reservation/internal/booking"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

// RoomRepo provides data access to the rooms table.  It backs both the
// public catalog endpoints and the reservation engine's RoomStore, so its
// read methods return booking.ErrRoomNotFound rather than sql.ErrNoRows.
type RoomRepo struct {
    db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = `id, hotel_id, room_type, price_cents, amenities, is_available, created_at, updated_at`

func scanRoom(row interface{ Scan(...any) error }, r *model.Room) error {
    return row.Scan(&r.ID, &r.HotelID, &r.RoomType, &r.PriceCents, &r.Amenities, &r.Available, &r.CreatedAt, &r.UpdatedAt)
}

// GetRoom returns a single room by id.
func (r *RoomRepo) GetRoom(ctx context.Context, roomID uint64) (*model.Room, error) {
    const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
    var room model.Room
    if err := scanRoom(r.db.QueryRowContext(ctx, q, roomID), &room); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, booking.ErrRoomNotFound
        }
        return nil, err
    }
    return &room, nil
}

// AllRooms returns every room, ordered by id.  The occupancy report uses the
// result's length as the room count, so this must not filter on is_available.
func (r *RoomRepo) AllRooms(ctx context.Context) ([]model.Room, error) {
    const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Room, 0)
    for rows.Next() {
        var room model.Room
        if err := scanRoom(rows, &room); err != nil {
            return nil, err
        }
        out = append(out, room)
    }
    return out, rows.Err()
}

// ListByHotel returns the rooms belonging to one hotel, ordered by id.
func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID uint64) ([]model.Room, error) {
    const q = `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = ? ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q, hotelID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Room, 0)
    for rows.Next() {
        var room model.Room
        if err := scanRoom(rows, &room); err != nil {
            return nil, err
        }
        out = append(out, room)
    }
    return out, rows.Err()
}

// Create inserts a room and populates its generated id and timestamps.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
    const q = `INSERT INTO rooms (hotel_id, room_type, price_cents, amenities, is_available) VALUES (?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, room.HotelID, room.RoomType, room.PriceCents, room.Amenities, room.Available)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    room.ID = uint64(id)
    const sel = `SELECT created_at, updated_at FROM rooms WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, room.ID).Scan(&room.CreatedAt, &room.UpdatedAt)
}

// Update overwrites a room's mutable fields.  Existing bookings keep their
// frozen totals; a price change only affects bookings made afterwards.
func (r *RoomRepo) Update(ctx context.Context, room *model.Room) error {
    const q = `UPDATE rooms SET hotel_id = ?, room_type = ?, price_cents = ?, amenities = ?, is_available = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, room.HotelID, room.RoomType, room.PriceCents, room.Amenities, room.Available, room.ID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        // RowsAffected is 0 both for a missing row and for a no-op update;
        // distinguish with an existence probe.
        var exists uint64
        if err := r.db.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = ?`, room.ID).Scan(&exists); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return booking.ErrRoomNotFound
            }
            return err
        }
    }
    return nil
}

// Delete removes a room row.  Deletion policy with respect to active
// bookings is left to the caller, matching the catalog's contract.
func (r *RoomRepo) Delete(ctx context.Context, roomID uint64) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, roomID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return booking.ErrRoomNotFound
    }
    return nil
}
