package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

// HotelRepo provides data access to the hotels table.
type HotelRepo struct {
    db *sql.DB
}

// NewHotelRepo returns a HotelRepo bound to the given database.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

const hotelColumns = `id, name, location, description, rating, created_at, updated_at`

func scanHotel(row interface{ Scan(...any) error }, h *model.Hotel) error {
    return row.Scan(&h.ID, &h.Name, &h.Location, &h.Description, &h.Rating, &h.CreatedAt, &h.UpdatedAt)
}

// SearchFilter narrows a hotel search.  Zero values mean "no constraint".
// Price bounds are matched against the hotel's cheapest room so that a
// hotel qualifies when at least one of its rooms fits the budget.
type SearchFilter struct {
    Location      string
    PriceMinCents int64
    PriceMaxCents int64
    RoomType      string
}

// Search returns hotels matching the filter, ordered by rating descending.
func (r *HotelRepo) Search(ctx context.Context, f SearchFilter) ([]model.Hotel, error) {
    q := `SELECT DISTINCT h.id, h.name, h.location, h.description, h.rating, h.created_at, h.updated_at
          FROM hotels h
          LEFT JOIN rooms rm ON rm.hotel_id = h.id`
    conds := make([]string, 0, 4)
    args := make([]any, 0, 4)
    if f.Location != "" {
        conds = append(conds, "h.location LIKE ?")
        args = append(args, "%"+f.Location+"%")
    }
    if f.RoomType != "" {
        conds = append(conds, "rm.room_type = ?")
        args = append(args, f.RoomType)
    }
    if f.PriceMinCents > 0 {
        conds = append(conds, "rm.price_cents >= ?")
        args = append(args, f.PriceMinCents)
    }
    if f.PriceMaxCents > 0 {
        conds = append(conds, "rm.price_cents <= ?")
        args = append(args, f.PriceMaxCents)
    }
    if len(conds) > 0 {
        q += " WHERE " + strings.Join(conds, " AND ")
    }
    q += " ORDER BY h.rating DESC, h.id"

    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Hotel, 0)
    for rows.Next() {
        var h model.Hotel
        if err := scanHotel(rows, &h); err != nil {
            return nil, err
        }
        out = append(out, h)
    }
    return out, rows.Err()
}

// GetByID returns a single hotel by id.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (*model.Hotel, error) {
    const q = `SELECT ` + hotelColumns + ` FROM hotels WHERE id = ?`
    var h model.Hotel
    if err := scanHotel(r.db.QueryRowContext(ctx, q, id), &h); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrHotelNotFound
        }
        return nil, err
    }
    return &h, nil
}

// Create inserts a hotel and populates its generated id and timestamps.
func (r *HotelRepo) Create(ctx context.Context, h *model.Hotel) error {
    const q = `INSERT INTO hotels (name, location, description, rating) VALUES (?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, h.Name, h.Location, h.Description, h.Rating)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    h.ID = uint64(id)
    const sel = `SELECT created_at, updated_at FROM hotels WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, h.ID).Scan(&h.CreatedAt, &h.UpdatedAt)
}

// Update overwrites a hotel's fields.
func (r *HotelRepo) Update(ctx context.Context, h *model.Hotel) error {
    const q = `UPDATE hotels SET name = ?, location = ?, description = ?, rating = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, h.Name, h.Location, h.Description, h.Rating, h.ID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        var exists uint64
        if err := r.db.QueryRowContext(ctx, `SELECT id FROM hotels WHERE id = ?`, h.ID).Scan(&exists); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return ErrHotelNotFound
            }
            return err
        }
    }
    return nil
}

// Delete removes a hotel row.
func (r *HotelRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = ?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrHotelNotFound
    }
    return nil
}
