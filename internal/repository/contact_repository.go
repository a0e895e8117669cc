package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

// ContactRepo stores contact-form submissions.  Messages are append-only.
type ContactRepo struct {
    db *sql.DB
}

// NewContactRepo returns a ContactRepo bound to the given database.
func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{db: db} }

// Create inserts a message and populates its generated id.
func (r *ContactRepo) Create(ctx context.Context, m *model.ContactMessage) error {
    const q = `INSERT INTO contact_messages (name, email, subject, body) VALUES (?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, m.Name, m.Email, m.Subject, m.Body)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    m.ID = uint64(id)
    return nil
}

// ListAll returns every message, newest first.
func (r *ContactRepo) ListAll(ctx context.Context) ([]model.ContactMessage, error) {
    const q = `SELECT id, name, email, subject, body, created_at FROM contact_messages ORDER BY created_at DESC, id DESC`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.ContactMessage, 0)
    for rows.Next() {
        var m model.ContactMessage
        if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, m)
    }
    return out, rows.Err()
}
