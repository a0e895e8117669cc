package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/go-sql-driver/mysql"

    "github.com/iliyamo/hotel-room-reservation/internal/booking"
    "github.com/iliyamo/hotel-room-reservation/internal/model"
)

// UserRepo provides data access to the users table.  It doubles as the
// reservation engine's UserDirectory through UserExists.
type UserRepo struct {
    db *sql.DB
}

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// UserExists reports whether a user id resolves to an account.
func (r *UserRepo) UserExists(ctx context.Context, userID uint64) (bool, error) {
    var id uint64
    err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE id = ?`, userID).Scan(&id)
    if errors.Is(err, sql.ErrNoRows) {
        return false, nil
    }
    if err != nil {
        return false, err
    }
    return true, nil
}

// GetByEmail returns the account registered under the given email, or
// booking.ErrUserNotFound when no such account exists.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
    const q = `SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE email = ?`
    var u model.User
    err := r.db.QueryRowContext(ctx, q, strings.ToLower(email)).Scan(
        &u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, booking.ErrUserNotFound
    }
    if err != nil {
        return nil, err
    }
    return &u, nil
}

// GetByID returns the account with the given id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
    const q = `SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE id = ?`
    var u model.User
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, booking.ErrUserNotFound
    }
    if err != nil {
        return nil, err
    }
    return &u, nil
}

// Create inserts a user and populates its generated id.  A violation of the
// unique email index surfaces as ErrDuplicateEmail.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
    const q = `INSERT INTO users (email, password_hash, role) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, strings.ToLower(u.Email), u.PasswordHash, u.Role)
    if err != nil {
        var me *mysql.MySQLError
        if errors.As(err, &me) && me.Number == 1062 { // ER_DUP_ENTRY
            return ErrDuplicateEmail
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    u.ID = uint64(id)
    return nil
}
