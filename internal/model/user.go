package model

import "time"

// User represents an application account as stored in the `users` table.
// PasswordHash is a bcrypt digest; the plain password never leaves the
// auth handler.  Role is either USER or ADMIN.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique email address, lowercased on registration.
//  PasswordHash – bcrypt hashed password.
//  Role         – USER or ADMIN.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// Known role values for the "role" claim and the users.role column.
const (
    RoleUser  = "USER"
    RoleAdmin = "ADMIN"
)
