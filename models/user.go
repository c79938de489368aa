package models

import "time"

// UserRole represents the roles stored in the users.role ENUM.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCreator UserRole = "creator"
	RoleViewer  UserRole = "viewer"
)

type User struct {
	ID           int       `json:"id" db:"id"`
	Nickname     string    `json:"nickname" db:"nickname"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
