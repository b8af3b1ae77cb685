package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminDB represents an admin record in the database
type AdminDB struct {
	AdminID      uuid.UUID `json:"admin_id" db:"admin_id"`     // Primary key
	Username     string    `json:"username" db:"username"`     // Unique login name
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
	Permissions  []string  `json:"permissions" db:"-"`         // Loaded from admin_permissions
}
