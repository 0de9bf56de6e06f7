package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// User represents the users table, keyed by the human-chosen handle.
type User struct {
	Handle    string
	Email     string
	AccountID uuid.UUID
	ImageURL  string
	Bio       sql.NullString
	Website   sql.NullString
	Location  sql.NullString
	CreatedAt time.Time
}

// Account represents the accounts table holding identity credentials.
// The profile document never carries the password; it lives here only.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Like represents the likes table. Read-only in this service.
type Like struct {
	UserHandle string
	PostID     string
	CreatedAt  time.Time
}

// Details carries the allow-listed editable profile fields. A nil field
// means "leave the stored value untouched".
type Details struct {
	Bio      *string
	Website  *string
	Location *string
}
