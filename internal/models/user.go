package models

import (
	"database/sql"
	"time"
)

// User is the persistence shape of an account holder. Deletion is a soft
// delete via deleted_at so ledger history keeps a valid owner reference.
type User struct {
	UserID       string       `db:"user_id"`
	Name         string       `db:"name"`
	AddressLine1 string       `db:"address_line1"`
	AddressLine2 string       `db:"address_line2"`
	AddressLine3 string       `db:"address_line3"`
	Town         string       `db:"town"`
	County       string       `db:"county"`
	Postcode     string       `db:"postcode"`
	PhoneNumber  string       `db:"phone_number"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	DeletedAt    sql.NullTime `db:"deleted_at"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}
