package domain

import "time"

// User represents a registered account holder.
type User struct {
	UserID       string    `json:"id"`
	Name         string    `json:"name"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2,omitempty"`
	AddressLine3 string    `json:"addressLine3,omitempty"`
	Town         string    `json:"town"`
	County       string    `json:"county"`
	Postcode     string    `json:"postcode"`
	PhoneNumber  string    `json:"phoneNumber"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Deleted      bool      `json:"-"`
	CreatedAt    time.Time `json:"createdTimestamp"`
	UpdatedAt    time.Time `json:"updatedTimestamp"`
}
