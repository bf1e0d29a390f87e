package dto

import (
	"time"

	"github.com/sirisha-padi/EagleBank/internal/core/domain"
)

// AddressRequest carries the postal address of a holder.
type AddressRequest struct {
	Line1    string `json:"line1" binding:"required"`
	Line2    string `json:"line2"`
	Line3    string `json:"line3"`
	Town     string `json:"town" binding:"required"`
	County   string `json:"county" binding:"required"`
	Postcode string `json:"postcode" binding:"required"`
}

// CreateUserRequest defines the data needed to register a holder.
type CreateUserRequest struct {
	Name        string         `json:"name" binding:"required"`
	Address     AddressRequest `json:"address" binding:"required"`
	PhoneNumber string         `json:"phoneNumber" binding:"required,e164"`
	Email       string         `json:"email" binding:"required,email"`
	Password    string         `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest defines the data allowed for updating a holder profile.
type UpdateUserRequest struct {
	Name        *string         `json:"name"`
	Address     *AddressRequest `json:"address"`
	PhoneNumber *string         `json:"phoneNumber" binding:"omitempty,e164"`
	Email       *string         `json:"email" binding:"omitempty,email"`
}

// AddressResponse mirrors AddressRequest for responses.
type AddressResponse struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
}

// UserResponse defines the data returned for a holder.
type UserResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Address          AddressResponse `json:"address"`
	PhoneNumber      string          `json:"phoneNumber"`
	Email            string          `json:"email"`
	CreatedTimestamp time.Time       `json:"createdTimestamp"`
	UpdatedTimestamp time.Time       `json:"updatedTimestamp"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:   u.UserID,
		Name: u.Name,
		Address: AddressResponse{
			Line1:    u.AddressLine1,
			Line2:    u.AddressLine2,
			Line3:    u.AddressLine3,
			Town:     u.Town,
			County:   u.County,
			Postcode: u.Postcode,
		},
		PhoneNumber:      u.PhoneNumber,
		Email:            u.Email,
		CreatedTimestamp: u.CreatedAt,
		UpdatedTimestamp: u.UpdatedAt,
	}
}
