package services

import (
	"context"

	"github.com/sirisha-padi/EagleBank/internal/core/domain"
	"github.com/sirisha-padi/EagleBank/internal/dto"
)

// UserSvcFacade defines holder registration and profile operations
type UserSvcFacade interface {
	// RegisterUser creates a new account holder.
	RegisterUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUser returns a user's profile. Callers may only fetch their own.
	GetUser(ctx context.Context, callerID string, userID string) (*domain.User, error)

	// UpdateUser applies a partial patch to the caller's own profile.
	UpdateUser(ctx context.Context, callerID string, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser soft-deletes the caller's own profile. Fails with
	// ErrBusinessRule while the user still owns accounts.
	DeleteUser(ctx context.Context, callerID string, userID string) error
}

// AuthSvc defines credential verification and token issuance
type AuthSvc interface {
	// Login verifies credentials and returns a signed bearer token plus the
	// authenticated user's ID.
	Login(ctx context.Context, email string, password string) (token string, userID string, err error)
}
