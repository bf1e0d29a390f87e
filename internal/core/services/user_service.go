package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
	"github.com/sirisha-padi/EagleBank/internal/core/domain"
	portsrepo "github.com/sirisha-padi/EagleBank/internal/core/ports/repositories"
	portssvc "github.com/sirisha-padi/EagleBank/internal/core/ports/services"
	"github.com/sirisha-padi/EagleBank/internal/dto"
	"github.com/sirisha-padi/EagleBank/internal/utils"
)

// userService manages holder registration and profile lifecycle.
type userService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
	}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if existing, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email uniqueness")
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       "usr-" + uuid.NewString(),
		Name:         req.Name,
		AddressLine1: req.Address.Line1,
		AddressLine2: req.Address.Line2,
		AddressLine3: req.Address.Line3,
		Town:         req.Address.Town,
		County:       req.Address.County,
		Postcode:     req.Address.Postcode,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUser(ctx context.Context, callerID string, userID string) (*domain.User, error) {
	if err := s.AssertOwnership(callerID, userID); err != nil {
		s.LogDebug(ctx, "Caller may only fetch their own profile", slog.String("caller_id", callerID), slog.String("target_user_id", userID))
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, callerID string, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUser(ctx, callerID, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		user.Name = *req.Name
		updated = true
	}
	if req.Address != nil {
		user.AddressLine1 = req.Address.Line1
		user.AddressLine2 = req.Address.Line2
		user.AddressLine3 = req.Address.Line3
		user.Town = req.Address.Town
		user.County = req.Address.County
		user.Postcode = req.Address.Postcode
		updated = true
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
		updated = true
	}
	if req.Email != nil {
		user.Email = *req.Email
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for user update", slog.String("user_id", userID))
		return user, nil
	}

	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, callerID string, userID string) error {
	if _, err := s.GetUser(ctx, callerID, userID); err != nil {
		return err
	}

	// A holder with open accounts cannot be removed.
	count, err := s.accountRepo.CountAccountsByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts for user deletion", slog.String("user_id", userID))
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: cannot delete user with existing accounts", apperrors.ErrBusinessRule)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}
