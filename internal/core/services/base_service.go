package services

import (
	"context"
	"log/slog"

	"github.com/sirisha-padi/EagleBank/internal/apperrors"
	"github.com/sirisha-padi/EagleBank/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or the default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AssertOwnership verifies the caller is the resource's owner. Equality is
// exact identifier match; there is no hierarchical or delegated access.
func (s *BaseService) AssertOwnership(callerID, resourceOwnerID string) error {
	if callerID != resourceOwnerID {
		return apperrors.ErrForbidden
	}
	return nil
}
