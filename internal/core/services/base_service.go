package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequirePermission rejects the call unless the session grants the permission.
func (s *BaseService) RequirePermission(session *domain.Session, p domain.Permission) error {
	if session == nil || !session.HasPermission(p) {
		return apperrors.NewForbiddenError("missing permission " + string(p))
	}
	return nil
}

// RequireModule rejects the call unless the session's tenant has the module
// enabled and a live subscription right now.
func (s *BaseService) RequireModule(session *domain.Session, m domain.Module) error {
	if session == nil || !session.CanUseModule(m, time.Now()) {
		return apperrors.NewForbiddenError("module " + string(m) + " is not available")
	}
	return nil
}

// RequireTenant resolves the tenant the session operates on. Super admins
// without a tenant association cannot perform tenant-scoped writes.
func (s *BaseService) RequireTenant(session *domain.Session) (string, error) {
	if session == nil || session.Profile == nil {
		return "", apperrors.ErrUnauthorized
	}
	if session.Tenant != nil {
		return session.Tenant.TenantID, nil
	}
	if session.Profile.TenantID != nil {
		return *session.Profile.TenantID, nil
	}
	return "", apperrors.NewForbiddenError("no tenant associated with this account")
}
