package services

import (
	"context"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// ReportingSvcFacade defines operations for the platform dashboard.
type ReportingSvcFacade interface {
	// GetPlatformSummary assembles the super-admin dashboard payload.
	GetPlatformSummary(ctx context.Context, session *domain.Session) (*domain.PlatformSummary, error)
}
