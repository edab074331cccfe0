package services

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
)

// recentItemsLimit is how many recent tenants and subscriptions the dashboard shows.
const recentItemsLimit = 5

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	userRepo      portsrepo.UserReader
}

// NewReportingService creates a new reporting service with the provided dependencies
func NewReportingService(reportingRepo portsrepo.ReportingRepository, userRepo portsrepo.UserReader) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, userRepo: userRepo}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetPlatformSummary(ctx context.Context, session *domain.Session) (*domain.PlatformSummary, error) {
	if err := s.RequirePermission(session, domain.PermViewAllAnalytics); err != nil {
		return nil, err
	}

	counts, err := s.reportingRepo.GetTenantCounts(ctx)
	if err != nil {
		return nil, err
	}
	userCount, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	total, monthly, err := s.reportingRepo.GetActiveSubscriptionRevenue(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	recentTenants, err := s.reportingRepo.GetRecentTenants(ctx, recentItemsLimit)
	if err != nil {
		return nil, err
	}
	recentSubscriptions, err := s.reportingRepo.GetRecentSubscriptions(ctx, recentItemsLimit)
	if err != nil {
		return nil, err
	}

	return &domain.PlatformSummary{
		Tenants:             counts,
		UserCount:           userCount,
		TotalRevenue:        total,
		MonthlyRevenue:      monthly,
		RecentTenants:       recentTenants,
		RecentSubscriptions: recentSubscriptions,
	}, nil
}
