package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rl1809/warehouse-ledger/internal/core/dashboard"
	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

const recentOnDashboard = 5

type DashboardReport struct {
	dashboard.Summary
	RecentActivity []domain.Activity `json:"recentActivity"`
}

// Snapshot returns a consistent read of every warehouse and item.
func (s *LedgerService) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}
	return snap, nil
}

// Dashboard computes the aggregates over one snapshot and attaches the most
// recent activities. An unavailable audit sink only empties the activity list.
func (s *LedgerService) Dashboard(ctx context.Context, threshold float64) (report *DashboardReport, err error) {
	ctx, done := s.observe(ctx, "dashboard", attribute.Float64("dashboard.threshold", threshold))
	defer done(&err)

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	report = &DashboardReport{
		Summary:        dashboard.Compute(snap, threshold),
		RecentActivity: []domain.Activity{},
	}
	if recent, err := s.RecentActivity(ctx, recentOnDashboard); err == nil {
		report.RecentActivity = recent
	}
	return report, nil
}

// RecentActivity returns up to limit audit entries, newest first.
func (s *LedgerService) RecentActivity(ctx context.Context, limit int) ([]domain.Activity, error) {
	if s.activity == nil {
		return []domain.Activity{}, nil
	}
	if limit <= 0 {
		return nil, domain.InvalidArgumentf("limit must be positive")
	}
	out, err := s.activity.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return out, nil
}
