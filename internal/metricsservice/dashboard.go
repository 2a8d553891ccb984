package metricsservice

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/datepkg"
	"github.com/IanSalomao/churchflow/pkg/moneypkg"
)

// Dashboard composes the landing-screen summary for the owner: headline
// counters, trailing seven-day activity, the current calendar month's
// money flow and the top five categories and ministries by value.
func (s *Service) Dashboard(ctx context.Context, owner string) (domain.DashboardMetrics, error) {
	now := s.now()

	weekAgo := now.AddDate(0, 0, -trailingDays)
	monthStart := datepkg.MonthStart(now)
	nextMonthStart := datepkg.NextMonthStart(now)

	active := true

	var (
		activeMembers    int64
		activeMinistries int64
		newMembers       int64
		newTransactions  int64
		ministryChanges  int64
		monthIncome      int64
		monthInflows     int64
		monthOutflows    int64
		topCategories    []domain.CategoryTotal
		topMinistries    []domain.MinistryTotal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if activeMembers, err = s.store.CountMembers(gctx, owner, &active); err != nil {
			return fmt.Errorf("active members: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if activeMinistries, err = s.store.CountMinistries(gctx, owner, &active); err != nil {
			return fmt.Errorf("active ministries: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if newMembers, err = s.store.CountMembersCreatedSince(gctx, owner, weekAgo); err != nil {
			return fmt.Errorf("new members week: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if newTransactions, err = s.store.CountTransactionsSince(gctx, owner, weekAgo); err != nil {
			return fmt.Errorf("new transactions week: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if ministryChanges, err = s.store.CountMinistriesUpdatedSince(gctx, owner, weekAgo); err != nil {
			return fmt.Errorf("ministry changes: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if monthIncome, err = s.store.SumTransactionsBetween(gctx, owner, monthStart, nextMonthStart); err != nil {
			return fmt.Errorf("month income: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if monthInflows, err = s.store.SumInflowsBetween(gctx, owner, monthStart, nextMonthStart); err != nil {
			return fmt.Errorf("month inflows: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if monthOutflows, err = s.store.SumOutflowsBetween(gctx, owner, monthStart, nextMonthStart); err != nil {
			return fmt.Errorf("month outflows: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if topCategories, err = s.store.TopCategories(gctx, owner, topLimit); err != nil {
			return fmt.Errorf("top categories: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if topMinistries, err = s.store.TopMinistries(gctx, owner, topLimit); err != nil {
			return fmt.Errorf("top ministries: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.DashboardMetrics{}, err
	}

	categories := make([]domain.RankedCategory, 0, len(topCategories))
	for _, ct := range topCategories {
		categories = append(categories, domain.RankedCategory{
			Name:       ct.Category,
			Total:      moneypkg.Format(ct.Total),
			Percentage: moneypkg.Percentage(ct.Total, monthInflows),
		})
	}

	ministries := make([]domain.RankedMinistry, 0, len(topMinistries))
	for _, mt := range topMinistries {
		ministries = append(ministries, domain.RankedMinistry{
			Name:              mt.Name,
			TotalTransactions: moneypkg.Format(mt.Total),
		})
	}

	return domain.DashboardMetrics{
		QuickStats: domain.QuickStats{
			TotalActiveMembers:    activeMembers,
			TotalActiveMinistries: activeMinistries,
		},
		RecentActivity: domain.RecentActivity{
			NewMembersWeek:      newMembers,
			NewTransactionsWeek: newTransactions,
			MinistryChanges:     ministryChanges,
		},
		FinancialHealth: domain.FinancialHealth{
			TotalIncome:   moneypkg.Format(monthIncome),
			TotalInflows:  moneypkg.Format(monthInflows),
			TotalOutflows: moneypkg.Format(-monthOutflows),
		},
		TopCategories: categories,
		TopMinistries: ministries,
	}, nil
}
