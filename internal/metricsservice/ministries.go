package metricsservice

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/moneypkg"
)

// Ministries computes ministry counts, the per-ministry transaction
// distribution and the linked-spending summary for the owner.
// Ministries without any linked transaction still appear in the
// distribution with zero totals.
func (s *Service) Ministries(ctx context.Context, owner string) (domain.MinistryMetrics, error) {
	active := true

	var (
		total       int64
		activeCount int64
		activity    []domain.MinistryActivity
		totals      []domain.MinistryTotal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if total, err = s.store.CountMinistries(gctx, owner, nil); err != nil {
			return fmt.Errorf("total ministries: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if activeCount, err = s.store.CountMinistries(gctx, owner, &active); err != nil {
			return fmt.Errorf("active ministries: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if activity, err = s.store.MinistryActivity(gctx, owner); err != nil {
			return fmt.Errorf("ministry distribution: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if totals, err = s.store.MinistryTotals(gctx, owner); err != nil {
			return fmt.Errorf("financial summary: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.MinistryMetrics{}, err
	}

	distribution := make([]domain.MinistryBreakdown, 0, len(activity))
	for _, a := range activity {
		distribution = append(distribution, domain.MinistryBreakdown{
			MinistryName:      a.MinistryName,
			Leader:            a.Leader,
			TotalTransactions: moneypkg.Format(a.Total),
			TransactionCount:  a.TransactionCount,
		})
	}

	var totalSpent int64
	byMinistry := make(map[string]string, len(totals))
	for _, t := range totals {
		totalSpent += t.Total
		byMinistry[t.MinistryID.String()] = moneypkg.Format(t.Total)
	}

	return domain.MinistryMetrics{
		TotalMinistries:     total,
		ActiveMinistries:    activeCount,
		InactiveMinistries:  total - activeCount,
		MembersDistribution: distribution,
		FinancialSummary: domain.MinistryFinancialSummary{
			TotalSpent: moneypkg.Format(totalSpent),
			ByMinistry: byMinistry,
		},
	}, nil
}
