package metricsservice

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/datepkg"
	"github.com/IanSalomao/churchflow/pkg/moneypkg"
)

// Financial computes income totals, per-category breakdown, the
// trailing twelve-month time series and the month-over-month comparison
// for the owner's transactions. The optional from/to bounds are
// inclusive and restrict only the total and the category breakdown; the
// boundary layer validates them before this method is reached.
func (s *Service) Financial(ctx context.Context, owner string, from, to *time.Time) (domain.FinancialMetrics, error) {
	now := s.now()

	monthStart := datepkg.MonthStart(now)
	nextMonthStart := datepkg.NextMonthStart(now)
	prevMonthStart := datepkg.MonthStart(datepkg.MonthsBack(now, 1))
	seriesStart := datepkg.MonthsBack(now, trailingMonths)

	var (
		total         int64
		currentMonth  int64
		previousMonth int64
		byCategory    []domain.CategoryTotal
		buckets       []domain.MonthlyBucket
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if total, err = s.store.SumTransactions(gctx, owner, from, to); err != nil {
			return fmt.Errorf("total income: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if byCategory, err = s.store.SumTransactionsByCategory(gctx, owner, from, to); err != nil {
			return fmt.Errorf("category breakdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if buckets, err = s.store.MonthlyTransactionBuckets(gctx, owner, seriesStart); err != nil {
			return fmt.Errorf("monthly summary: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if currentMonth, err = s.store.SumTransactionsBetween(gctx, owner, monthStart, nextMonthStart); err != nil {
			return fmt.Errorf("current month total: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if previousMonth, err = s.store.SumTransactionsBetween(gctx, owner, prevMonthStart, monthStart); err != nil {
			return fmt.Errorf("previous month total: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.FinancialMetrics{}, err
	}

	categories := make(map[string]string, len(byCategory))
	for _, ct := range byCategory {
		categories[ct.Category] = moneypkg.Format(ct.Total)
	}

	summary := make([]domain.MonthTotal, 0, len(buckets))
	for _, b := range buckets {
		summary = append(summary, domain.MonthTotal{
			Month: datepkg.MonthKey(b.Year, b.Month),
			Total: moneypkg.Format(b.Total),
		})
	}

	return domain.FinancialMetrics{
		TotalIncome:    moneypkg.Format(total),
		ByCategory:     categories,
		MonthlySummary: summary,
		Comparison: domain.MonthComparison{
			CurrentMonth:     moneypkg.Format(currentMonth),
			PreviousMonth:    moneypkg.Format(previousMonth),
			PercentageChange: moneypkg.ChangePercent(currentMonth, previousMonth),
		},
	}, nil
}
