package metricsservice

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/datepkg"
)

// Members computes membership counts, the age-bracket distribution,
// baptism statistics and the trailing twelve-month growth series for
// the owner. The inactive count is derived from total and active so the
// identity active + inactive == total always holds.
func (s *Service) Members(ctx context.Context, owner string) (domain.MembershipMetrics, error) {
	now := s.now()

	seriesStart := datepkg.MonthsBack(now, trailingMonths)
	yearStart := datepkg.YearStart(now)
	nextYearStart := datepkg.NextYearStart(now)

	active := true

	var (
		total            int64
		activeCount      int64
		baptized         int64
		pendingBaptism   int64
		baptismsThisYear int64
		birthDates       []time.Time
		buckets          []domain.MonthlyBucket
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if total, err = s.store.CountMembers(gctx, owner, nil); err != nil {
			return fmt.Errorf("total members: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if activeCount, err = s.store.CountMembers(gctx, owner, &active); err != nil {
			return fmt.Errorf("active members: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if birthDates, err = s.store.ListMemberBirthDates(gctx, owner); err != nil {
			return fmt.Errorf("age distribution: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if baptized, err = s.store.CountBaptizedMembers(gctx, owner); err != nil {
			return fmt.Errorf("baptized members: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if pendingBaptism, err = s.store.CountPendingBaptism(gctx, owner); err != nil {
			return fmt.Errorf("pending baptisms: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if baptismsThisYear, err = s.store.CountBaptismsBetween(gctx, owner, yearStart, nextYearStart); err != nil {
			return fmt.Errorf("baptisms this year: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		if buckets, err = s.store.MonthlyMemberBuckets(gctx, owner, seriesStart); err != nil {
			return fmt.Errorf("monthly growth: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.MembershipMetrics{}, err
	}

	var ageDist domain.AgeDistribution

	for _, birthDate := range birthDates {
		age := datepkg.Age(birthDate, now)

		switch {
		case age < 18:
			ageDist.Under18++
		case age <= 30:
			ageDist.From18To30++
		case age <= 50:
			ageDist.From31To50++
		default:
			ageDist.Above50++
		}
	}

	growth := make([]domain.MonthCount, 0, len(buckets))
	for _, b := range buckets {
		growth = append(growth, domain.MonthCount{
			Month:      datepkg.MonthKey(b.Year, b.Month),
			NewMembers: b.Count,
		})
	}

	// The newest bucket is the latest month with any new members.
	var newMembersMonth int64
	if len(buckets) > 0 {
		newMembersMonth = buckets[len(buckets)-1].Count
	}

	var percentageGrowth float64
	if total > 0 {
		percentageGrowth = float64(newMembersMonth) / float64(total) * 100
	}

	return domain.MembershipMetrics{
		TotalMembers:    total,
		ActiveMembers:   activeCount,
		InactiveMembers: total - activeCount,
		Growth: domain.GrowthStats{
			NewMembersMonth:  newMembersMonth,
			PercentageGrowth: percentageGrowth,
		},
		AgeDistribution: ageDist,
		BaptismStats: domain.BaptismStats{
			TotalBaptized:    baptized,
			PendingBaptism:   pendingBaptism,
			BaptismsThisYear: baptismsThisYear,
		},
		MonthlyGrowth: growth,
	}, nil
}
