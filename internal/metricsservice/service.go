// Package metricsservice computes financial, membership, ministry and
// dashboard analytics from the record store. Every operation is
// read-only and stateless: each call re-derives its result from the
// current store contents.
package metricsservice

import (
	"context"
	"time"

	"github.com/IanSalomao/churchflow/internal/domain"
)

// Store provides the read-only data access interface needed by the
// metrics service layer. All queries are scoped by owner.
//
//go:generate mockgen -source service.go -destination service_mock.go -package metricsservice
type Store interface {
	SumTransactions(ctx context.Context, owner string, from, to *time.Time) (int64, error)
	SumTransactionsBetween(ctx context.Context, owner string, from, to time.Time) (int64, error)
	SumInflowsBetween(ctx context.Context, owner string, from, to time.Time) (int64, error)
	SumOutflowsBetween(ctx context.Context, owner string, from, to time.Time) (int64, error)
	SumTransactionsByCategory(ctx context.Context, owner string, from, to *time.Time) ([]domain.CategoryTotal, error)
	TopCategories(ctx context.Context, owner string, limit int) ([]domain.CategoryTotal, error)
	MonthlyTransactionBuckets(ctx context.Context, owner string, since time.Time) ([]domain.MonthlyBucket, error)
	CountTransactionsSince(ctx context.Context, owner string, since time.Time) (int64, error)

	CountMembers(ctx context.Context, owner string, status *bool) (int64, error)
	CountMembersCreatedSince(ctx context.Context, owner string, since time.Time) (int64, error)
	ListMemberBirthDates(ctx context.Context, owner string) ([]time.Time, error)
	CountBaptizedMembers(ctx context.Context, owner string) (int64, error)
	CountPendingBaptism(ctx context.Context, owner string) (int64, error)
	CountBaptismsBetween(ctx context.Context, owner string, from, to time.Time) (int64, error)
	MonthlyMemberBuckets(ctx context.Context, owner string, since time.Time) ([]domain.MonthlyBucket, error)

	CountMinistries(ctx context.Context, owner string, status *bool) (int64, error)
	CountMinistriesUpdatedSince(ctx context.Context, owner string, since time.Time) (int64, error)
	MinistryActivity(ctx context.Context, owner string) ([]domain.MinistryActivity, error)
	MinistryTotals(ctx context.Context, owner string) ([]domain.MinistryTotal, error)
	TopMinistries(ctx context.Context, owner string, limit int) ([]domain.MinistryTotal, error)
}

// Service facilitates metrics service layer logic.
type Service struct {
	store Store

	// now is the reference clock for every time-windowed computation.
	// Tests replace it with a fixed instant.
	now func() time.Time
}

// New returns a metrics service over the given store.
func New(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

const (
	trailingMonths = 12
	trailingDays   = 7
	topLimit       = 5
)
