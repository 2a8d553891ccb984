package metricsrepo

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/errorspkg"
)

const sumTransactionsQuery = `
SELECT COALESCE(SUM(value), 0)
FROM transactions
WHERE owner = $1
	AND ($2::timestamptz IS NULL OR date >= $2)
	AND ($3::timestamptz IS NULL OR date <= $3)
`

// SumTransactions returns the summed value of the owner's transactions,
// optionally restricted to the inclusive [from, to] date range.
func (r *RepoPGS) SumTransactions(ctx context.Context, owner string, from, to *time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, sumTransactionsQuery, owner, from, to).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return total, nil
}

const sumTransactionsBetweenQuery = `
SELECT COALESCE(SUM(value), 0)
FROM transactions
WHERE owner = $1 AND date >= $2 AND date < $3
`

// SumTransactionsBetween returns the summed value of the owner's
// transactions inside the half-open [from, to) window.
func (r *RepoPGS) SumTransactionsBetween(ctx context.Context, owner string, from, to time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, sumTransactionsBetweenQuery, owner, from, to).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return total, nil
}

const sumFlowBetweenQuery = `
SELECT COALESCE(SUM(value), 0)
FROM transactions
WHERE owner = $1 AND date >= $2 AND date < $3
	AND CASE WHEN $4 THEN value > 0 ELSE value < 0 END
`

// SumInflowsBetween returns the summed value of positive transactions
// inside the half-open [from, to) window.
func (r *RepoPGS) SumInflowsBetween(ctx context.Context, owner string, from, to time.Time) (int64, error) {
	return r.sumFlow(ctx, owner, from, to, true)
}

// SumOutflowsBetween returns the summed value of negative transactions
// inside the half-open [from, to) window. The result is zero or negative.
func (r *RepoPGS) SumOutflowsBetween(ctx context.Context, owner string, from, to time.Time) (int64, error) {
	return r.sumFlow(ctx, owner, from, to, false)
}

func (r *RepoPGS) sumFlow(ctx context.Context, owner string, from, to time.Time, inflows bool) (int64, error) {
	l := zerolog.Ctx(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, sumFlowBetweenQuery, owner, from, to, inflows).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return total, nil
}

const sumByCategoryQuery = `
SELECT c, COALESCE(SUM(value), 0), COUNT(*)
FROM transactions, unnest(categories) AS c
WHERE owner = $1
	AND ($2::timestamptz IS NULL OR date >= $2)
	AND ($3::timestamptz IS NULL OR date <= $3)
GROUP BY c
ORDER BY 2 DESC, c ASC
`

// SumTransactionsByCategory groups the owner's transactions by category
// label. A transaction contributes its full value to every category it
// lists, so the sum across categories can exceed total income.
func (r *RepoPGS) SumTransactionsByCategory(ctx context.Context, owner string, from, to *time.Time) ([]domain.CategoryTotal, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, sumByCategoryQuery, owner, from, to)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.CategoryTotal{}

	for rows.Next() {
		var ct domain.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total, &ct.Count); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, ct)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const topCategoriesQuery = `
SELECT c, COALESCE(SUM(value), 0), COUNT(*)
FROM transactions, unnest(categories) AS c
WHERE owner = $1 AND value > 0
GROUP BY c
ORDER BY 2 DESC, c ASC
LIMIT $2
`

// TopCategories ranks categories by summed value over positive-value
// transactions only, truncated to at most limit rows.
func (r *RepoPGS) TopCategories(ctx context.Context, owner string, limit int) ([]domain.CategoryTotal, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, topCategoriesQuery, owner, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.CategoryTotal{}

	for rows.Next() {
		var ct domain.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total, &ct.Count); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, ct)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const monthlyTransactionsQuery = `
SELECT
	EXTRACT(YEAR FROM date)::int,
	EXTRACT(MONTH FROM date)::int,
	COUNT(*),
	COALESCE(SUM(value), 0)
FROM transactions
WHERE owner = $1 AND date >= $2
GROUP BY 1, 2
ORDER BY 1, 2
`

// MonthlyTransactionBuckets buckets the owner's transactions by calendar
// month of their occurrence date, ascending. Months without transactions
// do not appear.
func (r *RepoPGS) MonthlyTransactionBuckets(ctx context.Context, owner string, since time.Time) ([]domain.MonthlyBucket, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, monthlyTransactionsQuery, owner, since)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items, err := scanMonthlyBuckets(rows)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const countTransactionsSinceQuery = `
SELECT COUNT(*)
FROM transactions
WHERE owner = $1 AND date >= $2
`

// CountTransactionsSince counts the owner's transactions dated at or
// after the given instant.
func (r *RepoPGS) CountTransactionsSince(ctx context.Context, owner string, since time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countTransactionsSinceQuery, owner, since).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}
