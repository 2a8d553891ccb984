package metricsrepo

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/errorspkg"
)

const countMinistriesQuery = `
SELECT COUNT(*)
FROM ministries
WHERE owner = $1 AND ($2::boolean IS NULL OR status = $2)
`

// CountMinistries counts the owner's ministries. A non-nil status
// restricts the count to ministries with that active flag.
func (r *RepoPGS) CountMinistries(ctx context.Context, owner string, status *bool) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countMinistriesQuery, owner, status).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const countMinistriesUpdatedSinceQuery = `
SELECT COUNT(*)
FROM ministries
WHERE owner = $1 AND updated_at >= $2
`

// CountMinistriesUpdatedSince counts the owner's ministries touched at
// or after the given instant.
func (r *RepoPGS) CountMinistriesUpdatedSince(ctx context.Context, owner string, since time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countMinistriesUpdatedSinceQuery, owner, since).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const ministryActivityQuery = `
SELECT
	m.id,
	m.name,
	l.name,
	COALESCE(SUM(t.value), 0),
	COUNT(t.id)
FROM ministries m
JOIN members l ON l.id = m.leader_id
LEFT JOIN transactions t ON t.ministry_id = m.id
WHERE m.owner = $1
GROUP BY m.id, m.name, l.name
ORDER BY m.name
`

// MinistryActivity joins every ministry of the owner to its leader's
// name and its linked transactions. The join starts from ministries, so
// a ministry with no transactions still appears with zero totals.
func (r *RepoPGS) MinistryActivity(ctx context.Context, owner string) ([]domain.MinistryActivity, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, ministryActivityQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.MinistryActivity{}

	for rows.Next() {
		var ma domain.MinistryActivity
		if err := rows.Scan(&ma.MinistryID, &ma.MinistryName, &ma.Leader, &ma.Total, &ma.TransactionCount); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, ma)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const ministryTotalsQuery = `
SELECT ministry_id, COALESCE(SUM(value), 0)
FROM transactions
WHERE owner = $1 AND ministry_id IS NOT NULL
GROUP BY ministry_id
`

// MinistryTotals groups the owner's ministry-linked transactions by
// ministry id.
func (r *RepoPGS) MinistryTotals(ctx context.Context, owner string) ([]domain.MinistryTotal, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, ministryTotalsQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.MinistryTotal{}

	for rows.Next() {
		var mt domain.MinistryTotal
		if err := rows.Scan(&mt.MinistryID, &mt.Total); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, mt)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const topMinistriesQuery = `
SELECT m.id, m.name, COALESCE(SUM(t.value), 0) AS total
FROM ministries m
LEFT JOIN transactions t ON t.ministry_id = m.id
WHERE m.owner = $1
GROUP BY m.id, m.name
ORDER BY total DESC, m.name ASC
LIMIT $2
`

// TopMinistries ranks the owner's ministries by linked-transaction
// total, descending, truncated to at most limit rows.
func (r *RepoPGS) TopMinistries(ctx context.Context, owner string, limit int) ([]domain.MinistryTotal, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, topMinistriesQuery, owner, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.MinistryTotal{}

	for rows.Next() {
		var mt domain.MinistryTotal
		if err := rows.Scan(&mt.MinistryID, &mt.Name, &mt.Total); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, mt)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
