package metricsrepo

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/errorspkg"
)

const countMembersQuery = `
SELECT COUNT(*)
FROM members
WHERE owner = $1 AND ($2::boolean IS NULL OR status = $2)
`

// CountMembers counts the owner's members. A non-nil status restricts
// the count to members with that active flag.
func (r *RepoPGS) CountMembers(ctx context.Context, owner string, status *bool) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countMembersQuery, owner, status).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const countMembersCreatedSinceQuery = `
SELECT COUNT(*)
FROM members
WHERE owner = $1 AND created_at >= $2
`

// CountMembersCreatedSince counts the owner's members created at or
// after the given instant.
func (r *RepoPGS) CountMembersCreatedSince(ctx context.Context, owner string, since time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countMembersCreatedSinceQuery, owner, since).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const listBirthDatesQuery = `
SELECT birth_date
FROM members
WHERE owner = $1
`

// ListMemberBirthDates returns the birth date of every member of the
// owner. Age classification is a runtime computation, so the engine
// pulls each record rather than bucketing query-side.
func (r *RepoPGS) ListMemberBirthDates(ctx context.Context, owner string) ([]time.Time, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listBirthDatesQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []time.Time{}

	for rows.Next() {
		var birthDate time.Time
		if err := rows.Scan(&birthDate); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, birthDate)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const countBaptizedQuery = `
SELECT COUNT(*)
FROM members
WHERE owner = $1 AND CASE WHEN $2 THEN baptism_date IS NOT NULL ELSE baptism_date IS NULL END
`

// CountBaptizedMembers counts the owner's members with a recorded
// baptism date.
func (r *RepoPGS) CountBaptizedMembers(ctx context.Context, owner string) (int64, error) {
	return r.countBaptism(ctx, owner, true)
}

// CountPendingBaptism counts the owner's members without a recorded
// baptism date.
func (r *RepoPGS) CountPendingBaptism(ctx context.Context, owner string) (int64, error) {
	return r.countBaptism(ctx, owner, false)
}

func (r *RepoPGS) countBaptism(ctx context.Context, owner string, baptized bool) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countBaptizedQuery, owner, baptized).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const countBaptismsBetweenQuery = `
SELECT COUNT(*)
FROM members
WHERE owner = $1 AND baptism_date >= $2 AND baptism_date < $3
`

// CountBaptismsBetween counts the owner's members baptized inside the
// half-open [from, to) window.
func (r *RepoPGS) CountBaptismsBetween(ctx context.Context, owner string, from, to time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countBaptismsBetweenQuery, owner, from, to).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const monthlyMembersQuery = `
SELECT
	EXTRACT(YEAR FROM created_at)::int,
	EXTRACT(MONTH FROM created_at)::int,
	COUNT(*),
	0::bigint
FROM members
WHERE owner = $1 AND created_at >= $2
GROUP BY 1, 2
ORDER BY 1, 2
`

// MonthlyMemberBuckets buckets the owner's members by calendar month of
// their creation, ascending. Members carry no monetary value, so every
// bucket total is zero.
func (r *RepoPGS) MonthlyMemberBuckets(ctx context.Context, owner string, since time.Time) ([]domain.MonthlyBucket, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, monthlyMembersQuery, owner, since)
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
