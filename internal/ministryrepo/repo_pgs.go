// Package ministryrepo manages repository layer of ministries.
package ministryrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/dbpkg"
	"github.com/IanSalomao/churchflow/pkg/errorspkg"
)

// RepoPGS facilitates ministry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns ministry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const ministryColumns = `
	id, owner, name, description, status, leader_id, created_at, updated_at`

const createQuery = `
INSERT INTO ministries (
	owner,
	name,
	description,
	status,
	leader_id
) VALUES (
	$1, $2, $3, $4, $5
) RETURNING` + ministryColumns

// Create creates the ministry and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateMinistryParams) (domain.Ministry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Owner,
		arg.Name,
		arg.Description,
		arg.Status,
		arg.LeaderID,
	)

	m, err := scanMinistry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "ministries_owner_fkey":
				return m, domain.ErrUserNotFound
			case "ministries_leader_id_fkey":
				return m, domain.ErrLeaderNotFound
			}
		}

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const getQuery = `
SELECT` + ministryColumns + `
FROM ministries
WHERE id = $1 AND owner = $2
`

// Get returns the ministry with the given id scoped by owner.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID, owner string) (domain.Ministry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id, owner)

	m, err := scanMinistry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return m, domain.ErrMinistryNotFound
		}

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const listQuery = `
SELECT` + ministryColumns + `
FROM ministries
WHERE owner = $1
ORDER BY name
`

// List returns all ministries of the given owner ordered by name.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Ministry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Ministry{}

	for rows.Next() {
		m, err := scanMinistry(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE ministries
SET
	name = COALESCE($3, name),
	description = COALESCE($4, description),
	status = COALESCE($5, status),
	leader_id = COALESCE($6, leader_id),
	updated_at = now()
WHERE id = $1 AND owner = $2
RETURNING` + ministryColumns

// Update applies the non-nil fields of arg to the ministry with the
// given id scoped by owner and returns the updated ministry.
func (r *RepoPGS) Update(ctx context.Context, id uuid.UUID, owner string, arg domain.UpdateMinistryParams) (domain.Ministry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		id,
		owner,
		arg.Name,
		arg.Description,
		arg.Status,
		arg.LeaderID,
	)

	m, err := scanMinistry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return m, domain.ErrMinistryNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "ministries_leader_id_fkey" {
				return m, domain.ErrLeaderNotFound
			}
		}

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const deleteQuery = `
DELETE FROM ministries
WHERE id = $1 AND owner = $2
`

// Delete removes the ministry with the given id scoped by owner.
func (r *RepoPGS) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if affected == 0 {
		return domain.ErrMinistryNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMinistry(row scanner) (domain.Ministry, error) {
	var m domain.Ministry

	err := row.Scan(
		&m.ID,
		&m.Owner,
		&m.Name,
		&m.Description,
		&m.Status,
		&m.LeaderID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)

	return m, err
}
