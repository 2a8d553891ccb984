// Package memberrepo manages repository layer of members.
package memberrepo

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

// RepoPGS facilitates member repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns member RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const memberColumns = `
	id, owner, name, email, phone, birth_date, baptism_date, status, created_at, updated_at`

const createQuery = `
INSERT INTO members (
	owner,
	name,
	email,
	phone,
	birth_date,
	baptism_date,
	status
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
) RETURNING` + memberColumns

// Create creates the member and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateMemberParams) (domain.Member, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Owner,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.BirthDate,
		arg.BaptismDate,
		arg.Status,
	)

	m, err := scanMember(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "members_owner_fkey" {
				return m, domain.ErrUserNotFound
			}
		}

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const getQuery = `
SELECT` + memberColumns + `
FROM members
WHERE id = $1 AND owner = $2
`

// Get returns the member with the given id scoped by owner.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID, owner string) (domain.Member, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id, owner)

	m, err := scanMember(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return m, domain.ErrMemberNotFound
		}

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const listQuery = `
SELECT` + memberColumns + `
FROM members
WHERE owner = $1
ORDER BY name
`

// List returns all members of the given owner ordered by name.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Member, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Member{}

	for rows.Next() {
		m, err := scanMember(rows)
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
UPDATE members
SET
	name = COALESCE($3, name),
	email = COALESCE($4, email),
	phone = COALESCE($5, phone),
	birth_date = COALESCE($6, birth_date),
	baptism_date = COALESCE($7, baptism_date),
	status = COALESCE($8, status),
	updated_at = now()
WHERE id = $1 AND owner = $2
RETURNING` + memberColumns

// Update applies the non-nil fields of arg to the member with the given
// id scoped by owner and returns the updated member.
func (r *RepoPGS) Update(ctx context.Context, id uuid.UUID, owner string, arg domain.UpdateMemberParams) (domain.Member, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		id,
		owner,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.BirthDate,
		arg.BaptismDate,
		arg.Status,
	)

	m, err := scanMember(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return m, domain.ErrMemberNotFound
		}

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const deleteQuery = `
DELETE FROM members
WHERE id = $1 AND owner = $2
`

// Delete removes the member with the given id scoped by owner.
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
		return domain.ErrMemberNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(row scanner) (domain.Member, error) {
	var (
		m           domain.Member
		baptismDate sql.NullTime
	)

	err := row.Scan(
		&m.ID,
		&m.Owner,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.BirthDate,
		&baptismDate,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)

	if err != nil {
		return m, err
	}

	if baptismDate.Valid {
		m.BaptismDate = &baptismDate.Time
	}

	return m, nil
}
