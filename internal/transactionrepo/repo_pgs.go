// Package transactionrepo manages repository layer of transactions.
package transactionrepo

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

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const transactionColumns = `
	id, owner, value, date, description, categories, member_id, ministry_id, created_at`

const createQuery = `
INSERT INTO transactions (
	owner,
	value,
	date,
	description,
	categories,
	member_id,
	ministry_id
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
) RETURNING` + transactionColumns

// Create creates the transaction and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Owner,
		arg.Value,
		arg.Date,
		arg.Description,
		pq.Array(arg.Categories),
		arg.MemberID,
		arg.MinistryID,
	)

	t, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transactions_owner_fkey":
				return t, domain.ErrUserNotFound
			case "transactions_member_id_fkey":
				return t, domain.ErrMemberNotFound
			case "transactions_ministry_id_fkey":
				return t, domain.ErrMinistryNotFound
			case "transactions_single_reference":
				return t, domain.ErrAmbiguousReference
			}
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT` + transactionColumns + `
FROM transactions
WHERE id = $1 AND owner = $2
`

// Get returns the transaction with the given id scoped by owner.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID, owner string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id, owner)

	t, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listQuery = `
SELECT` + transactionColumns + `
FROM transactions
WHERE owner = $1
ORDER BY date DESC
`

// List returns all transactions of the given owner, newest first.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const deleteQuery = `
DELETE FROM transactions
WHERE id = $1 AND owner = $2
`

// Delete removes the transaction with the given id scoped by owner.
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
		return domain.ErrTransactionNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row scanner) (domain.Transaction, error) {
	var (
		t          domain.Transaction
		memberID   uuid.NullUUID
		ministryID uuid.NullUUID
	)

	err := row.Scan(
		&t.ID,
		&t.Owner,
		&t.Value,
		&t.Date,
		&t.Description,
		pq.Array(&t.Categories),
		&memberID,
		&ministryID,
		&t.CreatedAt,
	)

	if err != nil {
		return t, err
	}

	if memberID.Valid {
		t.MemberID = &memberID.UUID
	}

	if ministryID.Valid {
		t.MinistryID = &ministryID.UUID
	}

	return t, nil
}
