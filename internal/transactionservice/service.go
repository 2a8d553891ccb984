// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/IanSalomao/churchflow/internal/domain"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Get(ctx context.Context, id uuid.UUID, owner string) (domain.Transaction, error)
	List(ctx context.Context, owner string) ([]domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID, owner string) error
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
}

// New returns a transaction service.
func New(tr Repo) *Service {
	return &Service{
		repo: tr,
	}
}

// Create creates and returns a transaction. The value must be nonzero
// and at most one of member and ministry may be referenced.
func (s *Service) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	if arg.Value == 0 {
		return domain.Transaction{}, domain.ErrZeroValue
	}

	if arg.MemberID != nil && arg.MinistryID != nil {
		return domain.Transaction{}, domain.ErrAmbiguousReference
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the owner's transaction with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID, owner string) (domain.Transaction, error) {
	return s.repo.Get(ctx, id, owner)
}

// List returns all of the owner's transactions ordered by date descending.
func (s *Service) List(ctx context.Context, owner string) ([]domain.Transaction, error) {
	return s.repo.List(ctx, owner)
}

// Delete removes the owner's transaction with the given id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	return s.repo.Delete(ctx, id, owner)
}
