// Package memberservice manages business logic layer of members.
package memberservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/IanSalomao/churchflow/internal/domain"
)

// Repo provides data access layer interface needed by member service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package memberservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateMemberParams) (domain.Member, error)
	Get(ctx context.Context, id uuid.UUID, owner string) (domain.Member, error)
	List(ctx context.Context, owner string) ([]domain.Member, error)
	Update(ctx context.Context, id uuid.UUID, owner string, arg domain.UpdateMemberParams) (domain.Member, error)
	Delete(ctx context.Context, id uuid.UUID, owner string) error
}

// Service facilitates member service layer logic.
type Service struct {
	repo Repo
}

// New returns a member service.
func New(mr Repo) *Service {
	return &Service{
		repo: mr,
	}
}

// Create creates and returns a member.
func (s *Service) Create(ctx context.Context, arg domain.CreateMemberParams) (domain.Member, error) {
	return s.repo.Create(ctx, arg)
}

// Get returns the owner's member with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID, owner string) (domain.Member, error) {
	return s.repo.Get(ctx, id, owner)
}

// List returns all of the owner's members ordered by name.
func (s *Service) List(ctx context.Context, owner string) ([]domain.Member, error) {
	return s.repo.List(ctx, owner)
}

// Update applies the non-nil fields of arg to the owner's member.
func (s *Service) Update(ctx context.Context, id uuid.UUID, owner string, arg domain.UpdateMemberParams) (domain.Member, error) {
	return s.repo.Update(ctx, id, owner, arg)
}

// Delete removes the owner's member with the given id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	return s.repo.Delete(ctx, id, owner)
}
