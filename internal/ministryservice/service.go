// Package ministryservice manages business logic layer of ministries.
package ministryservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/IanSalomao/churchflow/internal/domain"
)

// Repo provides data access layer interface needed by ministry service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ministryservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateMinistryParams) (domain.Ministry, error)
	Get(ctx context.Context, id uuid.UUID, owner string) (domain.Ministry, error)
	List(ctx context.Context, owner string) ([]domain.Ministry, error)
	Update(ctx context.Context, id uuid.UUID, owner string, arg domain.UpdateMinistryParams) (domain.Ministry, error)
	Delete(ctx context.Context, id uuid.UUID, owner string) error
}

// MemberGetter verifies that a referenced leader exists for the owner.
type MemberGetter interface {
	Get(ctx context.Context, id uuid.UUID, owner string) (domain.Member, error)
}

// Service facilitates ministry service layer logic.
type Service struct {
	repo    Repo
	members MemberGetter
}

// New returns a ministry service.
func New(mr Repo, members MemberGetter) *Service {
	return &Service{
		repo:    mr,
		members: members,
	}
}

// Create creates and returns a ministry. The leader must be one of the
// owner's members.
func (s *Service) Create(ctx context.Context, arg domain.CreateMinistryParams) (domain.Ministry, error) {
	if _, err := s.members.Get(ctx, arg.LeaderID, arg.Owner); err != nil {
		if err == domain.ErrMemberNotFound {
			return domain.Ministry{}, domain.ErrLeaderNotFound
		}

		return domain.Ministry{}, err
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the owner's ministry with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID, owner string) (domain.Ministry, error) {
	return s.repo.Get(ctx, id, owner)
}

// List returns all of the owner's ministries ordered by name.
func (s *Service) List(ctx context.Context, owner string) ([]domain.Ministry, error) {
	return s.repo.List(ctx, owner)
}

// Update applies the non-nil fields of arg to the owner's ministry. A
// changed leader must be one of the owner's members.
func (s *Service) Update(ctx context.Context, id uuid.UUID, owner string, arg domain.UpdateMinistryParams) (domain.Ministry, error) {
	if arg.LeaderID != nil {
		if _, err := s.members.Get(ctx, *arg.LeaderID, owner); err != nil {
			if err == domain.ErrMemberNotFound {
				return domain.Ministry{}, domain.ErrLeaderNotFound
			}

			return domain.Ministry{}, err
		}
	}

	return s.repo.Update(ctx, id, owner, arg)
}

// Delete removes the owner's ministry with the given id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, owner string) error {
	return s.repo.Delete(ctx, id, owner)
}
