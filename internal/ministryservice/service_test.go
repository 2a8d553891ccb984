package ministryservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/errorspkg"
	"github.com/IanSalomao/churchflow/pkg/randompkg"
)

func TestCreate(t *testing.T) {
	owner := randompkg.Owner()
	leaderID := uuid.New()

	arg := domain.CreateMinistryParams{
		Owner:    owner,
		Name:     "Worship",
		Status:   true,
		LeaderID: leaderID,
	}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo, members *MockMemberGetter)
		checkResponse func(t *testing.T, res domain.Ministry, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo, members *MockMemberGetter) {
				members.EXPECT().
					Get(gomock.Any(), leaderID, owner).
					Return(domain.Member{ID: leaderID, Owner: owner}, nil)
				repo.EXPECT().
					Create(gomock.Any(), arg).
					Return(domain.Ministry{Owner: owner, Name: "Worship", LeaderID: leaderID}, nil)
			},
			checkResponse: func(t *testing.T, res domain.Ministry, err error) {
				require.NoError(t, err)
				require.Equal(t, leaderID, res.LeaderID)
			},
		},
		{
			name: "ErrLeaderNotFound",
			buildStubs: func(repo *MockRepo, members *MockMemberGetter) {
				members.EXPECT().
					Get(gomock.Any(), leaderID, owner).
					Return(domain.Member{}, domain.ErrMemberNotFound)
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, res domain.Ministry, err error) {
				require.ErrorIs(t, err, domain.ErrLeaderNotFound)
				require.Empty(t, res)
			},
		},
		{
			name: "LeaderLookupInternalError",
			buildStubs: func(repo *MockRepo, members *MockMemberGetter) {
				members.EXPECT().
					Get(gomock.Any(), leaderID, owner).
					Return(domain.Member{}, errorspkg.ErrInternal)
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, res domain.Ministry, err error) {
				require.ErrorIs(t, err, errorspkg.ErrInternal)
				require.Empty(t, res)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepo(ctrl)
			members := NewMockMemberGetter(ctrl)
			tc.buildStubs(repo, members)

			service := New(repo, members)

			res, err := service.Create(context.Background(), arg)

			tc.checkResponse(t, res, err)
		})
	}
}

func TestUpdate(t *testing.T) {
	owner := randompkg.Owner()
	id := uuid.New()
	newLeaderID := uuid.New()

	t.Run("ChangedLeaderIsVerified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepo(ctrl)
		members := NewMockMemberGetter(ctrl)

		arg := domain.UpdateMinistryParams{LeaderID: &newLeaderID}

		members.EXPECT().
			Get(gomock.Any(), newLeaderID, owner).
			Return(domain.Member{}, domain.ErrMemberNotFound)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Times(0)

		service := New(repo, members)

		_, err := service.Update(context.Background(), id, owner, arg)
		require.ErrorIs(t, err, domain.ErrLeaderNotFound)
	})

	t.Run("UnchangedLeaderSkipsLookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepo(ctrl)
		members := NewMockMemberGetter(ctrl)

		name := "Youth"
		arg := domain.UpdateMinistryParams{Name: &name}

		members.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Times(0)
		repo.EXPECT().
			Update(gomock.Any(), id, owner, arg).
			Return(domain.Ministry{ID: id, Owner: owner, Name: name}, nil)

		service := New(repo, members)

		got, err := service.Update(context.Background(), id, owner, arg)
		require.NoError(t, err)
		require.Equal(t, name, got.Name)
	})
}
