package transactionservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/errorspkg"
	"github.com/IanSalomao/churchflow/pkg/randompkg"
)

func TestCreate(t *testing.T) {
	owner := randompkg.Owner()
	memberID := uuid.New()
	ministryID := uuid.New()
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		arg           domain.CreateTransactionParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(t *testing.T, res domain.Transaction, err error)
	}{
		{
			name: "OK",
			arg: domain.CreateTransactionParams{
				Owner:      owner,
				Value:      1500,
				Date:       date,
				Categories: []string{"tithe"},
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.AssignableToTypeOf(domain.CreateTransactionParams{})).
					Return(domain.Transaction{Owner: owner, Value: 1500}, nil)
			},
			checkResponse: func(t *testing.T, res domain.Transaction, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(1500), res.Value)
			},
		},
		{
			name: "NegativeValueAllowed",
			arg: domain.CreateTransactionParams{
				Owner:      owner,
				Value:      -700,
				Date:       date,
				Categories: []string{"maintenance"},
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.AssignableToTypeOf(domain.CreateTransactionParams{})).
					Return(domain.Transaction{Owner: owner, Value: -700}, nil)
			},
			checkResponse: func(t *testing.T, res domain.Transaction, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(-700), res.Value)
			},
		},
		{
			name: "ErrZeroValue",
			arg: domain.CreateTransactionParams{
				Owner:      owner,
				Value:      0,
				Date:       date,
				Categories: []string{"tithe"},
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, res domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrZeroValue)
				require.Empty(t, res)
			},
		},
		{
			name: "ErrAmbiguousReference",
			arg: domain.CreateTransactionParams{
				Owner:      owner,
				Value:      1000,
				Date:       date,
				Categories: []string{"events"},
				MemberID:   &memberID,
				MinistryID: &ministryID,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, res domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrAmbiguousReference)
				require.Empty(t, res)
			},
		},
		{
			name: "RepoInternalError",
			arg: domain.CreateTransactionParams{
				Owner:      owner,
				Value:      1000,
				Date:       date,
				Categories: []string{"tithe"},
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(domain.Transaction{}, errorspkg.ErrInternal)
			},
			checkResponse: func(t *testing.T, res domain.Transaction, err error) {
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
			tc.buildStubs(repo)

			service := New(repo)

			res, err := service.Create(context.Background(), tc.arg)

			tc.checkResponse(t, res, err)
		})
	}
}

func TestDelete(t *testing.T) {
	owner := randompkg.Owner()
	id := uuid.New()

	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	repo.EXPECT().
		Delete(gomock.Any(), id, owner).
		Return(domain.ErrTransactionNotFound)

	service := New(repo)

	err := service.Delete(context.Background(), id, owner)
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
