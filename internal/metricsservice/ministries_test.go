package metricsservice

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

func TestMinistries(t *testing.T) {
	owner := randompkg.Owner()

	worshipID := uuid.New()
	youthID := uuid.New()
	missionsID := uuid.New()

	active := true

	testCases := []struct {
		name          string
		buildStubs    func(store *MockStore)
		checkResponse func(t *testing.T, res domain.MinistryMetrics, err error)
	}{
		{
			name: "OK",
			buildStubs: func(store *MockStore) {
				store.EXPECT().
					CountMinistries(gomock.Any(), owner, gomock.Nil()).
					Return(int64(3), nil)
				store.EXPECT().
					CountMinistries(gomock.Any(), owner, &active).
					Return(int64(2), nil)
				store.EXPECT().
					MinistryActivity(gomock.Any(), owner).
					Return([]domain.MinistryActivity{
						{
							MinistryID:       worshipID,
							MinistryName:     "Worship",
							Leader:           "Alice Johnson",
							Total:            30_000,
							TransactionCount: 2,
						},
						{
							MinistryID:   youthID,
							MinistryName: "Youth",
							Leader:       "Bob Smith",
						},
					}, nil)
				store.EXPECT().
					MinistryTotals(gomock.Any(), owner).
					Return([]domain.MinistryTotal{
						{MinistryID: worshipID, Name: "Worship", Total: 30_000},
						{MinistryID: missionsID, Name: "Missions", Total: 20_000},
					}, nil)
			},
			checkResponse: func(t *testing.T, res domain.MinistryMetrics, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(3), res.TotalMinistries)
				require.Equal(t, int64(2), res.ActiveMinistries)
				require.Equal(t, int64(1), res.InactiveMinistries)
				require.Equal(t, []domain.MinistryBreakdown{
					{
						MinistryName:      "Worship",
						Leader:            "Alice Johnson",
						TotalTransactions: "300,00",
						TransactionCount:  2,
					},
					{
						MinistryName:      "Youth",
						Leader:            "Bob Smith",
						TotalTransactions: "0,00",
					},
				}, res.MembersDistribution)
				require.Equal(t, "500,00", res.FinancialSummary.TotalSpent)
				require.Equal(t, map[string]string{
					worshipID.String():  "300,00",
					missionsID.String(): "200,00",
				}, res.FinancialSummary.ByMinistry)
			},
		},
		{
			name: "NoMinistries",
			buildStubs: func(store *MockStore) {
				store.EXPECT().
					CountMinistries(gomock.Any(), owner, gomock.Nil()).
					Return(int64(0), nil)
				store.EXPECT().
					CountMinistries(gomock.Any(), owner, &active).
					Return(int64(0), nil)
				store.EXPECT().
					MinistryActivity(gomock.Any(), owner).
					Return(nil, nil)
				store.EXPECT().
					MinistryTotals(gomock.Any(), owner).
					Return(nil, nil)
			},
			checkResponse: func(t *testing.T, res domain.MinistryMetrics, err error) {
				require.NoError(t, err)
				require.Zero(t, res.TotalMinistries)
				require.Empty(t, res.MembersDistribution)
				require.Equal(t, "0,00", res.FinancialSummary.TotalSpent)
				require.Empty(t, res.FinancialSummary.ByMinistry)
			},
		},
		{
			name: "StoreError",
			buildStubs: func(store *MockStore) {
				store.EXPECT().
					MinistryActivity(gomock.Any(), owner).
					Return(nil, errorspkg.ErrInternal)
				store.EXPECT().
					CountMinistries(gomock.Any(), owner, gomock.Any()).
					Return(int64(0), nil).
					AnyTimes()
				store.EXPECT().
					MinistryTotals(gomock.Any(), owner).
					Return(nil, nil).
					AnyTimes()
			},
			checkResponse: func(t *testing.T, res domain.MinistryMetrics, err error) {
				require.ErrorIs(t, err, errorspkg.ErrInternal)
				require.ErrorContains(t, err, "ministry distribution")
				require.Empty(t, res)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			service, store := testService(t)
			tc.buildStubs(store)

			res, err := service.Ministries(context.Background(), owner)

			tc.checkResponse(t, res, err)
		})
	}
}
