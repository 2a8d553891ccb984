package metricsservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/errorspkg"
	"github.com/IanSalomao/churchflow/pkg/randompkg"
)

func TestMembers(t *testing.T) {
	owner := randompkg.Owner()

	yearStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	nextYearStart := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	seriesStart := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	active := true

	birthDates := []time.Time{
		time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC),  // 15
		time.Date(2007, time.June, 15, 12, 0, 0, 0, time.UTC),   // 18 to the hour
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),  // 25
		time.Date(1985, time.January, 1, 0, 0, 0, 0, time.UTC),  // 40
		time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC),  // 65
	}

	testCases := []struct {
		name          string
		buildStubs    func(store *MockStore)
		checkResponse func(t *testing.T, res domain.MembershipMetrics, err error)
	}{
		{
			name: "OK",
			buildStubs: func(store *MockStore) {
				store.EXPECT().
					CountMembers(gomock.Any(), owner, gomock.Nil()).
					Return(int64(10), nil)
				store.EXPECT().
					CountMembers(gomock.Any(), owner, &active).
					Return(int64(7), nil)
				store.EXPECT().
					ListMemberBirthDates(gomock.Any(), owner).
					Return(birthDates, nil)
				store.EXPECT().
					CountBaptizedMembers(gomock.Any(), owner).
					Return(int64(6), nil)
				store.EXPECT().
					CountPendingBaptism(gomock.Any(), owner).
					Return(int64(4), nil)
				store.EXPECT().
					CountBaptismsBetween(gomock.Any(), owner, yearStart, nextYearStart).
					Return(int64(2), nil)
				store.EXPECT().
					MonthlyMemberBuckets(gomock.Any(), owner, seriesStart).
					Return([]domain.MonthlyBucket{
						{Year: 2025, Month: time.May, Count: 2},
						{Year: 2025, Month: time.June, Count: 1},
					}, nil)
			},
			checkResponse: func(t *testing.T, res domain.MembershipMetrics, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(10), res.TotalMembers)
				require.Equal(t, int64(7), res.ActiveMembers)
				require.Equal(t, int64(3), res.InactiveMembers)
				require.Equal(t, res.TotalMembers, res.ActiveMembers+res.InactiveMembers)
				require.Equal(t, domain.AgeDistribution{
					Under18:    1,
					From18To30: 2,
					From31To50: 1,
					Above50:    1,
				}, res.AgeDistribution)
				require.Equal(t, domain.BaptismStats{
					TotalBaptized:    6,
					PendingBaptism:   4,
					BaptismsThisYear: 2,
				}, res.BaptismStats)
				require.Equal(t, []domain.MonthCount{
					{Month: "2025-05", NewMembers: 2},
					{Month: "2025-06", NewMembers: 1},
				}, res.MonthlyGrowth)
				require.Equal(t, int64(1), res.Growth.NewMembersMonth)
				require.InDelta(t, 10, res.Growth.PercentageGrowth, 0.001)
			},
		},
		{
			name: "NoMembers",
			buildStubs: func(store *MockStore) {
				store.EXPECT().
					CountMembers(gomock.Any(), owner, gomock.Nil()).
					Return(int64(0), nil)
				store.EXPECT().
					CountMembers(gomock.Any(), owner, &active).
					Return(int64(0), nil)
				store.EXPECT().
					ListMemberBirthDates(gomock.Any(), owner).
					Return(nil, nil)
				store.EXPECT().
					CountBaptizedMembers(gomock.Any(), owner).
					Return(int64(0), nil)
				store.EXPECT().
					CountPendingBaptism(gomock.Any(), owner).
					Return(int64(0), nil)
				store.EXPECT().
					CountBaptismsBetween(gomock.Any(), owner, yearStart, nextYearStart).
					Return(int64(0), nil)
				store.EXPECT().
					MonthlyMemberBuckets(gomock.Any(), owner, seriesStart).
					Return(nil, nil)
			},
			checkResponse: func(t *testing.T, res domain.MembershipMetrics, err error) {
				require.NoError(t, err)
				require.Zero(t, res.TotalMembers)
				require.Zero(t, res.InactiveMembers)
				require.Equal(t, domain.AgeDistribution{}, res.AgeDistribution)
				require.Zero(t, res.Growth.NewMembersMonth)
				require.Zero(t, res.Growth.PercentageGrowth)
				require.Empty(t, res.MonthlyGrowth)
			},
		},
		{
			name: "StoreError",
			buildStubs: func(store *MockStore) {
				store.EXPECT().
					ListMemberBirthDates(gomock.Any(), owner).
					Return(nil, errorspkg.ErrInternal)
				store.EXPECT().
					CountMembers(gomock.Any(), owner, gomock.Any()).
					Return(int64(0), nil).
					AnyTimes()
				store.EXPECT().
					CountBaptizedMembers(gomock.Any(), owner).
					Return(int64(0), nil).
					AnyTimes()
				store.EXPECT().
					CountPendingBaptism(gomock.Any(), owner).
					Return(int64(0), nil).
					AnyTimes()
				store.EXPECT().
					CountBaptismsBetween(gomock.Any(), owner, yearStart, nextYearStart).
					Return(int64(0), nil).
					AnyTimes()
				store.EXPECT().
					MonthlyMemberBuckets(gomock.Any(), owner, seriesStart).
					Return(nil, nil).
					AnyTimes()
			},
			checkResponse: func(t *testing.T, res domain.MembershipMetrics, err error) {
				require.ErrorIs(t, err, errorspkg.ErrInternal)
				require.ErrorContains(t, err, "age distribution")
				require.Empty(t, res)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			service, store := testService(t)
			tc.buildStubs(store)

			res, err := service.Members(context.Background(), owner)

			tc.checkResponse(t, res, err)
		})
	}
}
