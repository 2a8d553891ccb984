package metricsservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/randompkg"
)

// With the clock pinned and no writes between the calls, reading the
// same report twice must hit the store again and produce identical
// results.
func TestRepeatedReadsAreStable(t *testing.T) {
	owner := randompkg.Owner()

	t.Run("Financial", func(t *testing.T) {
		service, store := testService(t)

		store.EXPECT().
			SumTransactions(gomock.Any(), owner, gomock.Nil(), gomock.Nil()).
			Times(2).
			Return(int64(120_000), nil)
		store.EXPECT().
			SumTransactionsByCategory(gomock.Any(), owner, gomock.Nil(), gomock.Nil()).
			Times(2).
			Return([]domain.CategoryTotal{{Category: "tithe", Total: 80_000, Count: 4}}, nil)
		store.EXPECT().
			MonthlyTransactionBuckets(gomock.Any(), owner, gomock.Any()).
			Times(2).
			Return([]domain.MonthlyBucket{{Year: 2025, Month: time.June, Count: 3, Total: 70_000}}, nil)
		store.EXPECT().
			SumTransactionsBetween(gomock.Any(), owner, gomock.Any(), gomock.Any()).
			Times(4).
			Return(int64(70_000), nil)

		first, err := service.Financial(context.Background(), owner, nil, nil)
		require.NoError(t, err)

		second, err := service.Financial(context.Background(), owner, nil, nil)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("Members", func(t *testing.T) {
		service, store := testService(t)

		store.EXPECT().
			CountMembers(gomock.Any(), owner, gomock.Any()).
			Times(4).
			Return(int64(40), nil)
		store.EXPECT().
			ListMemberBirthDates(gomock.Any(), owner).
			Times(2).
			Return([]time.Time{time.Date(1990, time.March, 1, 0, 0, 0, 0, time.UTC)}, nil)
		store.EXPECT().
			CountBaptizedMembers(gomock.Any(), owner).
			Times(2).
			Return(int64(25), nil)
		store.EXPECT().
			CountPendingBaptism(gomock.Any(), owner).
			Times(2).
			Return(int64(15), nil)
		store.EXPECT().
			CountBaptismsBetween(gomock.Any(), owner, gomock.Any(), gomock.Any()).
			Times(2).
			Return(int64(5), nil)
		store.EXPECT().
			MonthlyMemberBuckets(gomock.Any(), owner, gomock.Any()).
			Times(2).
			Return([]domain.MonthlyBucket{{Year: 2025, Month: time.June, Count: 4}}, nil)

		first, err := service.Members(context.Background(), owner)
		require.NoError(t, err)

		second, err := service.Members(context.Background(), owner)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("Ministries", func(t *testing.T) {
		service, store := testService(t)

		store.EXPECT().
			CountMinistries(gomock.Any(), owner, gomock.Any()).
			Times(4).
			Return(int64(5), nil)
		store.EXPECT().
			MinistryActivity(gomock.Any(), owner).
			Times(2).
			Return([]domain.MinistryActivity{
				{MinistryName: "Worship", Leader: "Alice Johnson", Total: 30_000, TransactionCount: 2},
			}, nil)
		store.EXPECT().
			MinistryTotals(gomock.Any(), owner).
			Times(2).
			Return([]domain.MinistryTotal{{Name: "Worship", Total: 30_000}}, nil)

		first, err := service.Ministries(context.Background(), owner)
		require.NoError(t, err)

		second, err := service.Ministries(context.Background(), owner)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("Dashboard", func(t *testing.T) {
		service, store := testService(t)

		store.EXPECT().
			CountMembers(gomock.Any(), owner, gomock.Any()).
			Times(2).
			Return(int64(40), nil)
		store.EXPECT().
			CountMinistries(gomock.Any(), owner, gomock.Any()).
			Times(2).
			Return(int64(5), nil)
		store.EXPECT().
			CountMembersCreatedSince(gomock.Any(), owner, gomock.Any()).
			Times(2).
			Return(int64(3), nil)
		store.EXPECT().
			CountTransactionsSince(gomock.Any(), owner, gomock.Any()).
			Times(2).
			Return(int64(12), nil)
		store.EXPECT().
			CountMinistriesUpdatedSince(gomock.Any(), owner, gomock.Any()).
			Times(2).
			Return(int64(2), nil)
		store.EXPECT().
			SumTransactionsBetween(gomock.Any(), owner, gomock.Any(), gomock.Any()).
			Times(2).
			Return(int64(50_000), nil)
		store.EXPECT().
			SumInflowsBetween(gomock.Any(), owner, gomock.Any(), gomock.Any()).
			Times(2).
			Return(int64(80_000), nil)
		store.EXPECT().
			SumOutflowsBetween(gomock.Any(), owner, gomock.Any(), gomock.Any()).
			Times(2).
			Return(int64(-30_000), nil)
		store.EXPECT().
			TopCategories(gomock.Any(), owner, topLimit).
			Times(2).
			Return([]domain.CategoryTotal{{Category: "tithe", Total: 50_000, Count: 3}}, nil)
		store.EXPECT().
			TopMinistries(gomock.Any(), owner, topLimit).
			Times(2).
			Return([]domain.MinistryTotal{{Name: "Worship", Total: 30_000}}, nil)

		first, err := service.Dashboard(context.Background(), owner)
		require.NoError(t, err)

		second, err := service.Dashboard(context.Background(), owner)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}
