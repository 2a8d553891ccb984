//go:build integration

package metricsrepo

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/internal/memberrepo"
	"github.com/IanSalomao/churchflow/internal/test"
	"github.com/IanSalomao/churchflow/pkg/configpkg"
	"github.com/IanSalomao/churchflow/pkg/dbpkg"
)

var config configpkg.Config

func memberRepoUpdate(t *testing.T, tx dbpkg.SQLInterface, id uuid.UUID, owner string, baptism time.Time) {
	t.Helper()

	arg := domain.UpdateMemberParams{BaptismDate: &baptism}

	if _, err := memberrepo.NewRepoPGS(tx).Update(context.Background(), id, owner, arg); err != nil {
		t.Fatalf("memberRepo.Update(context.Background(), %v, %v, %+v) returned error: %v", id, owner, arg, err)
	}
}

func TestMain(m *testing.M) {
	var err error

	config, err = configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	os.Exit(m.Run())
}

func TestSumTransactionsByCategoryCountsFullValue(t *testing.T) {
	tx := dbpkg.SetupTX(t, config.DBDriver, config.DBSource)
	repo := NewRepoPGS(tx)

	user := test.SeedUser(t, tx)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	test.SeedTransaction(t, tx, user.Username, 800, date, []string{"tithe", "missions"})
	test.SeedTransaction(t, tx, user.Username, 300, date, []string{"tithe"})

	got, err := repo.SumTransactionsByCategory(context.Background(), user.Username, nil, nil)
	require.NoError(t, err)

	// A transaction tagged with several categories counts its full value
	// in each, so category totals may sum to more than the overall total.
	require.Equal(t, []domain.CategoryTotal{
		{Category: "tithe", Total: 1100, Count: 2},
		{Category: "missions", Total: 800, Count: 1},
	}, got)

	total, err := repo.SumTransactions(context.Background(), user.Username, nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1100), total)
}

func TestSumTransactionsBoundsAreInclusive(t *testing.T) {
	tx := dbpkg.SetupTX(t, config.DBDriver, config.DBSource)
	repo := NewRepoPGS(tx)

	user := test.SeedUser(t, tx)

	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	test.SeedTransaction(t, tx, user.Username, 100, from, []string{"tithe"})
	test.SeedTransaction(t, tx, user.Username, 200, to, []string{"tithe"})
	test.SeedTransaction(t, tx, user.Username, 400, to.Add(time.Hour), []string{"tithe"})

	got, err := repo.SumTransactions(context.Background(), user.Username, &from, &to)
	require.NoError(t, err)
	require.Equal(t, int64(300), got)
}

func TestFlowSumsSplitBySign(t *testing.T) {
	tx := dbpkg.SetupTX(t, config.DBDriver, config.DBSource)
	repo := NewRepoPGS(tx)

	user := test.SeedUser(t, tx)

	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	date := from.AddDate(0, 0, 10)

	test.SeedTransaction(t, tx, user.Username, 800, date, []string{"tithe"})
	test.SeedTransaction(t, tx, user.Username, -300, date, []string{"maintenance"})

	inflows, err := repo.SumInflowsBetween(context.Background(), user.Username, from, to)
	require.NoError(t, err)
	require.Equal(t, int64(800), inflows)

	outflows, err := repo.SumOutflowsBetween(context.Background(), user.Username, from, to)
	require.NoError(t, err)
	require.Equal(t, int64(-300), outflows)

	net, err := repo.SumTransactionsBetween(context.Background(), user.Username, from, to)
	require.NoError(t, err)
	require.Equal(t, int64(500), net)
}

func TestTopCategoriesSkipsNonPositiveValues(t *testing.T) {
	tx := dbpkg.SetupTX(t, config.DBDriver, config.DBSource)
	repo := NewRepoPGS(tx)

	user := test.SeedUser(t, tx)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	test.SeedTransaction(t, tx, user.Username, 500, date, []string{"tithe"})
	test.SeedTransaction(t, tx, user.Username, 200, date, []string{"offering"})
	test.SeedTransaction(t, tx, user.Username, -900, date, []string{"maintenance"})

	got, err := repo.TopCategories(context.Background(), user.Username, 5)
	require.NoError(t, err)
	require.Equal(t, []domain.CategoryTotal{
		{Category: "tithe", Total: 500, Count: 1},
		{Category: "offering", Total: 200, Count: 1},
	}, got)
}

func TestMonthlyTransactionBucketsAscending(t *testing.T) {
	tx := dbpkg.SetupTX(t, config.DBDriver, config.DBSource)
	repo := NewRepoPGS(tx)

	user := test.SeedUser(t, tx)

	test.SeedTransaction(t, tx, user.Username, 100,
		time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC), []string{"tithe"})
	test.SeedTransaction(t, tx, user.Username, 200,
		time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), []string{"tithe"})
	test.SeedTransaction(t, tx, user.Username, 300,
		time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), []string{"tithe"})

	since := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)

	got, err := repo.MonthlyTransactionBuckets(context.Background(), user.Username, since)
	require.NoError(t, err)
	require.Equal(t, []domain.MonthlyBucket{
		{Year: 2025, Month: time.January, Count: 2, Total: 500},
		{Year: 2025, Month: time.February, Count: 1, Total: 100},
	}, got)
}

func TestMinistryActivityIncludesInactiveMinistries(t *testing.T) {
	tx := dbpkg.SetupTX(t, config.DBDriver, config.DBSource)
	repo := NewRepoPGS(tx)

	user := test.SeedUser(t, tx)
	birthDate := time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC)

	leader := test.SeedMember(t, tx, user.Username, birthDate)
	funded := test.SeedMinistry(t, tx, user.Username, leader.ID)
	unfunded := test.SeedMinistry(t, tx, user.Username, leader.ID)

	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	test.SeedMinistryTransaction(t, tx, user.Username, 700, date, funded.ID)

	got, err := repo.MinistryActivity(context.Background(), user.Username)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := make(map[string]domain.MinistryActivity, len(got))
	for _, a := range got {
		require.Equal(t, leader.Name, a.Leader)
		byID[a.MinistryID.String()] = a
	}

	require.Equal(t, int64(700), byID[funded.ID.String()].Total)
	require.Equal(t, int64(1), byID[funded.ID.String()].TransactionCount)

	// A ministry without transactions still shows up with zero totals.
	require.Equal(t, int64(0), byID[unfunded.ID.String()].Total)
	require.Equal(t, int64(0), byID[unfunded.ID.String()].TransactionCount)
}

func TestCountBaptismsBetweenHalfOpen(t *testing.T) {
	tx := dbpkg.SetupTX(t, config.DBDriver, config.DBSource)
	repo := NewRepoPGS(tx)

	user := test.SeedUser(t, tx)
	birthDate := time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC)

	member := test.SeedMember(t, tx, user.Username, birthDate)

	baptism := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	memberRepoUpdate(t, tx, member.ID, user.Username, baptism)

	yearStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	nextYearStart := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	count, err := repo.CountBaptismsBetween(context.Background(), user.Username, yearStart, nextYearStart)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	count, err = repo.CountBaptismsBetween(context.Background(), user.Username, nextYearStart,
		nextYearStart.AddDate(1, 0, 0))
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}
