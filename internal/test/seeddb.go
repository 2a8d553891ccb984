// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/internal/memberrepo"
	"github.com/IanSalomao/churchflow/internal/ministryrepo"
	"github.com/IanSalomao/churchflow/internal/transactionrepo"
	"github.com/IanSalomao/churchflow/internal/userrepo"
	"github.com/IanSalomao/churchflow/pkg/dbpkg"
	"github.com/IanSalomao/churchflow/pkg/passpkg"
	"github.com/IanSalomao/churchflow/pkg/randompkg"
)

// SeedUser creates a random User inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		FullName:       randompkg.String(10),
		Email:          randompkg.Email(),
	}

	userRepo := userrepo.NewRepoPGS(tx)
	user, err := userRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedMember creates a Member with the given birth date inside a test transaction.
func SeedMember(t *testing.T, tx dbpkg.SQLInterface, owner string, birthDate time.Time) domain.Member {
	t.Helper()

	arg := domain.CreateMemberParams{
		Owner:     owner,
		Name:      randompkg.String(10),
		Email:     randompkg.Email(),
		BirthDate: birthDate,
		Status:    true,
	}

	memberRepo := memberrepo.NewRepoPGS(tx)
	member, err := memberRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("memberRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return member
}

// SeedMinistry creates a Ministry led by the given member inside a test transaction.
func SeedMinistry(t *testing.T, tx dbpkg.SQLInterface, owner string, leaderID uuid.UUID) domain.Ministry {
	t.Helper()

	arg := domain.CreateMinistryParams{
		Owner:    owner,
		Name:     randompkg.String(10),
		Status:   true,
		LeaderID: leaderID,
	}

	ministryRepo := ministryrepo.NewRepoPGS(tx)
	ministry, err := ministryRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("ministryRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return ministry
}

// SeedTransaction creates a Transaction with the given value, date and
// categories inside a test transaction.
func SeedTransaction(t *testing.T, tx dbpkg.SQLInterface, owner string, value int64, date time.Time, categories []string) domain.Transaction {
	t.Helper()

	arg := domain.CreateTransactionParams{
		Owner:      owner,
		Value:      value,
		Date:       date,
		Categories: categories,
	}

	transactionRepo := transactionrepo.NewRepoPGS(tx)
	transaction, err := transactionRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("transactionRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return transaction
}

// SeedMinistryTransaction creates a Transaction linked to a ministry
// inside a test transaction.
func SeedMinistryTransaction(t *testing.T, tx dbpkg.SQLInterface, owner string, value int64, date time.Time, ministryID uuid.UUID) domain.Transaction {
	t.Helper()

	arg := domain.CreateTransactionParams{
		Owner:      owner,
		Value:      value,
		Date:       date,
		Categories: []string{randompkg.Category()},
		MinistryID: &ministryID,
	}

	transactionRepo := transactionrepo.NewRepoPGS(tx)
	transaction, err := transactionRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("transactionRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return transaction
}
