package userservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/IanSalomao/churchflow/internal/domain"
	"github.com/IanSalomao/churchflow/pkg/passpkg"
	"github.com/IanSalomao/churchflow/pkg/randompkg"
)

func testService(t *testing.T) (*Service, *MockRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)

	return New(repo), repo
}

func TestCreate(t *testing.T) {
	username := randompkg.Owner()
	password := randompkg.String(10)
	fullname := randompkg.Owner()
	email := randompkg.Email()

	t.Run("OK", func(t *testing.T) {
		service, repo := testService(t)

		var created domain.CreateUserParams

		repo.EXPECT().
			Create(gomock.Any(), gomock.AssignableToTypeOf(domain.CreateUserParams{})).
			Times(1).
			DoAndReturn(func(_ context.Context, arg domain.CreateUserParams) (domain.User, error) {
				created = arg

				return domain.User{
					Username:       arg.Username,
					HashedPassword: arg.HashedPassword,
					FullName:       arg.FullName,
					Email:          arg.Email,
				}, nil
			})

		user, err := service.Create(context.Background(), username, password, fullname, email)
		require.NoError(t, err)
		require.Equal(t, username, user.Username)
		require.Equal(t, fullname, user.FullName)
		require.Equal(t, email, user.Email)

		require.NotEqual(t, password, created.HashedPassword)
		require.NoError(t, passpkg.Check(password, created.HashedPassword))
	})

	t.Run("UsernameAlreadyExists", func(t *testing.T) {
		service, repo := testService(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.AssignableToTypeOf(domain.CreateUserParams{})).
			Times(1).
			Return(domain.User{}, domain.ErrUsernameAlreadyExists)

		_, err := service.Create(context.Background(), username, password, fullname, email)
		require.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
	})
}

func TestCheckPassword(t *testing.T) {
	username := randompkg.Owner()
	password := randompkg.String(10)

	hashed, err := passpkg.Hash(password)
	require.NoError(t, err)

	stored := domain.User{
		Username:       username,
		HashedPassword: hashed,
		FullName:       randompkg.Owner(),
		Email:          randompkg.Email(),
	}

	t.Run("OK", func(t *testing.T) {
		service, repo := testService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Eq(username)).
			Times(1).
			Return(stored, nil)

		user, err := service.CheckPassword(context.Background(), username, password)
		require.NoError(t, err)
		require.Equal(t, username, user.Username)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		service, repo := testService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Eq(username)).
			Times(1).
			Return(domain.User{}, domain.ErrUserNotFound)

		_, err := service.CheckPassword(context.Background(), username, password)
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		service, repo := testService(t)

		repo.EXPECT().
			Get(gomock.Any(), gomock.Eq(username)).
			Times(1).
			Return(stored, nil)

		_, err := service.CheckPassword(context.Background(), username, "wrong password")
		require.ErrorIs(t, err, domain.ErrWrongPassword)
	})
}
