package service

import (
	"testing"

	"go-warehouse-ledger/internal/model"
	"go-warehouse-ledger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo repository.UserRepository, active bool) *model.User {
	t.Helper()
	user := &model.User{
		Email:    "clerk@example.com",
		FullName: "Warehouse Clerk",
		IsActive: active,
	}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, repo.Create(user))
	return user
}

func TestLogin(t *testing.T) {
	repo := repository.NewUserRepo(newTestDB(t))
	user := seedUser(t, repo, true)
	svc := NewAuthService(repo)

	resp, err := svc.Login("clerk@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "Warehouse Clerk", resp.User.FullName)

	validated, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, validated.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := repository.NewUserRepo(newTestDB(t))
	seedUser(t, repo, true)
	svc := NewAuthService(repo)

	_, err := svc.Login("clerk@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := repository.NewUserRepo(newTestDB(t))
	seedUser(t, repo, false)
	svc := NewAuthService(repo)

	_, err := svc.Login("clerk@example.com", "secret123")
	require.ErrorIs(t, err, ErrUserInactive)
}

func TestResetPassword(t *testing.T) {
	repo := repository.NewUserRepo(newTestDB(t))
	seedUser(t, repo, true)
	svc := NewAuthService(repo)

	require.ErrorIs(t, svc.ResetPassword("clerk@example.com", "wrong", "newpass456"), ErrWrongPassword)

	require.NoError(t, svc.ResetPassword("clerk@example.com", "secret123", "newpass456"))

	_, err := svc.Login("clerk@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("clerk@example.com", "newpass456")
	require.NoError(t, err)
}
