package usecase

import (
	"context"
	"errors"
	"testing"

	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCase(t *testing.T) (AuthUseCase, persistent.UserRepository) {
	repo := persistent.NewUserRepository(setupTestDB(t))
	return NewAuthUseCase(repo, bcrypt.MinCost, logger.New()), repo
}

func TestSignupAndLogin(t *testing.T) {
	uc, repo := newAuthUseCase(t)
	ctx := context.Background()

	user, err := uc.Signup(ctx, "admin", "admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.Password)

	stored, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)
	cost, err := bcrypt.Cost([]byte(stored.Password))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 10)

	_, err = uc.Signup(ctx, "other", "admin@example.com", "pw")
	assert.ErrorIs(t, err, ErrConflict)

	loggedIn, err := uc.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.Password)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, "admin", "admin@example.com", "s3cret")
	require.NoError(t, err)

	_, wrongPassword := uc.Login(ctx, "admin", "nope")
	_, unknownUser := uc.Login(ctx, "ghost", "s3cret")

	assert.ErrorIs(t, wrongPassword, ErrUnauthorized)
	assert.ErrorIs(t, unknownUser, ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuth_MissingFields(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, "admin", " ", "")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"email", "password"}, vErr.Fields)

	_, err = uc.Login(ctx, "", "pw")
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"username"}, vErr.Fields)
}
