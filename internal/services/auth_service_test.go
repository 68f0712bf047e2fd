package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/testutil"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db      *gorm.DB
	repo    *repository.Repository
	service *AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db := testutil.NewDB(t)
	repo := repository.New(db, "todo")
	service := NewAuthService(repo.Users, repo.Sessions, auth.NewPasswordHasher(bcrypt.MinCost), auth.NewOpaqueIssuer())

	return authTestEnv{db: db, repo: repo, service: service}
}

type failingHasher struct {
	hashErr   error
	verifyErr error
}

func (f failingHasher) Hash(string) (string, error) {
	return "", f.hashErr
}

func (f failingHasher) Verify(string, string) (bool, error) {
	return false, f.verifyErr
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	env := setupAuthTestEnv(t)
	ctx := context.Background()

	id, err := env.service.Register(ctx, RegisterInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	var stored string
	require.NoError(t, env.db.Table("users").Where("id = ?", id).Pluck("password_hash", &stored).Error)
	assert.NotEqual(t, "hunter2", stored)

	token, err := env.service.Login(ctx, LoginInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := env.service.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	env := setupAuthTestEnv(t)
	ctx := context.Background()

	_, err := env.service.Register(ctx, RegisterInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	_, err = env.service.Register(ctx, RegisterInput{Username: "alice", Password: "different"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_LoginFailuresAreUniform(t *testing.T) {
	env := setupAuthTestEnv(t)
	ctx := context.Background()

	_, err := env.service.Register(ctx, RegisterInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	_, err = env.service.Login(ctx, LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.service.Login(ctx, LoginInput{Username: "mallory", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Equal(t, int64(0), testutil.Count(t, env.db, "sessions", ""))
}

func TestAuthService_TwoLoginsTwoSessions(t *testing.T) {
	env := setupAuthTestEnv(t)
	ctx := context.Background()

	_, err := env.service.Register(ctx, RegisterInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	first, err := env.service.Login(ctx, LoginInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	second, err := env.service.Login(ctx, LoginInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	require.NoError(t, env.service.Logout(ctx, first))

	_, err = env.service.Authenticate(ctx, first)
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = env.service.Authenticate(ctx, second)
	assert.NoError(t, err)

	// logging out twice changes nothing
	require.NoError(t, env.service.Logout(ctx, first))
	_, err = env.service.Authenticate(ctx, second)
	assert.NoError(t, err)
}

func TestAuthService_VerifierFailureIsNotInvalidCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)
	ctx := context.Background()

	_, err := env.service.Register(ctx, RegisterInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	broken := errors.New("hash corrupted")
	service := NewAuthService(env.repo.Users, env.repo.Sessions, failingHasher{verifyErr: broken}, auth.NewOpaqueIssuer())

	_, err = service.Login(ctx, LoginInput{Username: "alice", Password: "hunter2"})
	assert.ErrorIs(t, err, broken)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_HashFailure(t *testing.T) {
	env := setupAuthTestEnv(t)
	service := NewAuthService(env.repo.Users, env.repo.Sessions, failingHasher{hashErr: errors.New("rng")}, auth.NewOpaqueIssuer())

	_, err := service.Register(context.Background(), RegisterInput{Username: "alice", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrFailedToHashPassword)
	assert.Equal(t, int64(0), testutil.Count(t, env.db, "users", ""))
}

func TestAuthService_DeleteAccount(t *testing.T) {
	env := setupAuthTestEnv(t)
	ctx := context.Background()

	id, err := env.service.Register(ctx, RegisterInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	token, err := env.service.Login(ctx, LoginInput{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	require.NoError(t, env.service.DeleteAccount(ctx, id))

	_, err = env.service.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = env.service.Login(ctx, LoginInput{Username: "alice", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
