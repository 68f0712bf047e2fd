package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidSession       = errors.New("invalid or expired session")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// PasswordHasher is satisfied by auth.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// AuthService handles registration, login and the session lifecycle.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      PasswordHasher
	issuer      auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, hasher PasswordHasher, issuer auth.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		issuer:      issuer,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Password string
}

// Register creates a new user and returns its ID.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (uuid.UUID, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrFailedToHashPassword, err)
	}

	id, err := s.userRepo.Create(ctx, input.Username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return uuid.Nil, ErrUsernameTaken
		}
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials, opens a session and returns its token.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	creds, err := s.userRepo.FindCredentials(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := s.hasher.Verify(input.Password, creds.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(creds.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.sessionRepo.Create(ctx, creds.ID, token); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

// Logout expires the session for token. It does not check who owns it.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.Expire(ctx, token); err != nil {
		return fmt.Errorf("failed to expire session: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token to the user of its active session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	user, err := s.sessionRepo.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return user, nil
}

// DeleteAccount removes the user along with their sessions and todos.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
