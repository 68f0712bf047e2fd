package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/utils"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested row does not exist or is not
	// visible to the caller.
	ErrNotFound = errors.New("repository: not found")
	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = errors.New("repository: conflict")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user and returns its ID
	Create(ctx context.Context, username, passwordHash string) (uuid.UUID, error)

	// FindCredentials returns the ID and password hash for a username
	FindCredentials(ctx context.Context, username string) (*models.Credentials, error)

	// Delete removes the user together with their sessions and todos
	// within a single transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionRepository defines the interface for session data access
type SessionRepository interface {
	// Create inserts a session for token; its validity window is the schema default
	Create(ctx context.Context, userID uuid.UUID, token string) error

	// Expire ends the session identified by token. Unknown tokens are not an error.
	Expire(ctx context.Context, token string) error

	// FindUserByToken returns the owner of an active session
	FindUserByToken(ctx context.Context, token string) (*models.User, error)
}

// TodoRepository defines the interface for todo data access.
// Every operation is scoped to the owning user.
type TodoRepository interface {
	// Create inserts a todo and returns its ID
	Create(ctx context.Context, userID uuid.UUID, title string) (uuid.UUID, error)

	// Delete removes one todo owned by userID
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// ListByUser returns the user's todos, oldest first. A nil page returns all of them.
	ListByUser(ctx context.Context, userID uuid.UUID, page *utils.PaginationParams) ([]models.Todo, error)
}

// StatsRepository exposes database diagnostics
type StatsRepository interface {
	// ActiveQueries counts backend connections currently open on this database
	ActiveQueries(ctx context.Context) (int64, error)
}

// Repository bundles the repositories sharing one connection pool.
type Repository struct {
	Users    UserRepository
	Sessions SessionRepository
	Todos    TodoRepository
	Stats    StatsRepository
}

// New creates every repository on top of db. dbName scopes diagnostics.
func New(db *gorm.DB, dbName string) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Sessions: NewSessionRepository(db),
		Todos:    NewTodoRepository(db),
		Stats:    NewStatsRepository(db, dbName),
	}
}

// translateError maps driver errors onto the repository taxonomy.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isDuplicateKeyError(err):
		return ErrConflict
	default:
		return err
	}
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}

	return false
}
