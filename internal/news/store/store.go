package store

import (
	"context"
	"errors"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
)

var (
	ErrNotFound = errors.New("store: not found")

	// Constraint-violation classes. Drivers fold their engine-specific
	// error codes into these so the error normalizer can map each class to
	// its public message without knowing the storage engine.
	ErrInvalidTextRepresentation = errors.New("store: invalid_text_representation")
	ErrNotNullViolation          = errors.New("store: not_null_violation")
	ErrForeignKeyViolation       = errors.New("store: foreign_key_violation")
	ErrUniqueViolation           = errors.New("store: unique_violation")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Topics() Topics
	Articles() Articles
	Comments() Comments
	Resources() Resources

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByUsername is used during login and identity checks.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// ListUsers returns all users (public fields populated, hash included
	// for internal callers; handlers decide what to serialize).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user. A duplicate username surfaces as
	// ErrUniqueViolation.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)
}

type Topics interface {
	ListTopics(ctx context.Context) ([]domain.Topic, error)

	CreateTopic(ctx context.Context, t domain.Topic) error
}

type Articles interface {
	GetArticleByID(ctx context.Context, id int64) (domain.Article, error)

	// ListArticles returns articles newest first. An empty topic means no
	// topic filter.
	ListArticles(ctx context.Context, topic string) ([]domain.Article, error)

	CreateArticle(ctx context.Context, a domain.Article) (domain.Article, error)

	// UpdateArticleVotes applies a vote delta and returns the updated row.
	UpdateArticleVotes(ctx context.Context, id int64, delta int) (domain.Article, error)
}

type Comments interface {
	GetCommentByID(ctx context.Context, id int64) (domain.Comment, error)

	// ListCommentsByArticle returns an article's comments newest first.
	ListCommentsByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)

	// CreateComment inserts a comment. body is nullable on purpose: an
	// absent body must reach the engine and surface as ErrNotNullViolation.
	CreateComment(ctx context.Context, articleID int64, author string, body *string) (domain.Comment, error)

	// DeleteComment removes a comment. Deleting an id that no longer
	// exists returns ErrNotFound (a second concurrent delete surfaces
	// "not found" rather than corrupting state).
	DeleteComment(ctx context.Context, id int64) error

	// UpdateCommentVotes applies a vote delta and returns the updated row.
	UpdateCommentVotes(ctx context.Context, id int64, delta int) (domain.Comment, error)
}

// Resources is the polymorphic existence check, parameterized by resource
// kind instead of one bespoke query per entity.
type Resources interface {
	Exists(ctx context.Context, kind domain.ResourceKind, key any) (bool, error)
}
