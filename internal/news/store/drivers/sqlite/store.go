package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/marcusyoung/nc-news-api/internal/news/store"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	dsn string
}

// NewStore opens the database. FK enforcement must come in through the DSN
// (`_pragma=foreign_keys(1)`) so it applies to every pooled connection, not
// just the one a PRAGMA statement would run on.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Users() store.Users         { return &usersRepo{db: s.db} }
func (s *Store) Topics() store.Topics       { return &topicsRepo{db: s.db} }
func (s *Store) Articles() store.Articles   { return &articlesRepo{db: s.db} }
func (s *Store) Comments() store.Comments   { return &commentsRepo{db: s.db} }
func (s *Store) Resources() store.Resources { return &resourcesRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return mapConstraint(err)
}

// mapConstraint folds sqlite extended result codes into the driver-agnostic
// constraint-violation sentinels.
func mapConstraint(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}

	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return store.ErrNotNullViolation
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return store.ErrForeignKeyViolation
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return store.ErrUniqueViolation
	case sqlite3.SQLITE_MISMATCH:
		return store.ErrInvalidTextRepresentation
	default:
		return err
	}
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}
