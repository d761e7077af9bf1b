package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
)

type resourcesRepo struct {
	db *sql.DB
}

// Exists reports whether a resource of the given kind exists. Table and key
// column come from a fixed mapping, never from input.
func (r *resourcesRepo) Exists(ctx context.Context, kind domain.ResourceKind, key any) (bool, error) {
	var table, column string
	switch kind {
	case domain.ResourceArticle:
		table, column = "articles", "article_id"
	case domain.ResourceComment:
		table, column = "comments", "comment_id"
	case domain.ResourceTopic:
		table, column = "topics", "slug"
	case domain.ResourceUser:
		table, column = "users", "username"
	default:
		return false, fmt.Errorf("sqlite: unknown resource kind %q", kind)
	}

	var exists bool
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?);`, table, column),
		key,
	).Scan(&exists)
	if err != nil {
		return false, mapConstraint(err)
	}
	return exists, nil
}
