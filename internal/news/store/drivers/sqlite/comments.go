package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
)

type commentsRepo struct {
	db *sql.DB
}

const commentColumns = `comment_id, article_id, author, body, votes, created_at`

func scanComment(row interface{ Scan(...any) error }) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	return c, err
}

func (r *commentsRepo) GetCommentByID(ctx context.Context, id int64) (domain.Comment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+commentColumns+` FROM comments WHERE comment_id = ?;`, id)

	c, err := scanComment(row)
	if err != nil {
		return domain.Comment{}, mapNotFound(err)
	}
	return c, nil
}

func (r *commentsRepo) ListCommentsByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+commentColumns+` FROM comments
		WHERE article_id = ?
		ORDER BY created_at DESC, comment_id DESC;`, articleID)
	if err != nil {
		return nil, mapConstraint(err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentsRepo) CreateComment(ctx context.Context, articleID int64, author string, body *string) (domain.Comment, error) {
	now := time.Now().UTC()

	// body passes through as NULL when absent so the engine's NOT NULL
	// constraint is the thing that rejects it.
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO comments (article_id, author, body, votes, created_at)
		VALUES (?, ?, ?, 0, ?)
		RETURNING `+commentColumns+`;`,
		articleID, author, mapOptionalString(body), now)

	c, err := scanComment(row)
	if err != nil {
		return domain.Comment{}, mapNotFound(err)
	}
	return c, nil
}

func (r *commentsRepo) DeleteComment(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = ?;`, id)
	if err != nil {
		return mapConstraint(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Lost a race with another delete, or the id never existed.
		return store.ErrNotFound
	}
	return nil
}

func (r *commentsRepo) UpdateCommentVotes(ctx context.Context, id int64, delta int) (domain.Comment, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE comments SET votes = votes + ? WHERE comment_id = ?
		RETURNING `+commentColumns+`;`, delta, id)

	c, err := scanComment(row)
	if err != nil {
		return domain.Comment{}, mapNotFound(err)
	}
	return c, nil
}
