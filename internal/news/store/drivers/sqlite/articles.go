package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
)

type articlesRepo struct {
	db *sql.DB
}

const articleColumns = `article_id, title, topic, author, body, votes, created_at`

func scanArticle(row interface{ Scan(...any) error }) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.Votes, &a.CreatedAt)
	return a, err
}

func (r *articlesRepo) GetArticleByID(ctx context.Context, id int64) (domain.Article, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+articleColumns+` FROM articles WHERE article_id = ?;`, id)

	a, err := scanArticle(row)
	if err != nil {
		return domain.Article{}, mapNotFound(err)
	}
	return a, nil
}

func (r *articlesRepo) ListArticles(ctx context.Context, topic string) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	args := []any{}
	if topic != "" {
		query += ` WHERE topic = ?`
		args = append(args, topic)
	}
	query += ` ORDER BY created_at DESC, article_id DESC;`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapConstraint(err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (r *articlesRepo) CreateArticle(ctx context.Context, a domain.Article) (domain.Article, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO articles (title, topic, author, body, votes, created_at)
		VALUES (?, ?, ?, ?, ?, ?);`,
		a.Title, a.Topic, a.Author, a.Body, a.Votes, now)
	if err != nil {
		return domain.Article{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Article{}, err
	}

	a.ID = id
	a.CreatedAt = now
	return a, nil
}

func (r *articlesRepo) UpdateArticleVotes(ctx context.Context, id int64, delta int) (domain.Article, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE articles SET votes = votes + ? WHERE article_id = ?
		RETURNING `+articleColumns+`;`, delta, id)

	a, err := scanArticle(row)
	if err != nil {
		return domain.Article{}, mapNotFound(err)
	}
	return a, nil
}
