package sqlite

import (
	"context"
	"database/sql"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
)

type topicsRepo struct {
	db *sql.DB
}

func (r *topicsRepo) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT slug, description FROM topics ORDER BY slug;`)
	if err != nil {
		return nil, mapConstraint(err)
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (r *topicsRepo) CreateTopic(ctx context.Context, t domain.Topic) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO topics (slug, description) VALUES (?, ?);`,
		t.Slug, t.Description)
	return mapConstraint(err)
}
