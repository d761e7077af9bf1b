package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT username, password_hash, name, avatar_url, created_at
		FROM users WHERE username = ?;`, username)

	var u domain.User
	if err := row.Scan(&u.Username, &u.PasswordHash, &u.Name, &u.AvatarURL, &u.CreatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT username, password_hash, name, avatar_url, created_at
		FROM users ORDER BY username;`)
	if err != nil {
		return nil, mapConstraint(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Username, &u.PasswordHash, &u.Name, &u.AvatarURL, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, name, avatar_url, created_at)
		VALUES (?, ?, ?, ?, ?);`,
		u.Username, u.PasswordHash, u.Name, u.AvatarURL, now)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}

	u.CreatedAt = now
	return u, nil
}
