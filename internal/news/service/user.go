package service

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
	"github.com/marcusyoung/nc-news-api/pkg/cryptox"
)

// Signup validation. Username is alphanumeric, 5 chars minimum. Password
// needs at least one letter and one digit and must be 8-16 chars long.
var (
	usernamePattern   = regexp.MustCompile(`^[a-zA-Z0-9]{5,}$`)
	passwordHasLetter = regexp.MustCompile(`[a-zA-Z]`)
	passwordHasDigit  = regexp.MustCompile(`[0-9]`)
)

type UserService struct {
	Store store.Store
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// Signup validates the requested credentials, hashes the password and
// inserts the user. Validation rejections happen before any storage write;
// a duplicate username surfaces as store.ErrUniqueViolation from the insert
// itself rather than a racy pre-check.
func (s *UserService) Signup(ctx context.Context, username, password, name, avatarURL string) (domain.User, error) {
	if !usernamePattern.MatchString(username) {
		return domain.User{}, domain.NewRequestError(http.StatusBadRequest,
			"Username must be at least 5 characters long and contain only letters and numbers")
	}
	if len(password) < 8 || len(password) > 16 ||
		!passwordHasLetter.MatchString(password) || !passwordHasDigit.MatchString(password) {
		return domain.User{}, domain.NewRequestError(http.StatusBadRequest,
			"Password must be 8-16 characters long and contain at least one letter and one number")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	if name == "" {
		name = username
	}

	return s.Store.Users().CreateUser(ctx, domain.User{
		Username:     username,
		Name:         name,
		AvatarURL:    avatarURL,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
}
