package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
	"github.com/marcusyoung/nc-news-api/internal/news/store/drivers/sqlite"
	"github.com/marcusyoung/nc-news-api/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway file-backed database with the schema
// applied and the password pepper pointed at a scratch file.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	dsn := "file:" + filepath.Join(t.TempDir(), "news.db") + "?_pragma=foreign_keys(1)"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, username, password string) {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	_, err = st.Users().CreateUser(context.Background(), domain.User{
		Username:     username,
		Name:         username,
		PasswordHash: hash,
	})
	require.NoError(t, err)
}

func seedArticle(t *testing.T, st store.Store, author string) domain.Article {
	t.Helper()

	err := st.Topics().CreateTopic(context.Background(), domain.Topic{
		Slug: "coding", Description: "Code is love, code is life",
	})
	if err != nil {
		require.ErrorIs(t, err, store.ErrUniqueViolation)
	}

	a, err := st.Articles().CreateArticle(context.Background(), domain.Article{
		Title: "Running a Node App", Topic: "coding", Author: author, Body: "body",
	})
	require.NoError(t, err)
	return a
}

func requireRequestError(t *testing.T, err error, status int, msg string) {
	t.Helper()

	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, status, reqErr.Status)
	require.Equal(t, msg, reqErr.Msg)
}
