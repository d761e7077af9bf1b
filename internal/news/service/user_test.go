package service

import (
	"context"
	"testing"

	"github.com/marcusyoung/nc-news-api/internal/news/store"
	"github.com/marcusyoung/nc-news-api/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSignupValidation(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	usernameMsg := "Username must be at least 5 characters long and contain only letters and numbers"
	passwordMsg := "Password must be 8-16 characters long and contain at least one letter and one number"

	cases := []struct {
		name     string
		username string
		password string
		msg      string
	}{
		{"username too short", "abcd", "password1", usernameMsg},
		{"username with symbols", "butter_bridge", "password1", usernameMsg},
		{"username with spaces", "new user", "password1", usernameMsg},
		{"password too short", "newuser", "pass1", passwordMsg},
		{"password too long", "newuser", "abcdefghijklmnop1", passwordMsg},
		{"password without digit", "newuser", "passwords", passwordMsg},
		{"password without letter", "newuser", "12345678", passwordMsg},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tc.username, tc.password, "", "")
			requireRequestError(t, err, 400, tc.msg)
		})
	}

	// No rejected signup reached the database.
	users, err := st.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestSignupCreatesUser(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st}
	ctx := context.Background()

	user, err := svc.Signup(ctx, "newuser", "password1", "New User", "https://example.com/a.png")
	require.NoError(t, err)
	require.Equal(t, "newuser", user.Username)
	require.Equal(t, "New User", user.Name)

	stored, err := st.Users().GetUserByUsername(ctx, "newuser")
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("password1", stored.PasswordHash))

	t.Run("name defaults to username", func(t *testing.T) {
		u, err := svc.Signup(ctx, "second1", "password1", "", "")
		require.NoError(t, err)
		require.Equal(t, "second1", u.Name)
	})

	t.Run("duplicate username surfaces the unique violation", func(t *testing.T) {
		_, err := svc.Signup(ctx, "newuser", "password1", "", "")
		require.ErrorIs(t, err, store.ErrUniqueViolation)
	})
}
