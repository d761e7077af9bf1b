package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
	"github.com/marcusyoung/nc-news-api/internal/news/service"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
	"github.com/marcusyoung/nc-news-api/internal/news/store/drivers/sqlite"
	"github.com/marcusyoung/nc-news-api/pkg/cryptox"
	"github.com/marcusyoung/nc-news-api/pkg/httpx"
	"github.com/marcusyoung/nc-news-api/pkg/jwtx"
	"github.com/marcusyoung/nc-news-api/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	store store.Store
}

// newTestServer wires the full pipeline (router, middleware, services,
// sqlite store) behind an httptest server, seeded with two users and one
// article by butter_bridge.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	dsn := "file:" + filepath.Join(t.TempDir(), "news.db") + "?_pragma=foreign_keys(1)"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	seed(t, st)

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(secret, "nc-news-test")

	logger := slogx.New(slogx.Config{
		Service: "news-api-test",
		Level:   "error",
		Format:  "text",
	})

	router := NewRouter(verifier, "test", st, logger)
	router.SessionService = &service.SessionService{
		Store:   st,
		Signer:  signer,
		CSRFKey: []byte("csrf-key-for-tests"),
		Issuer:  "nc-news-test",
		TTL:     time.Hour,
	}
	router.UserService = &service.UserService{Store: st}
	router.TopicService = &service.TopicService{Store: st}
	router.ArticleService = &service.ArticleService{Store: st}
	router.CommentService = &service.CommentService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, store: st}
}

func seed(t *testing.T, st store.Store) {
	t.Helper()
	ctx := t.Context()

	require.NoError(t, st.Topics().CreateTopic(ctx, domain.Topic{
		Slug: "coding", Description: "Code is love, code is life",
	}))

	for user, password := range map[string]string{
		"butter_bridge": "password1",
		"icellusedkars": "password2",
	} {
		hash, err := cryptox.HashPassword(password)
		require.NoError(t, err)
		_, err = st.Users().CreateUser(ctx, domain.User{
			Username: user, Name: user, PasswordHash: hash,
		})
		require.NoError(t, err)
	}

	_, err := st.Articles().CreateArticle(ctx, domain.Article{
		Title: "Running a Node App", Topic: "coding", Author: "butter_bridge", Body: "body",
	})
	require.NoError(t, err)
}

// request performs a JSON request with optional session cookies and CSRF
// header and decodes the response body into a map.
func (ts *testServer) request(t *testing.T, method, path string, body any, cookies []*http.Cookie, csrf string) (*http.Response, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	if csrf != "" {
		req.Header.Set(httpx.CSRFHeaderName, csrf)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	decoded := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// login authenticates and returns the session cookie and the CSRF secret
// the client is expected to echo in the header.
func (ts *testServer) login(t *testing.T, username, password string) (*http.Cookie, string) {
	t.Helper()

	resp, body := ts.request(t, http.MethodPost, "/api/users/login",
		map[string]string{"username": username, "password": password}, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, "login failed: %v", body)

	var jwtCookie, csrfCookie *http.Cookie
	for _, c := range resp.Cookies() {
		switch c.Name {
		case httpx.SessionCookieName:
			jwtCookie = c
		case httpx.CSRFCookieName:
			csrfCookie = c
		}
	}
	require.NotNil(t, jwtCookie)
	require.NotNil(t, csrfCookie)
	require.True(t, jwtCookie.HttpOnly, "session cookie must be HttpOnly")
	require.False(t, csrfCookie.HttpOnly, "csrf cookie must stay script-readable")

	return jwtCookie, csrfCookie.Value
}

func TestSessionGateRejections(t *testing.T) {
	ts := newTestServer(t)

	jwtCookie, csrf := ts.login(t, "icellusedkars", "password2")
	garbage := &http.Cookie{Name: httpx.SessionCookieName, Value: "not.a.jwt"}

	cases := []struct {
		name    string
		cookies []*http.Cookie
		csrf    string
		msg     string
	}{
		{"no session cookie", nil, csrf, "No jwt token"},
		{"session cookie but no csrf header", []*http.Cookie{jwtCookie}, "", "No csrf token"},
		{"garbage token", []*http.Cookie{garbage}, csrf, "Invalid jwt token"},
		{"wrong csrf header", []*http.Cookie{jwtCookie}, "tampered-value", "Invalid csrf token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := ts.request(t, http.MethodPatch, "/api/articles/1",
				map[string]int{"inc_votes": 1}, tc.cookies, tc.csrf)
			require.Equal(t, http.StatusForbidden, resp.StatusCode)
			require.Equal(t, tc.msg, body["msg"])
		})
	}

	// None of the rejected requests mutated the article.
	resp, body := ts.request(t, http.MethodGet, "/api/articles/1", nil, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	article := body["article"].(map[string]any)
	require.EqualValues(t, 0, article["votes"])
}

func TestCommentLifecycle(t *testing.T) {
	ts := newTestServer(t)

	kars, karsCSRF := ts.login(t, "icellusedkars", "password2")

	t.Run("create with matching username", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodPost, "/api/articles/1/comments",
			map[string]string{"username": "icellusedkars", "body": "first!"},
			[]*http.Cookie{kars}, karsCSRF)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		comment := body["comment"].(map[string]any)
		require.Equal(t, "icellusedkars", comment["author"])
		require.Equal(t, "first!", comment["body"])
	})

	t.Run("create with mismatched username writes nothing", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodPost, "/api/articles/1/comments",
			map[string]string{"username": "butter_bridge", "body": "spoofed"},
			[]*http.Cookie{kars}, karsCSRF)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, "Unauthorised", body["msg"])

		_, listBody := ts.request(t, http.MethodGet, "/api/articles/1/comments", nil, nil, "")
		require.Len(t, listBody["comments"], 1)
	})

	t.Run("delete by non-author is rejected", func(t *testing.T) {
		bridge, bridgeCSRF := ts.login(t, "butter_bridge", "password1")

		resp, body := ts.request(t, http.MethodDelete, "/api/comments/1", nil,
			[]*http.Cookie{bridge}, bridgeCSRF)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, "Unauthorised", body["msg"])
	})

	t.Run("author deletes and the comment is gone", func(t *testing.T) {
		resp, _ := ts.request(t, http.MethodDelete, "/api/comments/1", nil,
			[]*http.Cookie{kars}, karsCSRF)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		_, listBody := ts.request(t, http.MethodGet, "/api/articles/1/comments", nil, nil, "")
		require.Empty(t, listBody["comments"])

		resp, body := ts.request(t, http.MethodDelete, "/api/comments/1", nil,
			[]*http.Cookie{kars}, karsCSRF)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "No comment found for comment_id: 1", body["msg"])
	})
}

func TestVotingRules(t *testing.T) {
	ts := newTestServer(t)

	kars, karsCSRF := ts.login(t, "icellusedkars", "password2")
	bridge, bridgeCSRF := ts.login(t, "butter_bridge", "password1")

	t.Run("author cannot vote on own article", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodPatch, "/api/articles/1",
			map[string]int{"inc_votes": -1}, []*http.Cookie{bridge}, bridgeCSRF)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "You can't vote on your own content", body["msg"])
	})

	t.Run("someone else's vote lands", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodPatch, "/api/articles/1",
			map[string]int{"inc_votes": 3}, []*http.Cookie{kars}, karsCSRF)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		article := body["article"].(map[string]any)
		require.EqualValues(t, 3, article["votes"])
	})

	t.Run("missing inc_votes is malformed input", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodPatch, "/api/articles/1",
			map[string]string{"wrong_field": "1"}, []*http.Cookie{kars}, karsCSRF)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Invalid input (invalid_text_representation)", body["msg"])
	})
}

func TestErrorContract(t *testing.T) {
	ts := newTestServer(t)

	t.Run("non-numeric article id", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodGet, "/api/articles/not-a-number", nil, nil, "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Invalid input (invalid_text_representation)", body["msg"])
	})

	t.Run("missing article", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodGet, "/api/articles/999", nil, nil, "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "No article found for article_id: 999", body["msg"])
	})

	t.Run("unknown topic filter", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodGet, "/api/articles?topic=gardening", nil, nil, "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "Topic: gardening does not exist", body["msg"])
	})

	t.Run("unmatched route", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodGet, "/api/bananas", nil, nil, "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "Endpoint not found", body["msg"])
	})
}

func TestAuthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	t.Run("unknown user login", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodPost, "/api/users/login",
			map[string]string{"username": "nobody", "password": "password1"}, nil, "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "User does not exist", body["msg"])
	})

	t.Run("wrong password login", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodPost, "/api/users/login",
			map[string]string{"username": "butter_bridge", "password": "wrongpass1"}, nil, "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Authentication failed", body["msg"])
	})

	t.Run("logout clears both cookies", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodPost, "/api/users/logout", nil, nil, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Equal(t, "Successfully logged out", body["msg"])

		cleared := map[string]bool{}
		for _, c := range resp.Cookies() {
			cleared[c.Name] = c.MaxAge < 0
		}
		require.True(t, cleared[httpx.SessionCookieName])
		require.True(t, cleared[httpx.CSRFCookieName])
	})

	t.Run("signup then login", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodPost, "/api/users",
			map[string]string{"username": "newuser", "password": "password9", "name": "New User"}, nil, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		user := body["user"].(map[string]any)
		require.Equal(t, "newuser", user["username"])
		_, hasHash := user["password_hash"]
		require.False(t, hasHash, "hash must never serialize")

		ts.login(t, "newuser", "password9")
	})
}

func TestIndexAndHealth(t *testing.T) {
	ts := newTestServer(t)

	t.Run("endpoint index", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodGet, "/api", nil, nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, body["endpoints"], "GET /api/articles")
	})

	t.Run("livez and readyz", func(t *testing.T) {
		resp, body := ts.request(t, http.MethodGet, "/livez", nil, nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "ok", body["status"])

		resp, body = ts.request(t, http.MethodGet, "/readyz", nil, nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "ok", body["database"])
	})
}
