package http

import (
	"net/http"

	"github.com/marcusyoung/nc-news-api/pkg/httpx"
)

type endpointInfo struct {
	Description string `json:"description"`
	Auth        bool   `json:"auth,omitempty"`
}

// endpointIndex is the machine-readable API index served at GET /api.
var endpointIndex = map[string]endpointInfo{
	"GET /api":                                 {Description: "serves this index of available endpoints"},
	"GET /api/topics":                          {Description: "serves an array of all topics"},
	"GET /api/articles":                        {Description: "serves an array of all articles, newest first; accepts a topic query"},
	"GET /api/articles/:article_id":            {Description: "serves the article with the given id"},
	"GET /api/articles/:article_id/comments":   {Description: "serves an array of the article's comments, newest first"},
	"GET /api/users":                           {Description: "serves an array of all users"},
	"POST /api/users":                          {Description: "registers a new user"},
	"POST /api/users/login":                    {Description: "authenticates a user and sets the session cookies"},
	"POST /api/users/logout":                   {Description: "instructs the client to discard the session cookies"},
	"POST /api/articles/:article_id/comments":  {Description: "adds a comment to the article", Auth: true},
	"PATCH /api/articles/:article_id":          {Description: "applies an inc_votes delta to the article", Auth: true},
	"PATCH /api/comments/:comment_id":          {Description: "applies an inc_votes delta to the comment", Auth: true},
	"DELETE /api/comments/:comment_id":         {Description: "deletes the caller's own comment", Auth: true},
}

func IndexHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"endpoints": endpointIndex})
	})
}

// NotFoundHandler covers every unmatched route with the uniform message
// body instead of the stdlib plain-text 404.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMsg(w, http.StatusNotFound, "Endpoint not found")
	})
}
