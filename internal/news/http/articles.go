package http

import (
	"net/http"

	"github.com/marcusyoung/nc-news-api/internal/news/service"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
	"github.com/marcusyoung/nc-news-api/pkg/httpx"
)

type ArticlesHandler struct {
	ArticleService *service.ArticleService
	CommentService *service.CommentService
}

func (h *ArticlesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	articles, err := h.ArticleService.ListArticles(r.Context(), r.URL.Query().Get("topic"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

func (h *ArticlesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	article, err := h.ArticleService.GetArticle(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"article": article})
}

// HandleVote applies an {inc_votes} delta to an article on behalf of the
// session identity. A missing or non-numeric inc_votes is malformed input.
func (h *ArticlesHandler) HandleVote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	var body struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, r, err)
		return
	}
	if body.IncVotes == nil {
		WriteError(w, r, store.ErrInvalidTextRepresentation)
		return
	}

	identity := httpx.IdentityFromContext(r.Context())
	article, err := h.ArticleService.VoteArticle(r.Context(), id, *body.IncVotes, identity)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"article": article})
}

func (h *ArticlesHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

// HandleCreateComment posts a comment under the session identity. The body
// declares its author; a declared author that is not the session identity
// is rejected before anything is written.
func (h *ArticlesHandler) HandleCreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "article_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	var body struct {
		Username string  `json:"username"`
		Body     *string `json:"body"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, r, err)
		return
	}

	identity := httpx.IdentityFromContext(r.Context())
	comment, err := h.CommentService.CreateComment(r.Context(), id, body.Username, body.Body, identity)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"comment": comment})
}
