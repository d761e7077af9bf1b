package http

import (
	"net/http"

	"github.com/marcusyoung/nc-news-api/internal/news/service"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
	"github.com/marcusyoung/nc-news-api/pkg/httpx"
)

type CommentsHandler struct {
	CommentService *service.CommentService
}

func (h *CommentsHandler) HandleVote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
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
	comment, err := h.CommentService.VoteComment(r.Context(), id, *body.IncVotes, identity)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"comment": comment})
}

func (h *CommentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "comment_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	identity := httpx.IdentityFromContext(r.Context())
	if err := h.CommentService.DeleteComment(r.Context(), id, identity); err != nil {
		WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
