package http

import (
	"errors"
	"net/http"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
	"github.com/marcusyoung/nc-news-api/pkg/httpx"
	"github.com/marcusyoung/nc-news-api/pkg/slogx"
)

// WriteError is the single terminal error stage. Handlers never shape error
// bodies themselves; every failure funnels through here and comes out as
// {"msg": "..."} with the mapped status code.
//
// Priority order: an explicit {status, msg} rejection wins over storage
// classification, storage constraint classes map to their fixed 400
// messages, and anything unrecognized is logged and reported as a bare 500
// with no internal detail leaked.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		httpx.WriteMsg(w, reqErr.Status, reqErr.Msg)
		return
	}

	switch {
	case errors.Is(err, store.ErrInvalidTextRepresentation):
		httpx.WriteMsg(w, http.StatusBadRequest, "Invalid input (invalid_text_representation)")
	case errors.Is(err, store.ErrNotNullViolation):
		httpx.WriteMsg(w, http.StatusBadRequest, "Invalid input (not_null_violation)")
	case errors.Is(err, store.ErrForeignKeyViolation):
		httpx.WriteMsg(w, http.StatusBadRequest, "Invalid input (foreign_key_violation)")
	case errors.Is(err, store.ErrUniqueViolation):
		httpx.WriteMsg(w, http.StatusBadRequest, "Invalid input (unique_violation)")
	default:
		slogx.FromContext(r.Context()).Error("unhandled request error",
			"method", r.Method, "path", r.URL.Path, "err", err)
		httpx.WriteMsg(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
