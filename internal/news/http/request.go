package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/marcusyoung/nc-news-api/internal/news/store"
)

// pathID parses a numeric path parameter. A non-numeric value is the same
// failure class as a relational cast error, so it surfaces through the
// normalizer as "Invalid input (invalid_text_representation)".
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, store.ErrInvalidTextRepresentation
	}
	return id, nil
}

// decodeJSON decodes a request body. A body that is not valid JSON counts
// as malformed input.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return store.ErrInvalidTextRepresentation
	}
	return nil
}
