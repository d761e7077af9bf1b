package httpx

import (
	"encoding/json"
	"net/http"
)

// MsgResponse is the uniform message body used for every non-payload
// response, errors included: { "msg": "..." }.
type MsgResponse struct {
	Msg string `json:"msg"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMsg writes the uniform {"msg": ...} body with the given status code.
func WriteMsg(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, MsgResponse{Msg: msg})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for responses that set session cookies.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
