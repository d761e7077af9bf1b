package domain

import "fmt"

// RequestError is an explicit rejection carrying the exact status and
// message to emit. When present on a failure it always wins over storage
// error classification; the error normalizer emits it verbatim.
type RequestError struct {
	Status int
	Msg    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Msg)
}

// NewRequestError builds an explicit {status, msg} rejection.
func NewRequestError(status int, msg string) *RequestError {
	return &RequestError{Status: status, Msg: msg}
}

// ErrUnauthorised is the identity-mismatch rejection used by ownership
// checks (delete/edit another user's content, create under another name).
func ErrUnauthorised() *RequestError {
	return &RequestError{Status: 403, Msg: "Unauthorised"}
}

// ErrSelfVote is the self-action ban. Modeled as an invalid operation on the
// resource (400), not an authorization failure (403) — the asymmetry with
// ErrUnauthorised is intentional and preserved.
func ErrSelfVote() *RequestError {
	return &RequestError{Status: 400, Msg: "You can't vote on your own content"}
}
