package domain

import "fmt"

// ResourceKind names an addressable resource type. Existence checks are
// parameterized by kind so the "does it exist" logic lives in one place
// instead of being reimplemented per entity.
type ResourceKind string

const (
	ResourceArticle ResourceKind = "article"
	ResourceComment ResourceKind = "comment"
	ResourceTopic   ResourceKind = "topic"
	ResourceUser    ResourceKind = "user"
)

// ErrNotFoundFor builds the 404 rejection for a missing resource of the
// given kind. Message shapes are part of the API contract.
func ErrNotFoundFor(kind ResourceKind, key any) *RequestError {
	switch kind {
	case ResourceArticle:
		return NewRequestError(404, fmt.Sprintf("No article found for article_id: %v", key))
	case ResourceComment:
		return NewRequestError(404, fmt.Sprintf("No comment found for comment_id: %v", key))
	case ResourceTopic:
		return NewRequestError(404, fmt.Sprintf("Topic: %v does not exist", key))
	case ResourceUser:
		return NewRequestError(404, "User does not exist")
	default:
		return NewRequestError(404, fmt.Sprintf("No %s found: %v", kind, key))
	}
}
