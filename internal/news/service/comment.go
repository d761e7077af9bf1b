package service

import (
	"context"
	"errors"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
)

type CommentService struct {
	Store store.Store
}

// ListComments returns an article's comments newest first. A missing
// article is a 404; a real article with no comments is an empty list.
func (s *CommentService) ListComments(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	ok, err := s.Store.Resources().Exists(ctx, domain.ResourceArticle, articleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFoundFor(domain.ResourceArticle, articleID)
	}
	return s.Store.Comments().ListCommentsByArticle(ctx, articleID)
}

// CreateComment posts a comment under the caller's own name. The declared
// author must match the session identity — checked first, before any
// storage access, so a spoofed author never reaches the database. body is
// nullable on purpose: a missing body is a storage-level NOT NULL
// violation, not a service-level validation.
func (s *CommentService) CreateComment(ctx context.Context, articleID int64, author string, body *string, identity string) (domain.Comment, error) {
	if author != identity {
		return domain.Comment{}, domain.ErrUnauthorised()
	}

	ok, err := s.Store.Resources().Exists(ctx, domain.ResourceArticle, articleID)
	if err != nil {
		return domain.Comment{}, err
	}
	if !ok {
		return domain.Comment{}, domain.ErrNotFoundFor(domain.ResourceArticle, articleID)
	}

	return s.Store.Comments().CreateComment(ctx, articleID, author, body)
}

// DeleteComment removes a comment owned by identity. Existence is checked
// before ownership: a missing comment is a 404 for everyone, and only a
// real comment owned by someone else yields the 403.
func (s *CommentService) DeleteComment(ctx context.Context, id int64, identity string) error {
	c, err := s.Store.Comments().GetCommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrNotFoundFor(domain.ResourceComment, id)
		}
		return err
	}
	if c.Author != identity {
		return domain.ErrUnauthorised()
	}

	if err := s.Store.Comments().DeleteComment(ctx, id); err != nil {
		// Lost a race with a concurrent delete.
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrNotFoundFor(domain.ResourceComment, id)
		}
		return err
	}
	return nil
}

// VoteComment applies a vote delta on behalf of identity, with the same
// self-vote ban as articles.
func (s *CommentService) VoteComment(ctx context.Context, id int64, delta int, identity string) (domain.Comment, error) {
	c, err := s.Store.Comments().GetCommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Comment{}, domain.ErrNotFoundFor(domain.ResourceComment, id)
		}
		return domain.Comment{}, err
	}
	if c.Author == identity {
		return domain.Comment{}, domain.ErrSelfVote()
	}
	return s.Store.Comments().UpdateCommentVotes(ctx, id, delta)
}
