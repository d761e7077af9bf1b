package service

import (
	"context"
	"errors"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
)

type ArticleService struct {
	Store store.Store
}

// ListArticles returns articles newest first, optionally filtered by topic.
// An unknown topic is a 404, distinct from a known topic with no articles
// (empty list, 200).
func (s *ArticleService) ListArticles(ctx context.Context, topic string) ([]domain.Article, error) {
	if topic != "" {
		ok, err := s.Store.Resources().Exists(ctx, domain.ResourceTopic, topic)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrNotFoundFor(domain.ResourceTopic, topic)
		}
	}
	return s.Store.Articles().ListArticles(ctx, topic)
}

func (s *ArticleService) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	a, err := s.Store.Articles().GetArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Article{}, domain.ErrNotFoundFor(domain.ResourceArticle, id)
		}
		return domain.Article{}, err
	}
	return a, nil
}

// VoteArticle applies a vote delta on behalf of identity. Existence is
// checked before the self-vote ban so a missing article reports 404 even to
// its would-be owner; voting on your own article is rejected outright.
func (s *ArticleService) VoteArticle(ctx context.Context, id int64, delta int, identity string) (domain.Article, error) {
	a, err := s.GetArticle(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}
	if a.Author == identity {
		return domain.Article{}, domain.ErrSelfVote()
	}
	return s.Store.Articles().UpdateArticleVotes(ctx, id, delta)
}
