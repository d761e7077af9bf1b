package service

import (
	"context"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
)

type TopicService struct {
	Store store.Store
}

func (s *TopicService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	return s.Store.Topics().ListTopics(ctx)
}
