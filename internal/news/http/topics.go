package http

import (
	"net/http"

	"github.com/marcusyoung/nc-news-api/internal/news/service"
	"github.com/marcusyoung/nc-news-api/pkg/httpx"
)

type TopicsHandler struct {
	TopicService *service.TopicService
}

func (h *TopicsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	topics, err := h.TopicService.ListTopics(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"topics": topics})
}
