package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/content"
)

type ContentRepository struct {
	mu     sync.RWMutex
	news   []content.NewsItem
	videos []content.VideoItem
}

func NewContentRepository(news []content.NewsItem, videos []content.VideoItem) *ContentRepository {
	repo := &ContentRepository{
		news:   make([]content.NewsItem, len(news)),
		videos: make([]content.VideoItem, len(videos)),
	}
	copy(repo.news, news)
	copy(repo.videos, videos)
	return repo
}

func (r *ContentRepository) ListNews(_ context.Context, limit int) ([]content.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]content.NewsItem, len(r.news))
	copy(out, r.news)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ContentRepository) ListVideos(_ context.Context, limit int) ([]content.VideoItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]content.VideoItem, len(r.videos))
	copy(out, r.videos)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
