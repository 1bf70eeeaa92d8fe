package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/courtside/internal/domain/content"
)

type ContentRepository struct {
	db *sqlx.DB
}

func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

const selectNewsQuery = `
SELECT doc
FROM news_items
WHERE deleted_at IS NULL
ORDER BY published_at DESC, id
LIMIT $1`

func (r *ContentRepository) ListNews(ctx context.Context, limit int) ([]content.NewsItem, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows [][]byte
	if err := r.db.SelectContext(ctx, &rows, selectNewsQuery, limit); err != nil {
		return nil, fmt.Errorf("select news: %w", err)
	}

	out := make([]content.NewsItem, 0, len(rows))
	for _, raw := range rows {
		var item content.NewsItem
		if err := decodeDoc(raw, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

const selectVideosQuery = `
SELECT doc
FROM videos
WHERE deleted_at IS NULL
ORDER BY published_at DESC, id
LIMIT $1`

func (r *ContentRepository) ListVideos(ctx context.Context, limit int) ([]content.VideoItem, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows [][]byte
	if err := r.db.SelectContext(ctx, &rows, selectVideosQuery, limit); err != nil {
		return nil, fmt.Errorf("select videos: %w", err)
	}

	out := make([]content.VideoItem, 0, len(rows))
	for _, raw := range rows {
		var item content.VideoItem
		if err := decodeDoc(raw, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
