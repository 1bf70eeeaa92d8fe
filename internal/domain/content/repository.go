package content

import "context"

// Repository exposes published content listings.
type Repository interface {
	ListNews(ctx context.Context, limit int) ([]NewsItem, error)
	ListVideos(ctx context.Context, limit int) ([]VideoItem, error)
}
