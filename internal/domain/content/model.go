package content

// NewsItem is a published article teaser for the home page.
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	ImageURL    string `json:"imageUrl"`
	PublishedAt string `json:"publishedAt"`
}

// VideoItem is a published video listing for the home page.
type VideoItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
	VideoURL     string `json:"videoUrl"`
	Duration     string `json:"duration"`
	PublishedAt  string `json:"publishedAt"`
}
