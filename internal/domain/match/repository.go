package match

import "context"

// ListFilter narrows a fixture query. Zero values mean "no constraint";
// Limit <= 0 means no limit.
type ListFilter struct {
	TournamentID string
	Statuses     []string
	Date         string
	Limit        int
	// NewestFirst orders by match date descending, used for "most recent
	// completed" bundle queries.
	NewestFirst bool
}

// Repository exposes fixture read operations against the backing store.
type Repository interface {
	GetByID(ctx context.Context, fixtureID string) (Fixture, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Fixture, error)
}

// Writer applies realtime snapshot pushes. Records are replaced wholesale by
// ID; there is no partial merge.
type Writer interface {
	Upsert(ctx context.Context, fixtures []Fixture) error
}
