package team

import "context"

// Repository exposes team lookups.
type Repository interface {
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Team, error)
}
