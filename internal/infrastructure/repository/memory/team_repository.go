package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	byID  map[string]team.Team
	order []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	repo := &TeamRepository{byID: make(map[string]team.Team, len(teams))}
	for _, item := range teams {
		if _, exists := repo.byID[item.ID]; !exists {
			repo.order = append(repo.order, item.ID)
		}
		repo.byID[item.ID] = item
	}
	return repo
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[teamID]
	return item, ok, nil
}

func (r *TeamRepository) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.order))
	for _, id := range r.order {
		item := r.byID[id]
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	return out, nil
}
