package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/tournament"
)

type TournamentRepository struct {
	mu    sync.RWMutex
	items []tournament.Tournament
}

func NewTournamentRepository(items []tournament.Tournament) *TournamentRepository {
	out := make([]tournament.Tournament, len(items))
	copy(out, items)
	return &TournamentRepository{items: out}
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == tournamentID {
			return item, true, nil
		}
	}
	return tournament.Tournament{}, false, nil
}
