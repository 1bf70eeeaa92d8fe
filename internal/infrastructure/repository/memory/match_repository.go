package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/courtside/internal/domain/match"
)

type MatchRepository struct {
	mu       sync.RWMutex
	fixtures map[string]match.Fixture
	order    []string
}

func NewMatchRepository(fixtures []match.Fixture) *MatchRepository {
	repo := &MatchRepository{fixtures: make(map[string]match.Fixture, len(fixtures))}
	for _, item := range fixtures {
		if _, exists := repo.fixtures[item.ID]; !exists {
			repo.order = append(repo.order, item.ID)
		}
		repo.fixtures[item.ID] = item
	}
	return repo
}

func (r *MatchRepository) GetByID(_ context.Context, fixtureID string) (match.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.fixtures[fixtureID]
	return item, ok, nil
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Fixture, error) {
	r.mu.RLock()
	out := make([]match.Fixture, 0, len(r.order))
	for _, id := range r.order {
		item := r.fixtures[id]
		if !matchesFilter(item, filter) {
			continue
		}
		out = append(out, item)
	}
	r.mu.RUnlock()

	// Date then time, lexicographic: both are ISO-shaped strings.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			if filter.NewestFirst {
				return out[i].Date > out[j].Date
			}
			return out[i].Date < out[j].Date
		}
		if filter.NewestFirst {
			return out[i].Time > out[j].Time
		}
		return out[i].Time < out[j].Time
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MatchRepository) Upsert(_ context.Context, fixtures []match.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range fixtures {
		if item.ID == "" {
			continue
		}
		if _, exists := r.fixtures[item.ID]; !exists {
			r.order = append(r.order, item.ID)
		}
		r.fixtures[item.ID] = item
	}
	return nil
}

func matchesFilter(item match.Fixture, filter match.ListFilter) bool {
	if filter.TournamentID != "" && item.TournamentID != filter.TournamentID {
		return false
	}
	if filter.Date != "" && item.Date != filter.Date {
		return false
	}
	if len(filter.Statuses) == 0 {
		return true
	}
	status := item.EffectiveStatus()
	for _, want := range filter.Statuses {
		if match.NormalizeStatus(want) == status {
			return true
		}
	}
	return false
}
