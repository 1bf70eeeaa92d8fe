package cache

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/courtside/internal/platform/resilience"
)

// Category selects the expiration tier for an entry. The tiers exist so the
// highest-frequency read path (live match polling) can stay fresh while
// slow-moving reference data is held longer.
type Category string

const (
	CategoryTournaments      Category = "tournaments"
	CategoryTournamentBundle Category = "tournament_bundle"
	CategoryLiveMatches      Category = "live_matches"
	CategoryNews             Category = "news"
	CategoryVideos           Category = "videos"
	CategoryDefault          Category = "default"
)

// DefaultTTLs returns the tier table. Live snapshots stay short on purpose:
// that TTL is the staleness-vs-load lever for score polling.
func DefaultTTLs() map[Category]time.Duration {
	return map[Category]time.Duration{
		CategoryTournaments:      5 * time.Minute,
		CategoryTournamentBundle: 3 * time.Minute,
		CategoryLiveMatches:      30 * time.Second,
		CategoryNews:             10 * time.Minute,
		CategoryVideos:           15 * time.Minute,
		CategoryDefault:          30 * time.Minute,
	}
}

type entry struct {
	value      any
	category   Category
	insertedAt time.Time
}

// Store is a process-local read-through cache with per-category TTLs.
// Entries are replaced wholesale; a reader never observes a partial write.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttls    map[Category]time.Duration
	flight  resilience.SingleFlight
	now     func() time.Time
}

// Stats is a diagnostic snapshot, no behavioral contract.
type Stats struct {
	Entries    int              `json:"entries"`
	Keys       []string         `json:"keys"`
	ByCategory map[Category]int `json:"byCategory"`
}

func NewStore(ttls map[Category]time.Duration) *Store {
	merged := DefaultTTLs()
	for category, ttl := range ttls {
		if ttl > 0 {
			merged[category] = ttl
		}
	}

	return &Store{
		entries: make(map[string]entry),
		ttls:    merged,
		now:     time.Now,
	}
}

// TTL resolves a category to its duration. Unknown categories fail closed to
// the default tier instead of never expiring.
func (s *Store) TTL(category Category) time.Duration {
	if ttl, ok := s.ttls[category]; ok {
		return ttl
	}
	return s.ttls[CategoryDefault]
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if now.Sub(e.insertedAt) >= s.TTL(e.category) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && current.insertedAt.Equal(e.insertedAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any, category Category) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:      value,
		category:   category,
		insertedAt: s.now(),
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

func (s *Store) DeleteAll(_ context.Context) {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

// DeleteExpired removes every entry past its category TTL and reports how
// many were dropped. It bounds growth from keys written once and never read.
func (s *Store) DeleteExpired(_ context.Context) int {
	now := s.now()

	s.mu.Lock()
	removed := 0
	for key, e := range s.entries {
		if now.Sub(e.insertedAt) >= s.TTL(e.category) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()

	return removed
}

func (s *Store) Stats(_ context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		Entries:    len(s.entries),
		Keys:       make([]string, 0, len(s.entries)),
		ByCategory: make(map[Category]int),
	}
	for key, e := range s.entries {
		stats.Keys = append(stats.Keys, key)
		stats.ByCategory[e.category]++
	}
	sort.Strings(stats.Keys)

	return stats
}

// GetOrLoad is the read-through path: cache hit, or a single-flighted load
// whose result is stored under the category TTL.
func (s *Store) GetOrLoad(ctx context.Context, key string, category Category, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded, category)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// RunSweeper blocks, sweeping expired entries on a fixed interval until the
// context is canceled. The sweep holds the write lock only for the scan.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.DeleteExpired(ctx)
		}
	}
}
