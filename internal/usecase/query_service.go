package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/courtside/internal/domain/content"
	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/domain/standings"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/tournament"
	"github.com/riskibarqy/courtside/internal/platform/cache"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

const (
	cacheKeyTournaments = "tournaments"
	cacheKeyHomeNews    = "home:news"
	cacheKeyHomeVideos  = "home:videos"

	defaultRecentCompleted = 5
	defaultHomeLimit       = 10
)

// TournamentBundle is the one-call tournament page payload: the tournament,
// its currently live matches and the most recent completed results. Fixtures
// stay raw here; projection belongs to the match endpoints.
type TournamentBundle struct {
	Tournament    tournament.Tournament `json:"tournament"`
	LiveMatches   []match.Fixture       `json:"liveMatches"`
	RecentResults []match.Fixture       `json:"recentResults"`
}

type HomeContent struct {
	News   []content.NewsItem  `json:"news"`
	Videos []content.VideoItem `json:"videos"`
}

// QueryService is the only component that runs bundled/list queries against
// the backing store. Every read goes through the cache under its category
// TTL, so repeated polling collapses onto one store round-trip per window.
type QueryService struct {
	cache           *cache.Store
	tournamentRepo  tournament.Repository
	matchRepo       match.Repository
	matchWriter     match.Writer
	teamRepo        team.Repository
	contentRepo     content.Repository
	logger          *logging.Logger
	recentCompleted int
}

func NewQueryService(
	cacheStore *cache.Store,
	tournamentRepo tournament.Repository,
	matchRepo match.Repository,
	matchWriter match.Writer,
	teamRepo team.Repository,
	contentRepo content.Repository,
	logger *logging.Logger,
	recentCompleted int,
) *QueryService {
	if logger == nil {
		logger = logging.Default()
	}
	if recentCompleted <= 0 {
		recentCompleted = defaultRecentCompleted
	}
	return &QueryService{
		cache:           cacheStore,
		tournamentRepo:  tournamentRepo,
		matchRepo:       matchRepo,
		matchWriter:     matchWriter,
		teamRepo:        teamRepo,
		contentRepo:     contentRepo,
		logger:          logger,
		recentCompleted: recentCompleted,
	}
}

func (s *QueryService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.ListTournaments")
	defer span.End()

	return loadCached(ctx, s.cache, cacheKeyTournaments, cache.CategoryTournaments,
		func(ctx context.Context) ([]tournament.Tournament, error) {
			items, err := s.tournamentRepo.List(ctx)
			if err != nil {
				return nil, fmt.Errorf("list tournaments: %w", err)
			}
			return items, nil
		})
}

func (s *QueryService) GetTournamentBundle(ctx context.Context, tournamentID string) (TournamentBundle, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.GetTournamentBundle")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return TournamentBundle{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	return loadCached(ctx, s.cache, bundleKey(tournamentID), cache.CategoryTournamentBundle,
		func(ctx context.Context) (TournamentBundle, error) {
			item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
			if err != nil {
				return TournamentBundle{}, fmt.Errorf("get tournament: %w", err)
			}
			if !exists {
				return TournamentBundle{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
			}

			live, err := s.matchRepo.List(ctx, match.ListFilter{
				TournamentID: tournamentID,
				Statuses:     []string{match.StatusLive, match.StatusInProgress},
			})
			if err != nil {
				return TournamentBundle{}, fmt.Errorf("list live matches: %w", err)
			}

			// Bounded in the query itself: the bundle never drags the
			// tournament's full history out of the store.
			recent, err := s.matchRepo.List(ctx, match.ListFilter{
				TournamentID: tournamentID,
				Statuses:     []string{match.StatusCompleted},
				Limit:        s.recentCompleted,
				NewestFirst:  true,
			})
			if err != nil {
				return TournamentBundle{}, fmt.Errorf("list recent results: %w", err)
			}

			return TournamentBundle{
				Tournament:    item,
				LiveMatches:   live,
				RecentResults: recent,
			}, nil
		})
}

func (s *QueryService) ListLiveMatches(ctx context.Context, tournamentID string) ([]match.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.ListLiveMatches")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)

	return loadCached(ctx, s.cache, liveKey(tournamentID), cache.CategoryLiveMatches,
		func(ctx context.Context) ([]match.Fixture, error) {
			items, err := s.matchRepo.List(ctx, match.ListFilter{
				TournamentID: tournamentID,
				Statuses:     []string{match.StatusLive, match.StatusInProgress},
			})
			if err != nil {
				return nil, fmt.Errorf("list live matches: %w", err)
			}
			return items, nil
		})
}

func (s *QueryService) ListTeams(ctx context.Context, tournamentID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.ListTeams")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	return loadCached(ctx, s.cache, teamsKey(tournamentID), cache.CategoryDefault,
		func(ctx context.Context) ([]team.Team, error) {
			if err := s.requireTournament(ctx, tournamentID); err != nil {
				return nil, err
			}
			items, err := s.teamRepo.ListByTournament(ctx, tournamentID)
			if err != nil {
				return nil, fmt.Errorf("list teams: %w", err)
			}
			return items, nil
		})
}

func (s *QueryService) GetStandings(ctx context.Context, tournamentID string) (standings.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.GetStandings")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return standings.Table{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	return loadCached(ctx, s.cache, standingsKey(tournamentID), cache.CategoryTournamentBundle,
		func(ctx context.Context) (standings.Table, error) {
			if err := s.requireTournament(ctx, tournamentID); err != nil {
				return standings.Table{}, err
			}

			teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
			if err != nil {
				return standings.Table{}, fmt.Errorf("list teams: %w", err)
			}
			completed, err := s.matchRepo.List(ctx, match.ListFilter{
				TournamentID: tournamentID,
				Statuses:     []string{match.StatusCompleted},
			})
			if err != nil {
				return standings.Table{}, fmt.Errorf("list completed matches: %w", err)
			}

			return standings.Compute(teams, completed), nil
		})
}

func (s *QueryService) GetHomeContent(ctx context.Context) (HomeContent, error) {
	ctx, span := startUsecaseSpan(ctx, "QueryService.GetHomeContent")
	defer span.End()

	var (
		news      []content.NewsItem
		videos    []content.VideoItem
		newsErr   error
		videosErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		news, newsErr = loadCached(ctx, s.cache, cacheKeyHomeNews, cache.CategoryNews,
			func(ctx context.Context) ([]content.NewsItem, error) {
				items, err := s.contentRepo.ListNews(ctx, defaultHomeLimit)
				if err != nil {
					return nil, fmt.Errorf("list news: %w", err)
				}
				return items, nil
			})
	})
	wg.Go(func() {
		videos, videosErr = loadCached(ctx, s.cache, cacheKeyHomeVideos, cache.CategoryVideos,
			func(ctx context.Context) ([]content.VideoItem, error) {
				items, err := s.contentRepo.ListVideos(ctx, defaultHomeLimit)
				if err != nil {
					return nil, fmt.Errorf("list videos: %w", err)
				}
				return items, nil
			})
	})
	wg.Wait()

	if newsErr != nil {
		return HomeContent{}, newsErr
	}
	if videosErr != nil {
		return HomeContent{}, videosErr
	}

	return HomeContent{News: news, Videos: videos}, nil
}

// ApplyLiveSnapshot consumes a realtime snapshot push: the fixtures replace
// their stored records, and every cache entry that could now be stale (live
// lists, the affected tournaments' bundles and standings) is dropped so the
// next read refetches.
func (s *QueryService) ApplyLiveSnapshot(ctx context.Context, fixtures []match.Fixture) error {
	ctx, span := startUsecaseSpan(ctx, "QueryService.ApplyLiveSnapshot")
	defer span.End()

	if len(fixtures) == 0 {
		return nil
	}

	if s.matchWriter != nil {
		if err := s.matchWriter.Upsert(ctx, fixtures); err != nil {
			return fmt.Errorf("upsert snapshot fixtures: %w", err)
		}
	}

	s.cache.DeletePrefix(ctx, "live:")
	seen := make(map[string]struct{}, len(fixtures))
	for _, fixture := range fixtures {
		tournamentID := strings.TrimSpace(fixture.TournamentID)
		if tournamentID == "" {
			continue
		}
		if _, done := seen[tournamentID]; done {
			continue
		}
		seen[tournamentID] = struct{}{}
		s.cache.Delete(ctx, bundleKey(tournamentID))
		s.cache.Delete(ctx, standingsKey(tournamentID))
	}

	s.logger.InfoContext(ctx, "applied live snapshot",
		"fixtures", len(fixtures),
		"tournaments", len(seen),
	)
	return nil
}

func (s *QueryService) CacheStats(ctx context.Context) cache.Stats {
	return s.cache.Stats(ctx)
}

func (s *QueryService) InvalidateAll(ctx context.Context) {
	s.cache.DeleteAll(ctx)
	s.logger.InfoContext(ctx, "cache invalidated")
}

func (s *QueryService) requireTournament(ctx context.Context, tournamentID string) error {
	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return nil
}

// loadCached wraps the cache's read-through with the concrete result type.
func loadCached[T any](ctx context.Context, store *cache.Store, key string, category cache.Category, loader func(context.Context) (T, error)) (T, error) {
	value, err := store.GetOrLoad(ctx, key, category, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: unexpected cache payload for key %s", ErrDependencyUnavailable, key)
	}
	return typed, nil
}

func bundleKey(tournamentID string) string {
	return "tournament:" + tournamentID + ":bundle"
}

func liveKey(tournamentID string) string {
	if tournamentID == "" {
		return "live:all"
	}
	return "live:" + tournamentID
}

func teamsKey(tournamentID string) string {
	return "tournament:" + tournamentID + ":teams"
}

func standingsKey(tournamentID string) string {
	return "tournament:" + tournamentID + ":standings"
}
