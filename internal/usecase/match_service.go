package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/domain/matchview"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// MatchService serves the per-match read projections. It works on raw fixture
// records straight from the repository; the cache layer in QueryService is for
// bundled queries only.
type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	logger    *logging.Logger
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		logger:    logger,
	}
}

func (s *MatchService) GetMatchView(ctx context.Context, matchID string) (matchview.MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.GetMatchView")
	defer span.End()

	fixture, err := s.getFixture(ctx, matchID)
	if err != nil {
		return matchview.MatchView{}, err
	}

	team1, team2 := s.fetchTeams(ctx, fixture)
	return matchview.BuildMatchView(fixture, team1, team2), nil
}

func (s *MatchService) GetScoreView(ctx context.Context, matchID string) (matchview.ScoreView, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.GetScoreView")
	defer span.End()

	fixture, err := s.getFixture(ctx, matchID)
	if err != nil {
		return matchview.ScoreView{}, err
	}

	team1, team2 := s.fetchTeams(ctx, fixture)
	return matchview.BuildScoreView(fixture, team1, team2), nil
}

func (s *MatchService) GetEventsView(ctx context.Context, matchID string) (matchview.EventsView, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.GetEventsView")
	defer span.End()

	fixture, err := s.getFixture(ctx, matchID)
	if err != nil {
		return matchview.EventsView{}, err
	}

	return matchview.BuildEventsView(fixture), nil
}

func (s *MatchService) ListMatches(ctx context.Context, filter match.ListFilter) ([]matchview.MatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListMatches")
	defer span.End()

	filter.TournamentID = strings.TrimSpace(filter.TournamentID)
	filter.Date = strings.TrimSpace(filter.Date)
	for i, status := range filter.Statuses {
		filter.Statuses[i] = match.NormalizeStatus(status)
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	fixtures, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]matchview.MatchSummary, 0, len(fixtures))
	for _, fixture := range fixtures {
		out = append(out, matchview.BuildMatchSummary(fixture))
	}
	return out, nil
}

func (s *MatchService) getFixture(ctx context.Context, matchID string) (match.Fixture, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Fixture{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	fixture, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Fixture{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Fixture{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return fixture, nil
}

// fetchTeams loads both team documents concurrently. A side that cannot be
// resolved degrades to an empty team so the projection still renders.
func (s *MatchService) fetchTeams(ctx context.Context, fixture match.Fixture) (team.Team, team.Team) {
	var team1, team2 team.Team

	var wg conc.WaitGroup
	wg.Go(func() {
		team1 = s.lookupTeam(ctx, fixture.ID, fixture.Team1ID)
	})
	wg.Go(func() {
		team2 = s.lookupTeam(ctx, fixture.ID, fixture.Team2ID)
	})
	wg.Wait()

	return team1, team2
}

func (s *MatchService) lookupTeam(ctx context.Context, matchID, teamID string) team.Team {
	if strings.TrimSpace(teamID) == "" {
		return team.Team{}
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		s.logger.WarnContext(ctx, "team lookup failed, rendering without team details",
			"match_id", matchID,
			"team_id", teamID,
			"error", err,
		)
		return team.Team{ID: teamID}
	}
	if !exists {
		return team.Team{ID: teamID}
	}

	return item
}
