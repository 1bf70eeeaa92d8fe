package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

func TestMatchService_GetMatchView(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepository{
		byID: map[string]match.Fixture{
			"match-1": {
				ID:           "match-1",
				Team1ID:      "team-a",
				Team2ID:      "team-b",
				Team1Player1: "Arif",
				Team2Player1: "Candra",
			},
		},
	}
	teamRepo := &stubTeamRepository{
		byID: map[string]team.Team{
			"team-a": {ID: "team-a", Name: "Jakarta Aces"},
			"team-b": {ID: "team-b", Name: "Bandung Breakers"},
		},
	}
	service := NewMatchService(matchRepo, teamRepo, nil)

	view, err := service.GetMatchView(context.Background(), "match-1")
	if err != nil {
		t.Fatalf("GetMatchView error: %v", err)
	}
	if view.Team1.Name != "Jakarta Aces" || view.Team2.Name != "Bandung Breakers" {
		t.Fatalf("unexpected team names: %+v", view)
	}
	if view.Status != match.StatusScheduled {
		t.Fatalf("status = %q, want scheduled default", view.Status)
	}
}

func TestMatchService_GetMatchView_InputErrors(t *testing.T) {
	t.Parallel()

	service := NewMatchService(&stubMatchRepository{}, &stubTeamRepository{}, nil)

	if _, err := service.GetMatchView(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank id error = %v, want ErrInvalidInput", err)
	}
	if _, err := service.GetMatchView(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing fixture error = %v, want ErrNotFound", err)
	}
}

func TestMatchService_GetScoreView_DegradesOnTeamLookupFailure(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepository{
		byID: map[string]match.Fixture{
			"match-1": {
				ID:           "match-1",
				Team1ID:      "team-a",
				Team2ID:      "team-b",
				Team1Player1: "Arif",
				Team2Player1: "Candra",
				Scores: map[string]map[string]any{
					match.SideOne: {"game1": 21},
					match.SideTwo: {"game1": 15},
				},
			},
		},
	}
	teamRepo := &stubTeamRepository{
		byID: map[string]team.Team{
			"team-a": {ID: "team-a", Name: "Jakarta Aces"},
		},
		errByID: map[string]error{
			"team-b": errors.New("store down"),
		},
	}
	service := NewMatchService(matchRepo, teamRepo, nil)

	view, err := service.GetScoreView(context.Background(), "match-1")
	if err != nil {
		t.Fatalf("GetScoreView error: %v", err)
	}
	if view.Rows[0].TeamName != "Jakarta Aces" {
		t.Fatalf("unexpected team1 row: %+v", view.Rows[0])
	}
	// Failed lookup renders an empty team instead of failing the request.
	if view.Rows[1].TeamName != "" || view.Rows[1].Points != 15 {
		t.Fatalf("unexpected degraded team2 row: %+v", view.Rows[1])
	}
}

func TestMatchService_GetEventsView(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepository{
		byID: map[string]match.Fixture{
			"match-1": {
				ID: "match-1",
				Events: []match.Event{
					{Type: match.EventTypeServeChange},
					{Type: "point"},
				},
			},
		},
	}
	service := NewMatchService(matchRepo, &stubTeamRepository{}, nil)

	view, err := service.GetEventsView(context.Background(), "match-1")
	if err != nil {
		t.Fatalf("GetEventsView error: %v", err)
	}
	if len(view.Events) != 2 || len(view.ServeChanges) != 1 {
		t.Fatalf("unexpected events view: %+v", view)
	}
}

func TestMatchService_ListMatches_NormalizesFilter(t *testing.T) {
	t.Parallel()

	matchRepo := &stubMatchRepository{
		list: []match.Fixture{
			{ID: "match-1", Team1Player1: "Arif", Team2Player1: "Candra"},
		},
	}
	service := NewMatchService(matchRepo, &stubTeamRepository{}, nil)

	got, err := service.ListMatches(context.Background(), match.ListFilter{
		TournamentID: "  open-2026  ",
		Statuses:     []string{" LIVE "},
		Limit:        100000,
	})
	if err != nil {
		t.Fatalf("ListMatches error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "match-1" {
		t.Fatalf("unexpected summaries: %+v", got)
	}

	if matchRepo.lastFilter.TournamentID != "open-2026" {
		t.Fatalf("tournament filter not trimmed: %q", matchRepo.lastFilter.TournamentID)
	}
	if matchRepo.lastFilter.Statuses[0] != match.StatusLive {
		t.Fatalf("status not normalized: %q", matchRepo.lastFilter.Statuses[0])
	}
	if matchRepo.lastFilter.Limit != maxListLimit {
		t.Fatalf("limit not clamped: %d", matchRepo.lastFilter.Limit)
	}
}

type stubMatchRepository struct {
	byID       map[string]match.Fixture
	list       []match.Fixture
	listErr    error
	lastFilter match.ListFilter
	upserted   []match.Fixture
}

func (s *stubMatchRepository) GetByID(_ context.Context, fixtureID string) (match.Fixture, bool, error) {
	item, ok := s.byID[fixtureID]
	return item, ok, nil
}

func (s *stubMatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Fixture, error) {
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]match.Fixture, len(s.list))
	copy(out, s.list)
	return out, nil
}

func (s *stubMatchRepository) Upsert(_ context.Context, fixtures []match.Fixture) error {
	s.upserted = append(s.upserted, fixtures...)
	return nil
}

type stubTeamRepository struct {
	byID    map[string]team.Team
	errByID map[string]error
}

func (s *stubTeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	if err := s.errByID[teamID]; err != nil {
		return team.Team{}, false, err
	}
	item, ok := s.byID[teamID]
	return item, ok, nil
}

func (s *stubTeamRepository) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	out := make([]team.Team, 0, len(s.byID))
	for _, item := range s.byID {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	return out, nil
}
