package matchview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

func liveDoublesFixture() match.Fixture {
	return match.Fixture{
		ID:           "jkt-open-qf-2",
		TournamentID: "idn-jakarta-open-2026",
		Round:        "Quarterfinal",
		Court:        "Court 1",
		Date:         "2026-08-28",
		Time:         "19:30",
		Status:       "live",
		GamesCount:   5,
		Team1ID:      "garuda",
		Team2ID:      "rajawali",
		Team1Player1: "Adi",
		Team1Player2: "Bima",
		Team2Player1: "Citra",
		Team2Player2: "Dewi",
		Scores: map[string]map[string]any{
			match.SideOne: {"game1": 15, "game2": float64(9)},
			match.SideTwo: {"game1": 11, "game2": 15, "game3": "bad"},
		},
		CurrentGame:    3,
		ServingPlayer:  match.SideTwo,
		TeamServeCount: 1,
		Substitutions: []match.Substitution{
			{Team: match.TeamTwo, PlayerOut: "Dewi", PlayerIn: "Eka", Timestamp: "2026-08-28T12:41:00Z", Game: 2, Score: "9-7"},
		},
		Events: []match.Event{
			{Type: "point", Game: 1, Team: match.TeamOne},
			{Type: match.EventTypeServeChange, Game: 1, Team: match.TeamTwo},
		},
		Team1TimeoutsUsed: 1,
		DRSReviewsLeft:    map[string]int{match.TeamOne: 0},
		StreamURL:         "https://stream.example/qf-2",
	}
}

func TestBuildMatchView_FullProjection(t *testing.T) {
	f := liveDoublesFixture()
	team1 := team.Team{ID: "garuda", Name: "Garuda", LogoURL: "https://cdn.example/garuda.png"}
	team2 := team.Team{ID: "rajawali", Name: "Rajawali"}

	view := BuildMatchView(f, team1, team2)

	require.Equal(t, "jkt-open-qf-2", view.ID)
	require.Equal(t, "idn-jakarta-open-2026", view.TournamentID)
	require.Equal(t, "live", view.Status)
	require.Equal(t, 5, view.GamesCount)
	require.True(t, view.IsDoubles)

	require.Equal(t, "Garuda", view.Team1.Name)
	require.Equal(t, "https://cdn.example/garuda.png", view.Team1.LogoURL)
	// Nominal slots stay untouched; substitutions only affect display names.
	require.Equal(t, "Dewi", view.Team2.Player2)

	require.Len(t, view.Scores[match.SideOne], 5)
	require.Equal(t, 15, view.Scores[match.SideOne]["game1"])
	require.Equal(t, 9, view.Scores[match.SideOne]["game2"])
	require.Equal(t, 0, view.Scores[match.SideOne]["game3"])
	require.Equal(t, 0, view.Scores[match.SideTwo]["game3"])

	require.Equal(t, match.SideTwo, view.Serve.ServingPlayer)
	require.Equal(t, "", view.Serve.Team1Marker)
	require.Equal(t, "2", view.Serve.Team2Marker)

	require.Equal(t, map[string]int{match.TeamOne: 0, match.TeamTwo: 1}, view.DRSReviewsLeft)
	require.Equal(t, 1, view.Team1TimeoutsUsed)
	require.Equal(t, 0, view.Team2TimeoutsUsed)

	require.Len(t, view.Events, 2)
	require.Len(t, view.Substitutions, 1)

	// The view owns copies of the fixture's logs.
	view.Events[0].Type = "mutated"
	require.Equal(t, "point", f.Events[0].Type)
}

func TestBuildMatchSummary_UsesResolvedRosterNames(t *testing.T) {
	f := liveDoublesFixture()

	summary := BuildMatchSummary(f)

	require.Equal(t, "jkt-open-qf-2", summary.ID)
	require.Equal(t, "live", summary.Status)
	require.Equal(t, 3, summary.CurrentGame)
	require.True(t, summary.IsDoubles)

	require.Equal(t, "garuda", summary.Team1.TeamID)
	require.Equal(t, "Adi / Bima", summary.Team1.DisplayName)
	require.Equal(t, 24, summary.Team1.Points)
	require.Equal(t, "", summary.Team1.ServeMarker)

	require.Equal(t, "Citra / Eka", summary.Team2.DisplayName)
	require.Equal(t, 26, summary.Team2.Points)
	require.Equal(t, "2", summary.Team2.ServeMarker)
}
