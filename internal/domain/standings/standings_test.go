package standings

import (
	"strconv"
	"testing"

	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

func TestCompute_PointRule(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: "team-a", Name: "Aces"},
		{ID: "team-b", Name: "Breakers"},
		{ID: "team-c", Name: "Cyclones"},
	}
	matches := []match.Fixture{
		// a beats b 2-1: winner 3, loser keeps 1 consolation.
		completedFixture("m1", "team-a", "team-b", [][2]int{{21, 15}, {18, 21}, {21, 19}}),
		// c shuts out b 3-0: loser gets nothing.
		completedFixture("m2", "team-c", "team-b", [][2]int{{21, 10}, {21, 12}, {21, 14}}),
	}

	table := Compute(teams, matches)

	if table.TotalMatches != 2 || table.TotalTeams != 3 {
		t.Fatalf("unexpected totals: %+v", table)
	}

	byID := rowsByID(table)
	if byID["team-a"].Points != 3 || byID["team-a"].BattleWins != 1 {
		t.Fatalf("unexpected team-a row: %+v", byID["team-a"])
	}
	if byID["team-b"].Points != 1 || byID["team-b"].BattleLosses != 2 {
		t.Fatalf("unexpected team-b row: %+v", byID["team-b"])
	}
	if byID["team-c"].Points != 3 || byID["team-c"].GameWins != 3 {
		t.Fatalf("unexpected team-c row: %+v", byID["team-c"])
	}
}

func TestCompute_IgnoresNonCompletedAndTiedGames(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: "team-a"},
		{ID: "team-b"},
	}
	live := completedFixture("m1", "team-a", "team-b", [][2]int{{21, 0}, {21, 0}, {21, 0}})
	live.Status = match.StatusLive

	// All three games tied: a drawn battle awards nothing either way.
	drawn := completedFixture("m2", "team-a", "team-b", [][2]int{{20, 20}, {15, 15}, {0, 0}})

	table := Compute(teams, []match.Fixture{live, drawn})

	if table.TotalMatches != 1 {
		t.Fatalf("expected only the completed match counted, got %d", table.TotalMatches)
	}
	byID := rowsByID(table)
	if byID["team-a"].Points != 0 || byID["team-b"].Points != 0 {
		t.Fatalf("expected no points from a drawn battle: %+v", table.Rows)
	}
	if byID["team-a"].GameWins != 0 || byID["team-a"].BattleWins != 0 {
		t.Fatalf("tied games must credit neither side: %+v", byID["team-a"])
	}
}

func TestCompute_RankingOrderAndStability(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: "team-a"},
		{ID: "team-b"},
		{ID: "team-c"},
		{ID: "team-d"},
	}
	matches := []match.Fixture{
		// a beats d 3-0, b beats d 2-1: both on 3 points and 1 battle win,
		// a ranks first on game difference.
		completedFixture("m1", "team-a", "team-d", [][2]int{{21, 10}, {21, 11}, {21, 12}}),
		completedFixture("m2", "team-b", "team-d", [][2]int{{21, 15}, {17, 21}, {21, 18}}),
	}

	table := Compute(teams, matches)

	if table.Rows[0].Team.ID != "team-a" || table.Rows[1].Team.ID != "team-b" {
		t.Fatalf("expected game difference to break the points tie, got %s then %s",
			table.Rows[0].Team.ID, table.Rows[1].Team.ID)
	}
	// d keeps a consolation point from the 1-2 loss, which ranks it above
	// the idle c.
	if table.Rows[2].Team.ID != "team-d" || table.Rows[3].Team.ID != "team-c" {
		t.Fatalf("unexpected tail order: %s then %s", table.Rows[2].Team.ID, table.Rows[3].Team.ID)
	}

	if len(table.Rows) != 4 {
		t.Fatalf("every team must appear in the table, got %d rows", len(table.Rows))
	}
}

func TestCompute_EqualRecordsKeepEncounterOrder(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: "team-b"},
		{ID: "team-a"},
	}

	table := Compute(teams, nil)

	if table.Rows[0].Team.ID != "team-b" || table.Rows[1].Team.ID != "team-a" {
		t.Fatalf("expected input order preserved for identical records, got %s then %s",
			table.Rows[0].Team.ID, table.Rows[1].Team.ID)
	}
}

func completedFixture(id, team1ID, team2ID string, games [][2]int) match.Fixture {
	scores := map[string]map[string]any{
		match.SideOne: {},
		match.SideTwo: {},
	}
	for i, game := range games {
		key := "game" + strconv.Itoa(i+1)
		scores[match.SideOne][key] = game[0]
		scores[match.SideTwo][key] = game[1]
	}
	return match.Fixture{
		ID:         id,
		Status:     match.StatusCompleted,
		GamesCount: len(games),
		Team1ID:    team1ID,
		Team2ID:    team2ID,
		Scores:     scores,
	}
}

func rowsByID(table Table) map[string]Row {
	out := make(map[string]Row, len(table.Rows))
	for _, row := range table.Rows {
		out[row.Team.ID] = row
	}
	return out
}
