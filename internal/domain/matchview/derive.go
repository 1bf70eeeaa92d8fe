package matchview

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

// CurrentRoster folds the substitution log over the nominal slots. Entries
// replay in stored array order, not timestamp order; an entry whose outgoing
// name matches neither slot of its side is skipped without error, which
// tolerates stale or duplicate log entries.
func CurrentRoster(f match.Fixture) Roster {
	roster := Roster{
		Team1: SidePlayers{Player1: f.Team1Player1, Player2: f.Team1Player2},
		Team2: SidePlayers{Player1: f.Team2Player1, Player2: f.Team2Player2},
	}

	for _, sub := range f.Substitutions {
		switch sub.Team {
		case match.TeamOne:
			roster.Team1 = applySubstitution(roster.Team1, sub)
		case match.TeamTwo:
			roster.Team2 = applySubstitution(roster.Team2, sub)
		}
	}

	return roster
}

func applySubstitution(side SidePlayers, sub match.Substitution) SidePlayers {
	if side.Player1 == sub.PlayerOut {
		side.Player1 = sub.PlayerIn
		return side
	}
	if side.Player2 == sub.PlayerOut {
		side.Player2 = sub.PlayerIn
	}
	return side
}

// GameTotals sums each side's points over the configured games. Games with
// no recorded score contribute 0.
func GameTotals(f match.Fixture) (int, int) {
	team1Total := 0
	team2Total := 0
	for game := 1; game <= f.EffectiveGamesCount(); game++ {
		team1Total += f.ScoreAt(match.SideOne, game)
		team2Total += f.ScoreAt(match.SideTwo, game)
	}

	return team1Total, team2Total
}

// IsDoubles is decided by the ORIGINAL nominal slots, not the
// substitution-resolved roster.
func IsDoubles(f match.Fixture) bool {
	return strings.TrimSpace(f.Team1Player2) != "" && strings.TrimSpace(f.Team2Player2) != ""
}

// ServeMarkers projects the serve indicator per side. For doubles, "1" marks
// the side's first server and "2" its second; singles collapse to "1" on the
// serving side. An absent or unrecognized servingPlayer leaves both empty.
func ServeMarkers(f match.Fixture) (string, string) {
	doubles := IsDoubles(f)

	marker := "1"
	if doubles && f.TeamServeCount == 1 {
		marker = "2"
	}

	switch f.ServingPlayer {
	case match.SideOne:
		return marker, ""
	case match.SideTwo:
		return "", marker
	default:
		return "", ""
	}
}

// ServeChanges filters the event log to serve-change entries, preserving
// their stored order.
func ServeChanges(events []match.Event) []match.Event {
	out := make([]match.Event, 0, len(events))
	for _, event := range events {
		switch event.Type {
		case match.EventTypeServeChange, match.EventTypeServeSequenceChange:
			out = append(out, event)
		}
	}

	return out
}

// BuildMatchView assembles the full projection. Every optional source field
// resolves to an explicit default, so the builder is total over any fixture
// the store can return.
func BuildMatchView(f match.Fixture, team1, team2 team.Team) MatchView {
	team1Marker, team2Marker := ServeMarkers(f)

	return MatchView{
		ID:           f.ID,
		TournamentID: f.TournamentID,
		Round:        f.Round,
		Court:        f.Court,
		Date:         f.Date,
		Time:         f.Time,
		Status:       f.EffectiveStatus(),
		GamesCount:   f.EffectiveGamesCount(),
		CurrentGame:  f.CurrentGame,
		IsDoubles:    IsDoubles(f),
		Team1: TeamSlot{
			ID:      f.Team1ID,
			Name:    team1.Name,
			LogoURL: team1.LogoURL,
			Player1: f.Team1Player1,
			Player2: f.Team1Player2,
		},
		Team2: TeamSlot{
			ID:      f.Team2ID,
			Name:    team2.Name,
			LogoURL: team2.LogoURL,
			Player1: f.Team2Player1,
			Player2: f.Team2Player2,
		},
		Scores: normalizedScores(f),
		Serve: ServeBlock{
			ServingPlayer:  f.ServingPlayer,
			TeamServeCount: f.TeamServeCount,
			Team1Marker:    team1Marker,
			Team2Marker:    team2Marker,
		},
		Events:            copyEvents(f.Events),
		Substitutions:     copySubstitutions(f.Substitutions),
		Team1TimeoutsUsed: f.Team1TimeoutsUsed,
		Team2TimeoutsUsed: f.Team2TimeoutsUsed,
		DRSReviewsLeft: map[string]int{
			match.TeamOne: f.ReviewsLeftFor(match.TeamOne),
			match.TeamTwo: f.ReviewsLeftFor(match.TeamTwo),
		},
		StreamURL:     f.StreamURL,
		HighlightsURL: f.HighlightsURL,
	}
}

// BuildScoreView assembles the simplified scoreboard: one row per side with
// substitution-resolved display names, aggregated points and serve markers,
// plus the formatted substitution list.
func BuildScoreView(f match.Fixture, team1, team2 team.Team) ScoreView {
	roster := CurrentRoster(f)
	team1Total, team2Total := GameTotals(f)
	team1Marker, team2Marker := ServeMarkers(f)
	doubles := IsDoubles(f)

	rows := []ScoreRow{
		{
			Team:        match.TeamOne,
			DisplayName: displayName(roster.Team1, doubles),
			TeamName:    team1.Name,
			LogoURL:     team1.LogoURL,
			Points:      team1Total,
			ServeMarker: team1Marker,
		},
		{
			Team:        match.TeamTwo,
			DisplayName: displayName(roster.Team2, doubles),
			TeamName:    team2.Name,
			LogoURL:     team2.LogoURL,
			Points:      team2Total,
			ServeMarker: team2Marker,
		},
	}

	subs := make([]SubstitutionView, 0, len(f.Substitutions))
	for _, sub := range f.Substitutions {
		teamName := team1.Name
		if sub.Team == match.TeamTwo {
			teamName = team2.Name
		}
		subs = append(subs, SubstitutionView{
			Team:      sub.Team,
			TeamName:  teamName,
			PlayerOut: sub.PlayerOut,
			PlayerIn:  sub.PlayerIn,
			Timestamp: sub.Timestamp,
			Game:      sub.Game,
			Score:     sub.Score,
		})
	}

	return ScoreView{
		MatchID:           f.ID,
		IsDoubles:         doubles,
		Rows:              rows,
		Substitutions:     subs,
		SubstitutionCount: len(subs),
	}
}

// BuildEventsView assembles the raw logs plus counters with their 0/1
// defaults and the serve-change subset.
func BuildEventsView(f match.Fixture) EventsView {
	return EventsView{
		MatchID:           f.ID,
		Events:            copyEvents(f.Events),
		Substitutions:     copySubstitutions(f.Substitutions),
		Team1TimeoutsUsed: f.Team1TimeoutsUsed,
		Team2TimeoutsUsed: f.Team2TimeoutsUsed,
		DRSReviewsLeft: map[string]int{
			match.TeamOne: f.ReviewsLeftFor(match.TeamOne),
			match.TeamTwo: f.ReviewsLeftFor(match.TeamTwo),
		},
		ServeChanges: ServeChanges(f.Events),
	}
}

// BuildMatchSummary assembles the list projection from the fixture alone;
// team documents are not needed because display names come from the
// substitution-resolved roster.
func BuildMatchSummary(f match.Fixture) MatchSummary {
	roster := CurrentRoster(f)
	team1Total, team2Total := GameTotals(f)
	team1Marker, team2Marker := ServeMarkers(f)
	doubles := IsDoubles(f)

	return MatchSummary{
		ID:           f.ID,
		TournamentID: f.TournamentID,
		Round:        f.Round,
		Court:        f.Court,
		Date:         f.Date,
		Time:         f.Time,
		Status:       f.EffectiveStatus(),
		IsDoubles:    doubles,
		CurrentGame:  f.CurrentGame,
		Team1: SummarySide{
			TeamID:      f.Team1ID,
			DisplayName: displayName(roster.Team1, doubles),
			Points:      team1Total,
			ServeMarker: team1Marker,
		},
		Team2: SummarySide{
			TeamID:      f.Team2ID,
			DisplayName: displayName(roster.Team2, doubles),
			Points:      team2Total,
			ServeMarker: team2Marker,
		},
	}
}

func displayName(side SidePlayers, doubles bool) string {
	if doubles && strings.TrimSpace(side.Player2) != "" {
		return side.Player1 + " / " + side.Player2
	}
	return side.Player1
}

func normalizedScores(f match.Fixture) map[string]map[string]int {
	out := map[string]map[string]int{
		match.SideOne: {},
		match.SideTwo: {},
	}
	for game := 1; game <= f.EffectiveGamesCount(); game++ {
		key := "game" + strconv.Itoa(game)
		out[match.SideOne][key] = f.ScoreAt(match.SideOne, game)
		out[match.SideTwo][key] = f.ScoreAt(match.SideTwo, game)
	}

	return out
}

func copyEvents(events []match.Event) []match.Event {
	out := make([]match.Event, len(events))
	copy(out, events)
	return out
}

func copySubstitutions(subs []match.Substitution) []match.Substitution {
	out := make([]match.Substitution, len(subs))
	copy(out, subs)
	return out
}
