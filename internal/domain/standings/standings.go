package standings

import (
	"sort"

	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/domain/team"
)

const (
	pointsBattleWin   = 3
	pointsConsolation = 1
)

// Row is one ranked standings line. A "battle" is a match-level result, as
// opposed to the games inside it.
type Row struct {
	Team         team.Team `json:"team"`
	GameWins     int       `json:"gameWins"`
	GameLosses   int       `json:"gameLosses"`
	BattleWins   int       `json:"battleWins"`
	BattleLosses int       `json:"battleLosses"`
	Points       int       `json:"points"`
}

type Table struct {
	Rows         []Row `json:"rows"`
	TotalMatches int   `json:"totalMatches"`
	TotalTeams   int   `json:"totalTeams"`
}

// Compute ranks teams from their completed matches.
//
// Per completed match, each configured game credits a game win to the side
// with the strictly higher score (a tied game credits neither). The side with
// more game wins takes the battle: 3 points. The loser keeps 1 consolation
// point if it won at least one game; a shutout loss earns nothing, and a
// drawn battle awards nothing to either side.
func Compute(teams []team.Team, matches []match.Fixture) Table {
	rows := make([]Row, len(teams))
	index := make(map[string]*Row, len(teams))
	for i, t := range teams {
		rows[i] = Row{Team: t}
		index[t.ID] = &rows[i]
	}

	completed := 0
	for _, fixture := range matches {
		if !match.IsCompletedStatus(fixture.Status) {
			continue
		}
		completed++

		team1Games, team2Games := gameWins(fixture)

		credit(index, fixture.Team1ID, team1Games, team2Games)
		credit(index, fixture.Team2ID, team2Games, team1Games)
	}

	// Stable: teams tied on every key keep their encounter order.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].BattleWins != rows[j].BattleWins {
			return rows[i].BattleWins > rows[j].BattleWins
		}
		diffI := rows[i].GameWins - rows[i].GameLosses
		diffJ := rows[j].GameWins - rows[j].GameLosses
		return diffI > diffJ
	})

	return Table{
		Rows:         rows,
		TotalMatches: completed,
		TotalTeams:   len(teams),
	}
}

func gameWins(fixture match.Fixture) (int, int) {
	team1Games := 0
	team2Games := 0
	for game := 1; game <= fixture.EffectiveGamesCount(); game++ {
		team1Score := fixture.ScoreAt(match.SideOne, game)
		team2Score := fixture.ScoreAt(match.SideTwo, game)
		switch {
		case team1Score > team2Score:
			team1Games++
		case team2Score > team1Score:
			team2Games++
		}
	}

	return team1Games, team2Games
}

func credit(index map[string]*Row, teamID string, ownGames, opponentGames int) {
	row, ok := index[teamID]
	if !ok {
		return
	}

	row.GameWins += ownGames
	row.GameLosses += opponentGames

	switch {
	case ownGames > opponentGames:
		row.BattleWins++
		row.Points += pointsBattleWin
	case ownGames < opponentGames:
		row.BattleLosses++
		if ownGames > 0 {
			row.Points += pointsConsolation
		}
	}
}
