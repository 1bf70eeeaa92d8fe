package matchview

import "github.com/riskibarqy/courtside/internal/domain/match"

// MatchView is the full read projection of a fixture. It exposes the nominal
// player slots (not substitution-resolved) plus the raw logs, so legacy
// consumers keep seeing the record shape they always had.
type MatchView struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournamentId"`
	Round        string `json:"round"`
	Court        string `json:"court"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	GamesCount   int    `json:"gamesCount"`
	CurrentGame  int    `json:"currentGame"`
	IsDoubles    bool   `json:"isDoubles"`

	Team1 TeamSlot `json:"team1"`
	Team2 TeamSlot `json:"team2"`

	Scores map[string]map[string]int `json:"scores"`
	Serve  ServeBlock                `json:"serve"`

	Events        []match.Event        `json:"events"`
	Substitutions []match.Substitution `json:"substitutions"`

	Team1TimeoutsUsed int            `json:"team1TimeoutsUsed"`
	Team2TimeoutsUsed int            `json:"team2TimeoutsUsed"`
	DRSReviewsLeft    map[string]int `json:"drsReviewsLeft"`

	StreamURL     string `json:"streamUrl"`
	HighlightsURL string `json:"highlightsUrl"`
}

// TeamSlot is one side's identity plus its nominal player slots.
type TeamSlot struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
	Player1 string `json:"player1"`
	Player2 string `json:"player2,omitempty"`
}

// ServeBlock mirrors scoreboard serve-rotation display: "1" first server,
// "2" second server of a doubles side, empty for the non-serving side.
type ServeBlock struct {
	ServingPlayer  string `json:"servingPlayer"`
	TeamServeCount int    `json:"teamServeCount"`
	Team1Marker    string `json:"team1Marker"`
	Team2Marker    string `json:"team2Marker"`
}

// ScoreView is the simplified scoreboard projection. Display names here ARE
// substitution-resolved, unlike the full view.
type ScoreView struct {
	MatchID           string             `json:"matchId"`
	IsDoubles         bool               `json:"isDoubles"`
	Rows              []ScoreRow         `json:"rows"`
	Substitutions     []SubstitutionView `json:"substitutions"`
	SubstitutionCount int                `json:"substitutionCount"`
}

type ScoreRow struct {
	Team        string `json:"team"`
	DisplayName string `json:"displayName"`
	TeamName    string `json:"teamName"`
	LogoURL     string `json:"logoUrl"`
	Points      int    `json:"points"`
	ServeMarker string `json:"serveMarker"`
}

type SubstitutionView struct {
	Team      string `json:"team"`
	TeamName  string `json:"teamName"`
	PlayerOut string `json:"playerOut"`
	PlayerIn  string `json:"playerIn"`
	Timestamp string `json:"timestamp"`
	Game      int    `json:"game"`
	Score     string `json:"score"`
}

// EventsView carries the raw logs plus the serve-change subset.
type EventsView struct {
	MatchID           string               `json:"matchId"`
	Events            []match.Event        `json:"events"`
	Substitutions     []match.Substitution `json:"substitutions"`
	Team1TimeoutsUsed int                  `json:"team1TimeoutsUsed"`
	Team2TimeoutsUsed int                  `json:"team2TimeoutsUsed"`
	DRSReviewsLeft    map[string]int       `json:"drsReviewsLeft"`
	ServeChanges      []match.Event        `json:"serveChanges"`
}

// MatchSummary is the list-endpoint projection: identity, schedule and
// per-side aggregated score, without the raw logs.
type MatchSummary struct {
	ID           string      `json:"id"`
	TournamentID string      `json:"tournamentId"`
	Round        string      `json:"round"`
	Court        string      `json:"court"`
	Date         string      `json:"date"`
	Time         string      `json:"time"`
	Status       string      `json:"status"`
	IsDoubles    bool        `json:"isDoubles"`
	CurrentGame  int         `json:"currentGame"`
	Team1        SummarySide `json:"team1"`
	Team2        SummarySide `json:"team2"`
}

type SummarySide struct {
	TeamID      string `json:"teamId"`
	DisplayName string `json:"displayName"`
	Points      int    `json:"points"`
	ServeMarker string `json:"serveMarker"`
}

// Roster is the post-substitution lineup of both sides.
type Roster struct {
	Team1 SidePlayers `json:"team1"`
	Team2 SidePlayers `json:"team2"`
}

type SidePlayers struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2,omitempty"`
}
