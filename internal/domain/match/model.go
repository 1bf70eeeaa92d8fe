package match

import (
	"strconv"
	"strings"
)

const (
	StatusScheduled  = "scheduled"
	StatusLive       = "live"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Serving side keys as they appear on stored fixture documents.
const (
	SideOne = "player1"
	SideTwo = "player2"
)

// Substitution team keys.
const (
	TeamOne = "team1"
	TeamTwo = "team2"
)

const defaultGamesCount = 3

// Fixture is one scheduled/ongoing/completed match record as stored in the
// backing document store. Raw fields may be absent; readers go through the
// defaulting accessors below instead of trusting zero values.
type Fixture struct {
	ID           string `json:"id"`
	TournamentID string `json:"tournamentId"`
	Round        string `json:"round"`
	Court        string `json:"court"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	GamesCount   int    `json:"gamesCount"`

	Team1ID      string `json:"team1Id"`
	Team2ID      string `json:"team2Id"`
	Team1Player1 string `json:"team1Player1"`
	Team1Player2 string `json:"team1Player2"`
	Team2Player1 string `json:"team2Player1"`
	Team2Player2 string `json:"team2Player2"`

	// Scores is sparse: side key ("player1"/"player2") -> game key
	// ("game1".."gameN") -> raw value. Absent games were not played yet.
	Scores      map[string]map[string]any `json:"scores"`
	CurrentGame int                       `json:"currentGame"`

	ServingPlayer  string `json:"servingPlayer"`
	TeamServeCount int    `json:"teamServeCount"`

	// Substitutions replay in stored order, never re-sorted by timestamp.
	Substitutions []Substitution `json:"substitutions"`
	Events        []Event        `json:"events"`

	Team1TimeoutsUsed int            `json:"team1TimeoutsUsed"`
	Team2TimeoutsUsed int            `json:"team2TimeoutsUsed"`
	DRSReviewsLeft    map[string]int `json:"drsReviewsLeft"`

	StreamURL     string `json:"streamUrl"`
	HighlightsURL string `json:"highlightsUrl"`
}

// Substitution swaps one player of a side. Score is display-only context
// captured at substitution time.
type Substitution struct {
	Team      string `json:"team"`
	PlayerOut string `json:"playerOut"`
	PlayerIn  string `json:"playerIn"`
	Timestamp string `json:"timestamp"`
	Game      int    `json:"game"`
	Score     string `json:"score"`
}

// Event is one tagged entry of the fixture's append-only event log.
type Event struct {
	Type      string `json:"type"`
	Game      int    `json:"game"`
	Team      string `json:"team"`
	Detail    string `json:"detail"`
	Timestamp string `json:"timestamp"`
}

const (
	EventTypeServeChange         = "serve_change"
	EventTypeServeSequenceChange = "serve_sequence_change"
)

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, StatusInProgress:
		return true
	default:
		return false
	}
}

func IsCompletedStatus(status string) bool {
	return NormalizeStatus(status) == StatusCompleted
}

// EffectiveStatus applies the scheduled default for records missing a status.
func (f Fixture) EffectiveStatus() string {
	return NormalizeStatus(f.Status)
}

// EffectiveGamesCount applies the 3-game default for unconfigured fixtures.
func (f Fixture) EffectiveGamesCount() int {
	if f.GamesCount > 0 {
		return f.GamesCount
	}
	return defaultGamesCount
}

// ScoreAt reads one side's score for a 1-based game index. Missing and
// non-numeric values contribute 0; a score once written is never mutated here.
func (f Fixture) ScoreAt(side string, game int) int {
	byGame, ok := f.Scores[side]
	if !ok {
		return 0
	}
	return coerceInt(byGame[gameKey(game)])
}

// ReviewsLeftFor defaults to one review per side when unset.
func (f Fixture) ReviewsLeftFor(teamKey string) int {
	if value, ok := f.DRSReviewsLeft[teamKey]; ok {
		return value
	}
	return 1
}

func gameKey(game int) string {
	return "game" + strconv.Itoa(game)
}

func coerceInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
