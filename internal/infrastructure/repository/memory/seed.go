package memory

import (
	"github.com/riskibarqy/courtside/internal/domain/content"
	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/tournament"
)

const (
	TournamentIDJakartaOpen = "idn-jakarta-open-2026"
	TournamentIDLigaPB      = "idn-liga-pb-2026"
)

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:        TournamentIDJakartaOpen,
			Name:      "Jakarta Open",
			Season:    "2026",
			Location:  "Istora Senayan, Jakarta",
			StartDate: "2026-08-24",
			EndDate:   "2026-08-30",
			Status:    "ongoing",
		},
		{
			ID:        TournamentIDLigaPB,
			Name:      "Liga PB Nasional",
			Season:    "2026",
			Location:  "GOR Bandung",
			StartDate: "2026-09-07",
			EndDate:   "2026-11-15",
			Status:    "upcoming",
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:           "idn-jakarta-aces",
			TournamentID: TournamentIDJakartaOpen,
			Name:         "Jakarta Aces",
			Players:      []string{"Arif Putra", "Bima Santoso", "Eko Wibowo", "Fajar Nugroho"},
		},
		{
			ID:           "idn-bandung-breakers",
			TournamentID: TournamentIDJakartaOpen,
			Name:         "Bandung Breakers",
			Players:      []string{"Candra Wijaya", "Dimas Prasetyo", "Gilang Ramadhan"},
		},
		{
			ID:           "idn-surabaya-smashers",
			TournamentID: TournamentIDJakartaOpen,
			Name:         "Surabaya Smashers",
			Players:      []string{"Hendra Gunawan", "Indra Lesmana", "Joko Susilo"},
		},
		{
			ID:           "idn-medan-drives",
			TournamentID: TournamentIDJakartaOpen,
			Name:         "Medan Drives",
			Players:      []string{"Kurnia Sandi", "Lukman Hakim"},
		},
	}
}

func SeedMatches() []match.Fixture {
	return []match.Fixture{
		{
			ID:           "jkt-open-qf-1",
			TournamentID: TournamentIDJakartaOpen,
			Round:        "Quarter Final",
			Court:        "Court 1",
			Date:         "2026-08-28",
			Time:         "19:00",
			Status:       match.StatusLive,
			GamesCount:   3,
			Team1ID:      "idn-jakarta-aces",
			Team2ID:      "idn-bandung-breakers",
			Team1Player1: "Arif Putra",
			Team1Player2: "Bima Santoso",
			Team2Player1: "Candra Wijaya",
			Team2Player2: "Dimas Prasetyo",
			Scores: map[string]map[string]any{
				match.SideOne: {"game1": 21, "game2": 10},
				match.SideTwo: {"game1": 18, "game2": 9},
			},
			CurrentGame:    2,
			ServingPlayer:  match.SideOne,
			TeamServeCount: 0,
			Substitutions: []match.Substitution{
				{
					Team:      match.TeamOne,
					PlayerOut: "Bima Santoso",
					PlayerIn:  "Eko Wibowo",
					Timestamp: "2026-08-28T19:42:10Z",
					Game:      2,
					Score:     "5-4",
				},
			},
			Events: []match.Event{
				{Type: "point", Game: 1, Team: match.TeamOne, Detail: "21-18", Timestamp: "2026-08-28T19:31:02Z"},
				{Type: match.EventTypeServeChange, Game: 2, Team: match.TeamOne, Timestamp: "2026-08-28T19:40:55Z"},
			},
			Team1TimeoutsUsed: 1,
			DRSReviewsLeft:    map[string]int{match.TeamOne: 1, match.TeamTwo: 0},
		},
		{
			ID:           "jkt-open-r16-3",
			TournamentID: TournamentIDJakartaOpen,
			Round:        "Round of 16",
			Court:        "Court 2",
			Date:         "2026-08-27",
			Time:         "17:00",
			Status:       match.StatusCompleted,
			GamesCount:   3,
			Team1ID:      "idn-surabaya-smashers",
			Team2ID:      "idn-medan-drives",
			Team1Player1: "Hendra Gunawan",
			Team2Player1: "Kurnia Sandi",
			Scores: map[string]map[string]any{
				match.SideOne: {"game1": 21, "game2": 19, "game3": 21},
				match.SideTwo: {"game1": 16, "game2": 21, "game3": 17},
			},
		},
		{
			ID:           "jkt-open-sf-1",
			TournamentID: TournamentIDJakartaOpen,
			Round:        "Semi Final",
			Court:        "Court 1",
			Date:         "2026-08-29",
			Time:         "18:30",
			Team1ID:      "idn-jakarta-aces",
			Team2ID:      "idn-surabaya-smashers",
			Team1Player1: "Arif Putra",
			Team2Player1: "Hendra Gunawan",
		},
	}
}

func SeedNews() []content.NewsItem {
	return []content.NewsItem{
		{
			ID:          "news-001",
			Title:       "Aces edge Breakers in opening game thriller",
			Summary:     "A 21-18 opener sets up a tense quarter final at Istora.",
			PublishedAt: "2026-08-28T20:00:00Z",
		},
		{
			ID:          "news-002",
			Title:       "Liga PB Nasional draw announced",
			Summary:     "Sixteen clubs enter the national league season.",
			PublishedAt: "2026-08-26T09:00:00Z",
		},
	}
}

func SeedVideos() []content.VideoItem {
	return []content.VideoItem{
		{
			ID:          "video-001",
			Title:       "Quarter final highlights: Aces vs Breakers",
			Duration:    "04:12",
			PublishedAt: "2026-08-28T21:30:00Z",
		},
	}
}
