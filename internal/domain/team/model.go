package team

import "fmt"

// Team is reference data owned by the backing store. The view deriver only
// reads it, never mutates it.
type Team struct {
	ID           string   `json:"id"`
	TournamentID string   `json:"tournamentId"`
	Name         string   `json:"name"`
	LogoURL      string   `json:"logoUrl"`
	Players      []string `json:"players"`
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
