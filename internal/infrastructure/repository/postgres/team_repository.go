package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/courtside/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

const selectTeamByIDQuery = `
SELECT doc
FROM teams
WHERE public_id = $1 AND deleted_at IS NULL`

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, selectTeamByIDQuery, teamID); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	var item team.Team
	if err := decodeDoc(raw, &item); err != nil {
		return team.Team{}, false, err
	}
	return item, true, nil
}

const selectTeamsByTournamentQuery = `
SELECT doc
FROM teams
WHERE tournament_id = $1 AND deleted_at IS NULL
ORDER BY id`

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	var rows [][]byte
	if err := r.db.SelectContext(ctx, &rows, selectTeamsByTournamentQuery, tournamentID); err != nil {
		return nil, fmt.Errorf("select teams by tournament: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, raw := range rows {
		var item team.Team
		if err := decodeDoc(raw, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
