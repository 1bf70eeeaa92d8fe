package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/courtside/internal/domain/tournament"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

const selectTournamentsQuery = `
SELECT doc
FROM tournaments
WHERE deleted_at IS NULL
ORDER BY start_date DESC, id`

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	var rows [][]byte
	if err := r.db.SelectContext(ctx, &rows, selectTournamentsQuery); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, raw := range rows {
		var item tournament.Tournament
		if err := decodeDoc(raw, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

const selectTournamentByIDQuery = `
SELECT doc
FROM tournaments
WHERE public_id = $1 AND deleted_at IS NULL`

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, selectTournamentByIDQuery, tournamentID); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("select tournament by id: %w", err)
	}

	var item tournament.Tournament
	if err := decodeDoc(raw, &item); err != nil {
		return tournament.Tournament{}, false, err
	}
	return item, true, nil
}
