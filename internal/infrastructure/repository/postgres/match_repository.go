package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/courtside/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

const selectMatchByIDQuery = `
SELECT doc
FROM matches
WHERE public_id = $1 AND deleted_at IS NULL`

func (r *MatchRepository) GetByID(ctx context.Context, fixtureID string) (match.Fixture, bool, error) {
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, selectMatchByIDQuery, fixtureID); err != nil {
		if isNotFound(err) {
			return match.Fixture{}, false, nil
		}
		return match.Fixture{}, false, fmt.Errorf("select match by id: %w", err)
	}

	var fixture match.Fixture
	if err := decodeDoc(raw, &fixture); err != nil {
		return match.Fixture{}, false, err
	}
	return fixture, true, nil
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Fixture, error) {
	query, args := buildMatchListQuery(filter)

	var rows [][]byte
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Fixture, 0, len(rows))
	for _, raw := range rows {
		var fixture match.Fixture
		if err := decodeDoc(raw, &fixture); err != nil {
			return nil, err
		}
		out = append(out, fixture)
	}
	return out, nil
}

func buildMatchListQuery(filter match.ListFilter) (string, []any) {
	var (
		clauses = []string{"deleted_at IS NULL"}
		args    []any
	)
	arg := func(value any) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.TournamentID != "" {
		clauses = append(clauses, "tournament_id = "+arg(filter.TournamentID))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, match.NormalizeStatus(status))
		}
		clauses = append(clauses, "status = ANY("+arg(pq.StringArray(statuses))+")")
	}
	if filter.Date != "" {
		clauses = append(clauses, "match_date = "+arg(filter.Date))
	}

	order := "match_date, match_time, id"
	if filter.NewestFirst {
		order = "match_date DESC, match_time DESC, id"
	}

	query := "SELECT doc FROM matches WHERE " + strings.Join(clauses, " AND ") +
		" ORDER BY " + order
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}

	return query, args
}

const upsertMatchQuery = `
INSERT INTO matches (public_id, tournament_id, status, match_date, match_time, doc)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (public_id)
DO UPDATE SET
    tournament_id = EXCLUDED.tournament_id,
    status = EXCLUDED.status,
    match_date = EXCLUDED.match_date,
    match_time = EXCLUDED.match_time,
    doc = EXCLUDED.doc,
    deleted_at = NULL,
    updated_at = NOW()`

func (r *MatchRepository) Upsert(ctx context.Context, fixtures []match.Fixture) error {
	if len(fixtures) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, fixture := range fixtures {
		if fixture.ID == "" {
			continue
		}
		raw, err := encodeDoc(fixture)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, upsertMatchQuery,
			fixture.ID,
			fixture.TournamentID,
			fixture.EffectiveStatus(),
			fixture.Date,
			fixture.Time,
			raw,
		); err != nil {
			return fmt.Errorf("upsert match %s: %w", fixture.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert matches tx: %w", err)
	}
	return nil
}
