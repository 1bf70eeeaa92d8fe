package postgres

import (
	"strings"
	"testing"

	"github.com/lib/pq"

	"github.com/riskibarqy/courtside/internal/domain/match"
)

func TestBuildMatchListQuery_NoFilter(t *testing.T) {
	t.Parallel()

	query, args := buildMatchListQuery(match.ListFilter{})

	if !strings.Contains(query, "deleted_at IS NULL") {
		t.Fatalf("missing soft-delete clause: %s", query)
	}
	if !strings.Contains(query, "ORDER BY match_date, match_time, id") {
		t.Fatalf("unexpected order clause: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildMatchListQuery_AllFilters(t *testing.T) {
	t.Parallel()

	query, args := buildMatchListQuery(match.ListFilter{
		TournamentID: "open-2026",
		Statuses:     []string{"LIVE", match.StatusInProgress},
		Date:         "2026-08-28",
		Limit:        5,
		NewestFirst:  true,
	})

	for _, want := range []string{
		"tournament_id = $1",
		"status = ANY($2)",
		"match_date = $3",
		"ORDER BY match_date DESC, match_time DESC, id",
		"LIMIT $4",
	} {
		if !strings.Contains(query, want) {
			t.Fatalf("query missing %q: %s", want, query)
		}
	}

	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %v", args)
	}
	statuses, ok := args[1].(pq.StringArray)
	if !ok || statuses[0] != match.StatusLive {
		t.Fatalf("statuses not normalized into array: %v", args[1])
	}
}
