package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/usecase"
)

type Handler struct {
	matchService *usecase.MatchService
	queryService *usecase.QueryService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	queryService *usecase.QueryService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService: matchService,
		queryService: queryService,
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	view, err := h.matchService.GetMatchView(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchScore")
	defer span.End()

	matchID := r.PathValue("matchID")
	view, err := h.matchService.GetScoreView(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match score failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchEvents")
	defer span.End()

	matchID := r.PathValue("matchID")
	view, err := h.matchService.GetEventsView(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match events failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

type listMatchesQuery struct {
	Tournament string `validate:"omitempty,max=100"`
	Status     string `validate:"omitempty,max=200"`
	Date       string `validate:"omitempty,datetime=2006-01-02"`
	Limit      int    `validate:"omitempty,min=1,max=200"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := listMatchesQuery{
		Tournament: strings.TrimSpace(r.URL.Query().Get("tournament")),
		Status:     strings.TrimSpace(r.URL.Query().Get("status")),
		Date:       strings.TrimSpace(r.URL.Query().Get("date")),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
			return
		}
		query.Limit = limit
	}
	if err := h.validator.StructCtx(ctx, query); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	filter := match.ListFilter{
		TournamentID: query.Tournament,
		Date:         query.Date,
		Limit:        query.Limit,
	}
	if query.Status != "" {
		filter.Statuses = strings.Split(query.Status, ",")
	}

	summaries, err := h.matchService.ListMatches(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaries)
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	tournamentID := strings.TrimSpace(r.URL.Query().Get("tournament"))
	items, err := h.queryService.ListLiveMatches(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list live matches failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	items, err := h.queryService.ListTournaments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTournamentBundle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournamentBundle")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	bundle, err := h.queryService.GetTournamentBundle(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament bundle failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bundle)
}

func (h *Handler) ListTournamentTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournamentTeams")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	items, err := h.queryService.ListTeams(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTournamentStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournamentStandings")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	table, err := h.queryService.GetStandings(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, table)
}

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	home, err := h.queryService.GetHomeContent(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get home content failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, home)
}

func (h *Handler) GetCacheStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCacheStats")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.queryService.CacheStats(ctx))
}

func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearCache")
	defer span.End()

	h.queryService.InvalidateAll(ctx)
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "cleared"})
}
