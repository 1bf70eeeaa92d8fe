package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/score", handler.GetMatchScore)
	mux.HandleFunc("GET /v1/matches/{matchID}/events", handler.GetMatchEvents)

	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournamentBundle)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/teams", handler.ListTournamentTeams)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", handler.GetTournamentStandings)

	mux.HandleFunc("GET /v1/home", handler.GetHome)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("GET /v1/internal/cache/stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.GetCacheStats)))
	mux.Handle("POST /v1/internal/cache/clear", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ClearCache)))
}
