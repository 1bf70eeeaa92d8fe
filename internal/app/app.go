package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/domain/content"
	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/riskibarqy/courtside/internal/domain/tournament"
	"github.com/riskibarqy/courtside/internal/infrastructure/realtime"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/courtside/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/courtside/internal/interfaces/httpapi"
	"github.com/riskibarqy/courtside/internal/platform/cache"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/resilience"
	"github.com/riskibarqy/courtside/internal/usecase"
)

// App owns the wired service graph plus its background loops: the cache
// sweeper and, when the gateway is configured, the live snapshot poller.
type App struct {
	cfg        config.Config
	logger     *logging.Logger
	cache      *cache.Store
	db         *sqlx.DB
	server     *http.Server
	runner     *realtime.Runner
	dispatcher *realtime.Dispatcher
}

type repositories struct {
	tournaments tournament.Repository
	matches     match.Repository
	matchWriter match.Writer
	teams       team.Repository
	contents    content.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store := cache.NewStore(cfg.CacheTTLOverrides)

	a := &App{
		cfg:    cfg,
		logger: logger,
		cache:  store,
	}

	repos, err := a.buildRepositories(ctx)
	if err != nil {
		return nil, err
	}

	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, logger)
	querySvc := usecase.NewQueryService(
		store,
		repos.tournaments,
		repos.matches,
		repos.matchWriter,
		repos.teams,
		repos.contents,
		logger,
		cfg.RecentResultsLimit,
	)

	handler := httpapi.NewHandler(matchSvc, querySvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	a.server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if a.server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	if cfg.GatewayEnabled {
		if err := a.buildRealtime(querySvc); err != nil {
			return nil, err
		}
	} else {
		logger.Info("live gateway disabled", "reason", "GATEWAY_ENABLED=false")
	}

	return a, nil
}

func (a *App) buildRepositories(ctx context.Context) (repositories, error) {
	switch a.cfg.StorageMode {
	case config.StoragePostgres:
		db, err := otelsqlx.ConnectContext(ctx, "postgres",
			normalizeDBURL(a.cfg.DBURL, a.cfg.DBDisablePreparedBinary),
			otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
			otelsql.WithDBName(dbNameFromURL(a.cfg.DBURL)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return repositories{}, fmt.Errorf("connect postgres: %w", err)
		}
		a.db = db

		matchRepo := postgres.NewMatchRepository(db)
		return repositories{
			tournaments: postgres.NewTournamentRepository(db),
			matches:     matchRepo,
			matchWriter: matchRepo,
			teams:       postgres.NewTeamRepository(db),
			contents:    postgres.NewContentRepository(db),
		}, nil
	default:
		matchRepo := memory.NewMatchRepository(memory.SeedMatches())
		return repositories{
			tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
			matches:     matchRepo,
			matchWriter: matchRepo,
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			contents:    memory.NewContentRepository(memory.SeedNews(), memory.SeedVideos()),
		}, nil
	}
}

func (a *App) buildRealtime(querySvc *usecase.QueryService) error {
	client := realtime.NewClient(realtime.ClientConfig{
		BaseURL:     a.cfg.GatewayBaseURL,
		Token:       a.cfg.GatewayToken,
		PollTimeout: a.cfg.GatewayPollTimeout,
		MaxRetries:  a.cfg.GatewayMaxRetries,
		Logger:      a.logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          a.cfg.GatewayCircuitEnabled,
			FailureThreshold: a.cfg.GatewayCircuitFailureCount,
			OpenTimeout:      a.cfg.GatewayCircuitOpenTimeout,
			HalfOpenMaxReq:   a.cfg.GatewayCircuitHalfOpenMax,
		},
	})

	dispatcher, err := realtime.NewDispatcher(a.cfg.GatewayDispatchWorkers, a.logger)
	if err != nil {
		return err
	}
	dispatcher.Subscribe("query-service", func(ctx context.Context, fixtures []match.Fixture) error {
		return querySvc.ApplyLiveSnapshot(ctx, fixtures)
	})

	a.dispatcher = dispatcher
	a.runner = realtime.NewRunner(client, dispatcher, a.logger)
	return nil
}

// Run starts the background loops and the HTTP listener, then blocks until
// the context is canceled or the listener fails.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.cache.RunSweeper(ctx, a.cfg.CacheSweepInterval)
	if a.runner != nil {
		go a.runner.Run(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", a.cfg.HTTPAddr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		return nil
	}
}

// Shutdown drains the HTTP server and closes the shared resources.
func (a *App) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if a.dispatcher != nil {
		a.dispatcher.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
	}

	return errors.Join(errs...)
}
