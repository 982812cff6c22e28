package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caseflow/caseflow/internal/adapter/memory"
	pgdb "github.com/caseflow/caseflow/internal/adapter/postgres"
	pgagent "github.com/caseflow/caseflow/internal/adapter/postgres/agent"
	pganalytics "github.com/caseflow/caseflow/internal/adapter/postgres/analytics"
	pgeventbus "github.com/caseflow/caseflow/internal/adapter/postgres/eventbus"
	pghistory "github.com/caseflow/caseflow/internal/adapter/postgres/history"
	pgidempotency "github.com/caseflow/caseflow/internal/adapter/postgres/idempotency"
	pglocker "github.com/caseflow/caseflow/internal/adapter/postgres/locker"
	pgqueue "github.com/caseflow/caseflow/internal/adapter/postgres/queue"
	pgworkitem "github.com/caseflow/caseflow/internal/adapter/postgres/workitem"

	"github.com/caseflow/caseflow/internal/domain/policy"

	agentsvc "github.com/caseflow/caseflow/internal/service/agent"
	dispatchersvc "github.com/caseflow/caseflow/internal/service/dispatcher"
	historysvc "github.com/caseflow/caseflow/internal/service/history"
	queuesvc "github.com/caseflow/caseflow/internal/service/queue"
	rebalancesvc "github.com/caseflow/caseflow/internal/service/rebalance"
	selectorsvc "github.com/caseflow/caseflow/internal/service/selector"
	workloadsvc "github.com/caseflow/caseflow/internal/service/workload"

	"github.com/caseflow/caseflow/internal/transport"
	wshandler "github.com/caseflow/caseflow/internal/transport/ws"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool     *pgxpool.Pool
	Server   *http.Server
	QueueSvc *queuesvc.Service
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies.
func Build(ctx context.Context) (*App, error) {
	// ── Database ─────────────────────────────────────────────────────────────
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	pool, err := pgdb.Connect(ctx, dbURL, envInt32("DB_MAX_CONNS", 0))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	cfg := configFromEnv()

	// ── Adapters ─────────────────────────────────────────────────────────────
	itemRepo := pgworkitem.New(pool)
	agentRepo := pgagent.New(pool)
	queueRepo := pgqueue.New(pool)
	historyRepo := pghistory.New(pool)
	perfReader := pganalytics.New(pool)
	idemRepo := pgidempotency.New(pool)
	eventBus := pgeventbus.New(pool)
	locker := pglocker.New(pool)
	rosterCache := memory.NewCache()

	// ── Services ─────────────────────────────────────────────────────────────
	selSvc := selectorsvc.NewService(cfg.Weights)
	agentSvcInstance := agentsvc.NewService(agentRepo, rosterCache, eventBus, cfg)
	workloadSvcInstance := workloadsvc.NewService(itemRepo)
	historySvcInstance := historysvc.NewService(historyRepo)

	hub := wshandler.NewHub()

	dispSvc := dispatchersvc.NewService(
		itemRepo,
		itemRepo, // implements port/agent.LoadReader
		agentSvcInstance,
		queueRepo,
		selSvc,
		hub, // implements port/notifier.AssignmentNotifier
		eventBus,
		cfg,
	)

	queueSvcInstance := queuesvc.NewService(queueRepo, itemRepo, dispSvc, historyRepo, eventBus, locker, cfg)
	rebalanceSvcInstance := rebalancesvc.NewService(itemRepo, itemRepo, dispSvc, selSvc, perfReader, locker, cfg)

	// ── Transport ─────────────────────────────────────────────────────────────
	router := transport.NewRouter(
		ctx,
		dispSvc,
		queueSvcInstance,
		agentSvcInstance,
		workloadSvcInstance,
		historySvcInstance,
		rebalanceSvcInstance,
		idemRepo,
		eventBus,
		hub,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	slog.Info("application wired", "port", port, "strategy", cfg.Strategy, "capacity", cfg.Capacity)

	app := &App{
		Pool:     pool,
		Server:   server,
		QueueSvc: queueSvcInstance,
	}

	// ── Event-Driven Queue Drainer ────────────────────────────────────────────
	startDrainer(ctx, app, eventBus)

	return app, nil
}

// configFromEnv layers environment overrides on top of the policy defaults.
func configFromEnv() policy.Config {
	cfg := policy.Default

	if v := os.Getenv("AGENT_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Capacity = n
		}
	}
	if v := os.Getenv("ASSIGNMENT_STRATEGY"); v != "" {
		s := policy.Strategy(v)
		if s.Valid() {
			cfg.Strategy = s
		} else {
			slog.Warn("ignoring invalid ASSIGNMENT_STRATEGY", "value", v)
		}
	}
	if v := os.Getenv("DRAIN_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DrainBatchSize = n
		}
	}
	cfg.StaleClaimAfter = envDuration("STALE_CLAIM_SECONDS", cfg.StaleClaimAfter)
	cfg.PerformanceWindow = envDuration("PERFORMANCE_WINDOW_SECONDS", cfg.PerformanceWindow)

	return cfg
}

func envInt32(key string, fallback int32) int32 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return int32(n)
		}
	}
	return fallback
}
