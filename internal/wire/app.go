package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	pgdb "github.com/alanyang/caller-hub/internal/adapter/postgres"
	pgassignment "github.com/alanyang/caller-hub/internal/adapter/postgres/assignment"
	pgcaller "github.com/alanyang/caller-hub/internal/adapter/postgres/caller"
	pgemployee "github.com/alanyang/caller-hub/internal/adapter/postgres/employee"

	assignmentsvc "github.com/alanyang/caller-hub/internal/service/assignment"
	callersvc "github.com/alanyang/caller-hub/internal/service/caller"
	employeesvc "github.com/alanyang/caller-hub/internal/service/employee"
	enginesvc "github.com/alanyang/caller-hub/internal/service/engine"
	schedsvc "github.com/alanyang/caller-hub/internal/service/scheduler"

	"github.com/alanyang/caller-hub/internal/transport"
)

// Job names the admin surface triggers by.
const (
	JobAutoAssignment = "autoAssignment"
	JobHealthCheck    = "healthCheck"
)

// App holds the top-level resources needed to run and gracefully stop the
// server. The Scheduler is owned here and started/stopped by main — never a
// process-global.
type App struct {
	Pool      *pgxpool.Pool
	Server    *http.Server
	Scheduler *schedsvc.Scheduler
	Engine    *enginesvc.Engine
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies.
func Build(ctx context.Context) (*App, error) {
	// ── Database ─────────────────────────────────────────────────────────────
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	pool, err := pgdb.Connect(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	callerRepo := pgcaller.New(pool)
	employeeRepo := pgemployee.New(pool)
	assignmentRepo := pgassignment.New(pool)

	// ── Services ─────────────────────────────────────────────────────────────
	batchSize := envInt("ASSIGN_BATCH_SIZE", enginesvc.DefaultBatchSize)
	engine := enginesvc.New(employeeRepo, callerRepo, assignmentRepo, batchSize)

	callerSvcInstance := callersvc.NewService(callerRepo)
	employeeSvcInstance := employeesvc.NewService(employeeRepo)
	assignmentSvcInstance := assignmentsvc.NewService(assignmentRepo)

	// ── Scheduler ────────────────────────────────────────────────────────────
	sched := schedsvc.New()

	autoInterval := envDuration("AUTO_ASSIGN_INTERVAL_SECONDS", 5*time.Minute)
	if err := sched.Register(JobAutoAssignment, autoInterval, func(ctx context.Context) error {
		_, err := engine.RunAutoAssignment(ctx)
		return err
	}); err != nil {
		pool.Close()
		return nil, fmt.Errorf("registering auto-assignment job: %w", err)
	}

	healthInterval := envDuration("HEALTH_CHECK_INTERVAL_SECONDS", 10*time.Minute)
	if err := sched.Register(JobHealthCheck, healthInterval, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("store unreachable: %w", err)
		}
		slog.InfoContext(ctx, "health check ok")
		return nil
	}); err != nil {
		pool.Close()
		return nil, fmt.Errorf("registering health check job: %w", err)
	}

	// ── Transport ────────────────────────────────────────────────────────────
	router := transport.NewRouter(
		callerSvcInstance,
		employeeSvcInstance,
		assignmentSvcInstance,
		sched,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	slog.Info("application wired",
		"port", port,
		"auto_assign_interval", autoInterval,
		"health_check_interval", healthInterval,
		"assign_batch_size", batchSize,
	)

	return &App{
		Pool:      pool,
		Server:    server,
		Scheduler: sched,
		Engine:    engine,
	}, nil
}

// envDuration reads an integer-seconds env var and returns a Duration.
// Falls back to defaultVal if the var is unset or invalid.
func envDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
