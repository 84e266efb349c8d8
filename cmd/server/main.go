/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the commission engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags, then overlay environment variables
  2. Initialize SQLite store
  3. Load the commission plan (file or shipped defaults)
  4. Create API handler with dependencies
  5. Start server with graceful shutdown

CONFIGURATION:
  Flags set the defaults; a set environment variable wins.

  -addr  / ADDRESS      Listen address (default :8080)
  -db    / DATABASE_PATH SQLite database path (default commission.db,
                        ":memory:" for in-memory)
  -plan  / PLAN_FILE    Commission plan file, JSON or YAML (optional;
                        shipped defaults otherwise)
  -coach / COACH_URL    Coaching service base URL (optional; the coach
                        degrades to a fixed apology when unset)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/store.db"

  # Run with a custom plan
  ./server -plan=./plan.yaml

SEE ALSO:
  - api/server.go: Router configuration
  - factory/plan.go: Plan file format
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/mcbanda/commission-engine/api"
	"github.com/mcbanda/commission-engine/coach"
	"github.com/mcbanda/commission-engine/commission"
	"github.com/mcbanda/commission-engine/factory"
	"github.com/mcbanda/commission-engine/store/sqlite"
)

type config struct {
	Addr     string `env:"ADDRESS"`
	DBPath   string `env:"DATABASE_PATH"`
	PlanFile string `env:"PLAN_FILE"`
	CoachURL string `env:"COACH_URL"`
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.Addr, "addr", ":8080", "listen address")
	flag.StringVar(&cfg.DBPath, "db", "commission.db", "SQLite database path")
	flag.StringVar(&cfg.PlanFile, "plan", "", "commission plan file (JSON or YAML)")
	flag.StringVar(&cfg.CoachURL, "coach", "", "coaching service base URL")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	if err := env.Parse(&cfg); err != nil {
		log.Fatal("failed to parse environment", zap.Error(err))
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer store.Close()

	plan := commission.DefaultPlan()
	if cfg.PlanFile != "" {
		plan, err = factory.LoadPlanFile(cfg.PlanFile)
		if err != nil {
			log.Fatal("failed to load plan", zap.String("file", cfg.PlanFile), zap.Error(err))
		}
		log.Info("loaded commission plan", zap.String("file", cfg.PlanFile))
	}

	engine := commission.NewEngine(store, plan)
	handler := api.NewHandler(engine, coach.NewClient(cfg.CoachURL, log), log)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
