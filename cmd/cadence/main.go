package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avezina/cadence/internal/builder"
	"github.com/avezina/cadence/internal/cli"
	"github.com/avezina/cadence/internal/db"
	"github.com/avezina/cadence/internal/llm"
	"github.com/avezina/cadence/internal/repository"
	"github.com/avezina/cadence/internal/runner"
	"github.com/avezina/cadence/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	godotenv.Load()

	plans, log, err := openBackend()
	if err != nil {
		return err
	}

	// Wire the text-generation collaborator (only when enabled; the
	// builder falls back to fixed values without it).
	var client llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewChatClient(llmCfg, observer)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	app := &cli.App{
		Plans:  service.NewPlanService(plans, builder.New(client, rng), rng),
		Runner: runner.New(plans, log, runner.NewLogObserver(os.Stderr, true), runnerOptions()...),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// openBackend selects the persistence backend. JSON files under the
// plans directory are the default and the external contract; setting
// CADENCE_BACKEND=sqlite switches both the plan store and the execution
// log to a SQLite database.
func openBackend() (repository.PlanStore, repository.ExecutionLog, error) {
	if os.Getenv("CADENCE_BACKEND") == "sqlite" {
		dbPath := os.Getenv("CADENCE_DB")
		if dbPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("finding home directory: %w", err)
			}
			dbPath = filepath.Join(home, ".cadence", "cadence.db")
		}
		database, err := db.OpenDB(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLitePlanStore(database), repository.NewSQLiteExecutionLog(database), nil
	}

	plansDir := os.Getenv("CADENCE_PLANS_DIR")
	if plansDir == "" {
		plansDir = "plans"
	}
	logPath := os.Getenv("CADENCE_LOG_FILE")
	if logPath == "" {
		logPath = "executed_actions.json"
	}

	plans, err := repository.NewFSPlanStore(plansDir)
	if err != nil {
		return nil, nil, err
	}
	log, err := repository.NewFSExecutionLog(logPath)
	if err != nil {
		return nil, nil, err
	}
	return plans, log, nil
}

func runnerOptions() []runner.Option {
	var opts []runner.Option
	if v := os.Getenv("CADENCE_POLL_INTERVAL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts = append(opts, runner.WithInterval(time.Duration(n)*time.Second))
		}
	}
	return opts
}
