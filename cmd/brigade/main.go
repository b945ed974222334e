package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/evmartin/brigade/internal/cli"
	"github.com/evmartin/brigade/internal/db"
	"github.com/evmartin/brigade/internal/intelligence"
	"github.com/evmartin/brigade/internal/llm"
	"github.com/evmartin/brigade/internal/repository"
	"github.com/evmartin/brigade/internal/service"
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
	// A local .env is convenient for API keys; absence is fine.
	_ = godotenv.Load()

	dbPath := os.Getenv("BRIGADE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".brigade", "brigade.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Sessions: service.NewSessionService(sessionRepo, uow),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Plan drafting only wires up when the LLM is enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled && llmCfg.APIKey != "" {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOpenAIClient(llmCfg, observer)
		app.PlanDraft = intelligence.NewPlanDraftService(client)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
