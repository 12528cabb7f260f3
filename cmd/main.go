package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/executor"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/setup"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()

	// Setup logging
	log.Logger = logger.New(os.Stderr, cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := setup.Wire(ctx, cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	exec := executor.NewExecutor(deps.Analyzer, deps.Prechecks, deps.Aggregator, cfg.Language, deps.Logger)
	if err := exec.Execute(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Failed to read input")
	}
}
