package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/querylab/exa-ask/internal/app"
	"github.com/querylab/exa-ask/internal/config"
	"github.com/querylab/exa-ask/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ask failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sugar, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	log := logger.NewZapLogger(sugar)
	log.InfoObj("ask starting", "query", cfg.Query)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := app.NewRunner(cfg, log)
	if err != nil {
		log.ErrorObj("failed to initialize runner", "error", err)
		return err
	}

	ans, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	// The answer itself is the caller's to dispose of; only receipt
	// metadata is logged here.
	log.InfoObj("answer received", "meta", map[string]int{
		"answer_chars": len(ans.Answer),
		"citations":    len(ans.Citations),
	})

	return nil
}
