package app

import (
	"context"
	"fmt"

	"github.com/querylab/exa-ask/internal/config"
	"github.com/querylab/exa-ask/internal/logger"
	"github.com/querylab/exa-ask/pkg/exa"
)

// Runner wires configuration to the answer service and executes the single
// query this program exists to issue.
type Runner struct {
	cfg *config.Config
	svc exa.AnswerService
	log logger.Logger
}

// NewRunner builds a runner from config, constructing the real Exa client
// from the configured credential. An absent credential fails here rather
// than mid-call.
func NewRunner(cfg *config.Config, log logger.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	client, err := exa.NewClient(cfg.ExaAPIKey,
		exa.WithBaseURL(cfg.ExaBaseURL),
		exa.WithTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("build exa client: %w", err)
	}

	return NewRunnerWithService(cfg, client, log)
}

// NewRunnerWithService builds a runner around an injected answer service.
func NewRunnerWithService(cfg *config.Config, svc exa.AnswerService, log logger.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if svc == nil {
		return nil, fmt.Errorf("answer service must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	return &Runner{cfg: cfg, svc: svc, log: log}, nil
}

// Run issues the configured query once and returns the Answer untouched.
// Disposition of the Answer belongs to the caller; the runner neither
// prints, stores, nor logs it. Errors propagate unmodified.
func (r *Runner) Run(ctx context.Context) (*exa.Answer, error) {
	if r == nil || r.svc == nil {
		return nil, fmt.Errorf("runner is not initialized")
	}

	r.log.DebugObj("issuing answer request", "query", r.cfg.Query)

	ans, err := r.svc.Answer(ctx, r.cfg.Query)
	if err != nil {
		return nil, err
	}

	return ans, nil
}
