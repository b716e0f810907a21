// Package main provides the CLI entrypoint for logsweep. It wires the root
// command, loads environment configuration, initializes logging, and maps
// failures onto the exit codes the pipeline contract promises to CI callers.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"logsweep/internal/config"
	"logsweep/pkg/logger"
	"logsweep/pkg/serrors"

	"go.uber.org/zap"
)

// Exit codes surfaced to CI pipelines.
const (
	exitOK           = 0
	exitDeleteFailed = 1
	exitBadRoot      = 2
	exitUnexpected   = 3
)

// exitCode maps an error from a run onto the process exit code by matching
// semantic kinds.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, serrors.ErrIO):
		return exitDeleteFailed
	case errors.Is(err, serrors.ErrNotFound):
		return exitBadRoot
	default:
		return exitUnexpected
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load environment config: ", err)
	}

	// Default logger so failures before flag parsing are still reported in a
	// structured way. The command re-runs Setup once --verbose is known.
	logger.Setup(cfg.Environment, false)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			os.Exit(exitUnexpected) //nolint: gocritic
		}
	}()

	err = newRootCommand(cfg).ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "run failed", zap.Error(err))
	}
	_ = logger.Get(ctx).Sync()
	os.Exit(exitCode(err))
}
