package main

import (
	"github.com/spf13/cobra"

	"inputrelay/internal/logging"
	"inputrelay/internal/relay"
)

func runRelay(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result, err := relay.Run(cmd.Context(), relay.Options{
		Dir:         cfg.Paths.WorkDir,
		RequestFile: cfg.Relay.RequestFile,
		MarkerFile:  cfg.Relay.MarkerFile,
		LockPath:    cfg.LockPath(),
		Console:     relay.NewConsole(out, shouldColorize(out)),
		Logger:      logger,
	})
	if err != nil {
		logger.Error("relay run failed", logging.Args(logging.String(logging.FieldPath, result.RequestPath), logging.Error(err))...)
		return err
	}
	logger.Debug("relay run finished", logging.Args(logging.String(logging.FieldOutcome, result.Outcome.String()))...)
	return nil
}
