// Package middleware wraps command actions with cross-cutting behavior.
package middleware

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"
)

// Logging returns a wrapper that logs every command run with its run ID,
// duration and outcome.
func Logging(logger *slog.Logger) func(cli.ActionFunc) cli.ActionFunc {
	return func(next cli.ActionFunc) cli.ActionFunc {
		return func(c *cli.Context) error {
			start := time.Now()
			command := commandName(c)
			runID := GetRunID(c.Context)

			logger.Debug("Command started", "command", command, "run_id", runID)

			err := next(c)

			duration := time.Since(start).Milliseconds()
			if err != nil {
				logger.Error("Command failed",
					"command", command,
					"error", err,
					"run_id", runID,
					"duration_ms", duration,
				)
			} else {
				logger.Info("Command ok",
					"command", command,
					"run_id", runID,
					"duration_ms", duration,
				)
			}

			return err
		}
	}
}

func commandName(c *cli.Context) string {
	if c.Command != nil && c.Command.Name != "" {
		return c.Command.FullName()
	}
	if c.App != nil {
		return c.App.Name
	}
	return ""
}
