package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/acopath/logging"
)

// newLogger builds the stderr logger from the persistent log flags.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("log-json")
	if jsonLogs {
		return logging.NewJSONLogger(level, cmd.ErrOrStderr())
	}
	return logging.NewLogger(level, cmd.ErrOrStderr())
}
