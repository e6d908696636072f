// Package cli implements the crucible command-line interface.
//
// The CLI wraps the runpath engine for digit-grid puzzle inputs. It is
// built with cobra and logs through charmbracelet/log; the logger travels
// in the command context so every command and HTTP handler shares it.
//
// # Commands
//
//   - solve: run every profile (default: the two puzzle parts) over one input
//   - cost:  one search with explicit run bounds and endpoints
//   - serve: HTTP API exposing the search as POST /v1/cost
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used in usage text and logs.
const appName = "crucible"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Crucible finds the cheapest run-constrained path across a cost grid",
		Long:          `Crucible computes minimum-cost paths over digit grids where every straight run must be between a minimum and maximum number of cells before turning.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(versionTemplate())

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.costCommand())
	root.AddCommand(c.serveCommand())

	return root
}
