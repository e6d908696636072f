package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/internal/cli"
	"github.com/katalvlaran/crucible/runpath"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitBadRequest  = 2   // a search parameter failed validation
	exitInterrupted = 130 // SIGINT, shell convention
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	cancel()
	os.Exit(report(os.Stderr, err))
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Apply the log level before the root attaches the logger to the context.
	attachLogger := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if attachLogger != nil {
			return attachLogger(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// report writes err to w and returns the process exit code. Validation
// failures name the offending parameter (minRun, goal, grid, ...).
func report(w io.Writer, err error) int {
	var cfgErr *runpath.ConfigError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.As(err, &cfgErr):
		fmt.Fprintf(w, "Error: invalid %s: %v\n", cfgErr.Field, err)
		return exitBadRequest
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitFailure
	}
}
