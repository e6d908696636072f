package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/runpath"
)

// searchFlags are shared by solve and cost.
type searchFlags struct {
	frontier      string
	maxExpansions int
	showPath      bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.frontier, "frontier", "", "frontier ordering: heap or bucket")
	cmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "abort after settling this many states (0 = unlimited)")
	cmd.Flags().BoolVar(&f.showPath, "path", false, "print the optimal moves")
}

// apply overrides file-level settings with any flags the user set.
func (f *searchFlags) apply(cmd *cobra.Command, pf *ProfileFile) error {
	if cmd.Flags().Changed("frontier") {
		if _, err := runpath.ParseFrontierKind(f.frontier); err != nil {
			return err
		}
		pf.Frontier = f.frontier
	}
	if cmd.Flags().Changed("max-expansions") {
		if f.maxExpansions < 0 {
			return fmt.Errorf("--max-expansions must be non-negative")
		}
		pf.MaxExpansions = f.maxExpansions
	}

	return nil
}

// solveCommand creates the solve command: every profile over one input.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		profilesPath string
		flags        searchFlags
	)

	cmd := &cobra.Command{
		Use:   "solve INPUT",
		Short: "Run every profile (default: both puzzle parts) over a digit grid",
		Long: `Solve parses a digit grid and runs each profile against it, reporting the
minimal cost and the time taken. Without --profiles the two puzzle parts are
used: runs of 1..3 cells, then runs of 4..10 cells, from the top-left to the
bottom-right corner.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf := DefaultProfiles()
			if profilesPath != "" {
				loaded, err := LoadProfiles(profilesPath)
				if err != nil {
					return err
				}
				pf = loaded
			}
			if err := flags.apply(cmd, &pf); err != nil {
				return err
			}

			g, err := readGrid(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, p := range pf.Profiles {
				o, err := runProfile(cmd.Context(), g, p, pf.searchOptions(), flags.showPath)
				if err != nil {
					return err
				}
				printOutcome(cmd.OutOrStdout(), o, flags.showPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&profilesPath, "profiles", "", "TOML file of [[profile]] entries")
	flags.register(cmd)

	return cmd
}

// readGrid parses a digit grid from path ("-" reads stdin).
func readGrid(ctx context.Context, path string) (*gridgraph.CostGrid, error) {
	logger := loggerFromContext(ctx)
	f := os.Stdin
	if path != "-" {
		var err error
		if f, err = os.Open(path); err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
	}

	g, err := gridgraph.ParseDigits(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Debug("parsed grid", "path", path, "width", g.Width(), "height", g.Height(), "max_cost", g.MaxCost())

	return g, nil
}

// runProfile runs one profile and logs how long it took.
func runProfile(ctx context.Context, g *gridgraph.CostGrid, p Profile, base []runpath.Option, withPath bool) (outcome, error) {
	logger := loggerFromContext(ctx).With("run", uuid.NewString()[:8], "profile", p.Name)

	start, goal, err := p.endpoints(g)
	if err != nil {
		return outcome{}, err
	}
	opts := append([]runpath.Option{runpath.WithContext(ctx)}, base...)
	if withPath {
		opts = append(opts, runpath.WithReturnPath())
	}
	if p.AllSeeds {
		opts = append(opts, runpath.WithSeedHeadings(runpath.AllSeeds...))
	}

	logger.Debug("searching", "start", start, "goal", goal, "min_run", p.MinRun, "max_run", p.MaxRun)
	prog := newProgress(logger)
	res, err := runpath.Search(g, start, goal, p.MinRun, p.MaxRun, opts...)
	if err != nil {
		return outcome{}, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	prog.done("Solved "+p.Name, "found", res.Found, "cost", res.Cost, "expanded", res.Expanded)

	return outcome{
		Name:     p.Name,
		Found:    res.Found,
		Cost:     res.Cost,
		Moves:    res.Moves(),
		Expanded: res.Expanded,
		Elapsed:  prog.elapsed(),
	}, nil
}
