package cli

import (
	"github.com/spf13/cobra"
)

// costCommand creates the cost command: one search with explicit parameters.
func (c *CLI) costCommand() *cobra.Command {
	var (
		p     Profile
		flags searchFlags
	)

	cmd := &cobra.Command{
		Use:   "cost INPUT",
		Short: "Compute the minimal cost for explicit run bounds and endpoints",
		Example: `  crucible cost input.txt --min 4 --max 10
  crucible cost input.txt --min 1 --max 3 --start 0,0 --goal 12,12 --path`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf := ProfileFile{Profiles: []Profile{p}}
			if err := pf.normalize(); err != nil {
				return err
			}
			if err := flags.apply(cmd, &pf); err != nil {
				return err
			}

			g, err := readGrid(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			o, err := runProfile(cmd.Context(), g, pf.Profiles[0], pf.searchOptions(), flags.showPath)
			if err != nil {
				return err
			}
			printOutcome(cmd.OutOrStdout(), o, flags.showPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&p.Name, "name", "cost", "label printed with the result")
	cmd.Flags().IntVar(&p.MinRun, "min", 1, "minimum cells before a turn or stop")
	cmd.Flags().IntVar(&p.MaxRun, "max", 3, "maximum cells in a straight line")
	cmd.Flags().StringVar(&p.Start, "start", "", "start cell x,y (default top-left)")
	cmd.Flags().StringVar(&p.Goal, "goal", "", "goal cell x,y (default bottom-right)")
	cmd.Flags().BoolVar(&p.AllSeeds, "all-seeds", false, "allow the first move in any direction")
	flags.register(cmd)

	return cmd
}
