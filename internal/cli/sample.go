package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fsa/pkg/sample"
)

func (c *CLI) sampleCommand() *cobra.Command {
	var (
		count  int
		seed   uint64
		limit  int
		unique bool
		check  string
	)
	cmd := &cobra.Command{
		Use:   "sample [pattern]",
		Short: "Generate random strings matching a regular expression",
		Long: `Generate random strings matching a regular expression. The default pattern
is the genuine activity pattern from the configuration.

--check runs every string through a machine and prints its verdict.`,
		Example: `  fsa sample -n 5
  fsa sample '(a*|b)(b|ab*a)#' -n 5 --check profile`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := c.Config.Classify.GenuinePattern
			if len(args) == 1 {
				pattern = args[0]
			}
			if !cmd.Flags().Changed("seed") {
				seed = c.Config.Classify.Seed
			}
			gen, err := sample.New(pattern, sample.WithSeed(seed), sample.WithLimit(limit))
			if err != nil {
				return err
			}

			var out []string
			if unique {
				out = gen.Distinct(count, 100)
				if len(out) < count {
					log.FromContext(cmd.Context()).Warn("fewer distinct strings than requested", "want", count, "got", len(out))
				}
			} else {
				out = gen.GenerateN(count)
			}

			w := cmd.OutOrStdout()
			if check == "" {
				for _, s := range out {
					fmt.Fprintln(w, s)
				}
				return nil
			}
			return runInputs(cmd.Context(), w, check, out, runOpts{})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of strings")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default from config)")
	cmd.Flags().IntVar(&limit, "limit", sample.DefaultLimit, "maximum repetitions for * and +")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "only distinct strings")
	cmd.Flags().StringVar(&check, "check", "", "run each string through this machine")
	return cmd
}
