package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fsa/pkg/automaton/reduce"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
	"github.com/matzehuels/fsa/pkg/render/diagram"
)

const (
	stepAll         = "all"
	stepUnreachable = "unreachable"
	stepUseless     = "useless"
)

func (c *CLI) reduceCommand() *cobra.Command {
	var only, format string
	cmd := &cobra.Command{
		Use:   "reduce <machine>",
		Short: "Remove unreachable and useless states and merge equivalent ones",
		Long: `Reduce a machine and print the result.

By default the full pipeline runs: unreachable states are removed, then
states that cannot reach an accept state, then equivalent states are merged.
--only runs a single removal step.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeMachines,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, a, err := loadMachine(args[0])
			if err != nil {
				return err
			}
			before := a.StateCount()

			var summary string
			switch only {
			case stepAll:
				res, err := minimize(ctx, m.Name, a)
				if err != nil {
					return err
				}
				summary = res.String()
			case stepUnreachable:
				n, err := reduce.RemoveUnreachable(a)
				if err != nil {
					return err
				}
				summary = fmt.Sprintf("%d unreachable, %d states", n, a.StateCount())
			case stepUseless:
				n, err := reduce.RemoveUseless(a)
				if err != nil {
					return err
				}
				summary = fmt.Sprintf("%d useless, %d states", n, a.StateCount())
			default:
				return fsaerrors.New(fsaerrors.ErrCodeInvalidInput, "--only %q (want %s, %s or %s)", only, stepAll, stepUnreachable, stepUseless)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				fmt.Fprintf(out, "%s: %d → %d states (%s)\n", styleTitle.Render(m.Name), before, a.StateCount(), summary)
				fmt.Fprintln(out, transitionTable(a, nil))
			case string(diagram.FormatDOT):
				fmt.Fprint(out, diagram.ToDOT(a, diagram.Options{Title: m.Name + " (reduced)"}))
			case string(diagram.FormatMermaid):
				fmt.Fprint(out, diagram.ToMermaid(a, diagram.Options{}))
			default:
				return fsaerrors.New(fsaerrors.ErrCodeInvalidInput, "--format %q (want table, dot or mermaid)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&only, "only", stepAll, "reduction step: all, unreachable, useless")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output: table, dot, mermaid")
	return cmd
}
