package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fsa/pkg/catalog"
)

func (c *CLI) listCommand() *cobra.Command {
	var namesOnly bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the built-in machines",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if namesOnly {
				fmt.Fprintln(out, strings.Join(catalog.Names(), "\n"))
				return nil
			}
			fmt.Fprintln(out, machineTable(catalog.Machines))
			return nil
		},
	}
	cmd.Flags().BoolVar(&namesOnly, "names", false, "print names only, one per line")
	return cmd
}

func (c *CLI) showCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "show <machine>",
		Short:             "Show a machine's states and transition table",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeMachines,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, a, err := loadMachine(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(m.Name)+"  "+styleMuted.Render(a.Kind().String()))
			fmt.Fprintln(out, m.Description)
			fmt.Fprintln(out)
			fmt.Fprintf(out, "%-9s %s\n", "alphabet", strings.Join(a.Alphabet(), " "))
			if outs := a.OutputAlphabet(); outs != nil {
				fmt.Fprintf(out, "%-9s %s\n", "outputs", strings.Join(outs, " "))
			}
			if len(m.Samples) > 0 {
				fmt.Fprintf(out, "%-9s %s\n", "samples", strings.Join(quoteAll(m.Samples), " "))
			}
			fmt.Fprintln(out, transitionTable(a, nil))
			fmt.Fprintln(out, styleMuted.Render("→ initial   * accepting   - no transition"))
			return nil
		},
	}
	return cmd
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
