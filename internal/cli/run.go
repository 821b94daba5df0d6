package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fsa/pkg/automaton"
	"github.com/matzehuels/fsa/pkg/automaton/reduce"
	"github.com/matzehuels/fsa/pkg/observability"
)

type runOpts struct {
	trace    bool
	minimize bool
	symbols  bool
}

func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts
	cmd := &cobra.Command{
		Use:   "run <machine> [input...]",
		Short: "Run a machine on one or more inputs",
		Long: `Run a machine on each input and print one verdict per line.

Inputs are split into one symbol per character unless --symbols is set, in
which case each input is a space-separated list of symbols. With no inputs
the machine's sample inputs are used; "-" reads inputs from stdin, one per
line. A rejected input is not an error.`,
		Example: `  fsa run profile aa# ab#
  fsa run squeeze-blanks --trace 'x___x.'
  fsa run profile --minimize`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeMachines,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runInputs(cmd.Context(), cmd.OutOrStdout(), args[0], inputs, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.trace, "trace", "t", false, "print every step of each run")
	cmd.Flags().BoolVarP(&opts.minimize, "minimize", "m", false, "minimize the machine before running")
	cmd.Flags().BoolVar(&opts.symbols, "symbols", false, "treat inputs as space-separated symbol lists")
	return cmd
}

// readInputs expands "-" into the lines of stdin.
func readInputs(args []string, stdin io.Reader) ([]string, error) {
	var out []string
	for _, a := range args {
		if a != "-" {
			out = append(out, a)
			continue
		}
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			out = append(out, strings.TrimRight(sc.Text(), "\r"))
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}
	return out, nil
}

func runInputs(ctx context.Context, out io.Writer, name string, inputs []string, opts runOpts) error {
	logger := log.FromContext(ctx)
	m, a, err := loadMachine(name)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		inputs = m.Samples
		logger.Debug("no inputs given, using samples", "machine", m.Name, "count", len(inputs))
	}

	if opts.minimize {
		res, err := minimize(ctx, m.Name, a)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, styleMuted.Render("minimized: "+res.String()))
	}

	width := 0
	for _, in := range inputs {
		width = max(width, len(fmt.Sprintf("%q", in)))
	}

	for _, in := range inputs {
		symbols := automaton.Symbols(in)
		if opts.symbols {
			symbols = strings.Fields(in)
		}
		res, err := execute(ctx, m.Name, a, symbols)
		if err != nil {
			return fmt.Errorf("input %q: %w", in, err)
		}
		fmt.Fprintf(out, "%-*s  %s\n", width, fmt.Sprintf("%q", in), verdict(res))
		if opts.trace {
			for step := range a.Trace(symbols) {
				fmt.Fprintln(out, "    "+styleMuted.Render(step.String()))
			}
		}
	}
	return nil
}

// verdict styles a result line.
func verdict(res automaton.Result) string {
	if res.Accepted {
		return styleAccept.Render(res.String())
	}
	return styleReject.Render(res.String())
}

// execute runs a and reports the run to the engine hooks.
func execute(ctx context.Context, name string, a *automaton.Automaton, input []string) (automaton.Result, error) {
	start := time.Now()
	res, err := a.Run(input)
	observability.Engine().OnRun(ctx, name, res.Accepted, len(input), time.Since(start), err)
	return res, err
}

// minimize reduces a in place and reports it to the engine hooks.
func minimize(ctx context.Context, name string, a *automaton.Automaton) (reduce.Result, error) {
	before := a.StateCount()
	start := time.Now()
	res, err := reduce.Minimize(a)
	observability.Engine().OnReduce(ctx, name, before, a.StateCount(), time.Since(start), err)
	if err == nil {
		log.FromContext(ctx).Debug("minimized", "machine", name, "before", before, "after", res.States)
	}
	return res, err
}

