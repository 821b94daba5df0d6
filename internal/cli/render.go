package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fsa/pkg/automaton"
	"github.com/matzehuels/fsa/pkg/cache"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
	"github.com/matzehuels/fsa/pkg/render/diagram"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	format  string // empty means the configured default
	output  string // file path; text formats go to stdout when empty
	input   string // run to overlay on the diagram
	title   string
	noCache bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	cmd := &cobra.Command{
		Use:   "render <machine>",
		Short: "Draw a machine as dot, mermaid, svg, png or jpg",
		Long: `Draw a machine's state diagram.

dot and mermaid are printed to stdout unless --output is given. Images are
rendered with Graphviz and written to --output, or <machine>.<format>.
--input highlights the states visited by a run. Rendered images are cached
under $XDG_CACHE_HOME/fsa.`,
		Example: `  fsa render profile -f svg
  fsa render squeeze-blanks -f png --input 'x__x.' -o trace.png
  fsa render profile -f mermaid`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeMachines,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format == "" {
				opts.format = c.Config.Render.Format
			}
			opts.noCache = opts.noCache || c.Config.Render.NoCache
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, mermaid, svg, png, jpg (default from config, svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVar(&opts.input, "input", "", "highlight the run of this input")
	cmd.Flags().StringVar(&opts.title, "title", "", "diagram title (default machine name)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the diagram cache")
	cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, len(diagram.Formats))
		for i, f := range diagram.Formats {
			out[i] = string(f)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, name string, opts renderOpts) error {
	logger := log.FromContext(ctx)
	format, err := diagram.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.output != "" {
		if err := fsaerrors.ValidatePath(opts.output); err != nil {
			return err
		}
	}
	m, a, err := loadMachine(name)
	if err != nil {
		return err
	}

	dopts := diagram.Options{Title: opts.title}
	if dopts.Title == "" {
		dopts.Title = m.Name
	}
	extra := []string{"title=" + dopts.Title}
	if opts.input != "" {
		input := automaton.Symbols(opts.input)
		if _, err := a.Run(input); err != nil {
			return err
		}
		var steps []automaton.Step
		for s := range a.Trace(input) {
			steps = append(steps, s)
		}
		start, _ := a.Initial()
		dopts.Overlay = diagram.OverlayFromTrace(start.Name, steps)
		extra = append(extra, "input="+opts.input)
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := cache.DiagramKey(m.Name, string(format), extra...)
	data, cached, err := store.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if !cached {
		if format.Binary() {
			spin := newSpinner(ctx, fmt.Sprintf("Rendering %s as %s", m.Name, format))
			spin.Start()
			data, err = diagram.Generate(ctx, a, format, dopts)
			spin.Stop()
		} else {
			data, err = diagram.Generate(ctx, a, format, dopts)
		}
		if err != nil {
			return err
		}
		if err := store.Set(ctx, key, data, c.Config.RenderTTL()); err != nil {
			logger.Warn("cache write failed", "err", err)
		}
	}
	logger.Debug("rendered", "machine", m.Name, "format", format, "bytes", len(data), "cached", cached)

	path := opts.output
	if path == "" && !format.Binary() {
		_, err := stdout.Write(data)
		return err
	}
	if path == "" {
		path = m.Name + "." + string(format)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	st := newStatus(stdout)
	st.ok("Rendered %s", m.Name)
	st.size(a.StateCount(), a.TransitionCount(), cached)
	st.file(path)
	if opts.input == "" && len(m.Samples) > 0 {
		st.hint("Step through a run", fmt.Sprintf("fsa trace %s %q", m.Name, m.Samples[0]))
	}
	return nil
}
