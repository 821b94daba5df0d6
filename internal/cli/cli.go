// Package cli wires the fsa packages into a cobra command tree.
//
//	fsa list | show <machine>           browse the built-in machines
//	fsa run | trace <machine> <input>   execute a machine, plainly or step by step
//	fsa reduce <machine>                trim and minimize
//	fsa render <machine>                dot, mermaid, svg, png or jpg
//	fsa sample | classify               the profile classification experiment
//	fsa serve                           HTTP API with Prometheus metrics
//	fsa cache path | info | clear       the local diagram cache
//
// Every command takes --verbose (-v) and --config. Handlers read the logger
// with log.FromContext and write results to the command's output stream.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fsa/pkg/automaton"
	"github.com/matzehuels/fsa/pkg/cache"
	"github.com/matzehuels/fsa/pkg/catalog"
	"github.com/matzehuels/fsa/pkg/config"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
)

const appName = "fsa"

// Log levels accepted by New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI is the state shared by every command: the logger and the merged
// configuration. Flags of individual commands override Config.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a CLI with a default logger and the built-in configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads --config if given, otherwise the default path when it
// exists.
func (c *CLI) loadConfig() error {
	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	c.Config = cfg
	if c.verbose || cfg.Log.Verbose {
		c.SetLogLevel(LogDebug)
	}
	return nil
}

// newCache returns the diagram cache for render. Caching degrades to the
// null cache when disabled or when there is no home directory.
func newCache(disabled bool) (cache.Cache, error) {
	dir, err := cacheDir()
	if disabled || err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir is $XDG_CACHE_HOME/fsa, or ~/.cache/fsa when the variable is
// unset.
func cacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, appName), nil
}

// loadMachine resolves a catalog entry and builds it.
func loadMachine(name string) (*catalog.Machine, *automaton.Automaton, error) {
	if err := fsaerrors.ValidateMachineName(name); err != nil {
		return nil, nil, err
	}
	m, ok := catalog.Lookup(name)
	if !ok {
		_, err := catalog.Get(name)
		return nil, nil, fsaerrors.Wrap(fsaerrors.ErrCodeNotFound, err, "machine %q", name)
	}
	a, err := m.Build()
	if err != nil {
		return nil, nil, err
	}
	return m, a, nil
}

// completeMachines offers catalog names for the first positional argument.
func completeMachines(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, m := range catalog.Machines {
		out = append(out, m.Name+"\t"+m.Description)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
