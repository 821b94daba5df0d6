package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fsa/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the diagram cache",
		Long: `Rendered diagrams are cached under $XDG_CACHE_HOME/fsa (or ~/.cache/fsa)
and expire after render.cache_ttl. fsa serve may use Redis instead; these
commands only touch the local directory.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("cache dir: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), dir)
				return err
			},
		},
		&cobra.Command{
			Use:   "info",
			Short: "Show how many diagrams are cached",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				st := newStatus(cmd.OutOrStdout())
				fc, dir, err := openCacheDir()
				if err != nil {
					return err
				}
				if fc == nil {
					st.info("Nothing cached yet")
					return nil
				}
				entries, size, err := fc.Usage()
				if err != nil {
					return err
				}
				st.field("directory", dir)
				st.field("entries", fmt.Sprint(entries))
				st.field("size", fmt.Sprintf("%.1f KiB", float64(size)/1024))
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every cached diagram",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				st := newStatus(cmd.OutOrStdout())
				fc, dir, err := openCacheDir()
				if err != nil {
					return err
				}
				if fc == nil {
					st.info("Nothing cached yet")
					return nil
				}
				n, err := fc.Clear()
				if err != nil {
					return err
				}
				st.ok("Removed %d cached diagrams", n)
				st.detail("%s", dir)
				return nil
			},
		},
	)
	return cmd
}

// openCacheDir opens the local cache without creating it. A nil FileCache
// and nil error mean the directory does not exist.
func openCacheDir() (*cache.FileCache, string, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, "", fmt.Errorf("cache dir: %w", err)
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, dir, nil
	}
	fc, err := cache.NewFileCache(dir)
	return fc, dir, err
}
