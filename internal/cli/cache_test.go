package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/fsa/pkg/cache"
)

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	fc, err := cache.NewFileCache(filepath.Join(dir, appName))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, f := range []string{"svg", "dot"} {
		if err := fc.Set(ctx, cache.DiagramKey("profile", f), []byte(f), 0); err != nil {
			t.Fatal(err)
		}
	}

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	var out strings.Builder
	root.SetOut(&out)

	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != fc.Dir() {
		t.Errorf("cache path = %q, want %q", got, fc.Dir())
	}

	out.Reset()
	root.SetArgs([]string{"cache", "info"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache info error: %v", err)
	}
	if !strings.Contains(out.String(), "entries") || !strings.Contains(out.String(), "2") {
		t.Errorf("cache info = %q, want 2 entries", out.String())
	}

	out.Reset()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if _, hit, _ := fc.Get(ctx, cache.DiagramKey("profile", "svg")); hit {
		t.Error("entry survived cache clear")
	}
	if !strings.Contains(out.String(), "Removed 2") {
		t.Errorf("cache clear = %q, want count", out.String())
	}
}

func TestCache_MissingDir(t *testing.T) {
	for _, sub := range []string{"clear", "info"} {
		out, err := runCLI(t, "cache", sub)
		if err != nil {
			t.Errorf("cache %s on missing dir error: %v", sub, err)
		}
		if !strings.Contains(out, "Nothing cached") {
			t.Errorf("cache %s = %q", sub, out)
		}
	}
}
