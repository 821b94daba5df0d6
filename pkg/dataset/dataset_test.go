package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `# sample
0 1
0 2

1 2
3 0
0 3
`
	g, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := g.IDs(); !slices.Equal(got, []int{0, 1, 3}) {
		t.Errorf("IDs() = %v, want [0 1 3]", got)
	}
	if got := g.Friends(0); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Friends(0) = %v, want [1 2 3]", got)
	}
	if g.Friends(2) != nil {
		t.Errorf("Friends(2) = %v, want nil", g.Friends(2))
	}
	if g.Len() != 3 || g.EdgeCount() != 5 || g.MaxID() != 3 {
		t.Errorf("Len, EdgeCount, MaxID = %d, %d, %d; want 3, 5, 3", g.Len(), g.EdgeCount(), g.MaxID())
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"one column", "0 1\n7\n", "line 2"},
		{"three columns", "0 1 2\n", "line 1"},
		{"not a number", "0 1\n\nx 2\n", "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedLine) {
				t.Fatalf("Parse() error = %v, want ErrMalformedLine", err)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("Parse() error = %v, want mention of %s", err, tt.line)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	g, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if g.Len() != 0 || g.MaxID() != -1 {
		t.Errorf("empty graph: Len=%d MaxID=%d", g.Len(), g.MaxID())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	if err := os.WriteFile(path, []byte("5 6\n5 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := g.Friends(5); !slices.Equal(got, []int{6, 7}) {
		t.Errorf("Friends(5) = %v", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want not exist", err)
	}
}
