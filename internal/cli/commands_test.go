package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/matzehuels/fsa/pkg/catalog"
	"github.com/matzehuels/fsa/pkg/classify"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
)

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestList(t *testing.T) {
	out, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, name := range catalog.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("list output missing %q", name)
		}
	}

	out, err = runCLI(t, "list", "--names")
	if err != nil {
		t.Fatalf("list --names error: %v", err)
	}
	if got := lines(out); len(got) != len(catalog.Machines) || got[0] != "profile" {
		t.Errorf("list --names = %q", got)
	}
}

func TestShow(t *testing.T) {
	out, err := runCLI(t, "show", "ipr")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	for _, want := range []string{"profile", "alphabet  a b #", "→ q0", "q3 *"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "show", "squeeze-blanks")
	if err != nil {
		t.Fatalf("show error: %v", err)
	}
	if !strings.Contains(out, "outputs") || !strings.Contains(out, "q2/ε") {
		t.Errorf("transducer table missing outputs:\n%s", out)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "verdicts",
			args: []string{"run", "profile", "aa#", "ab"},
			want: []string{`"aa#"  accept at q3`, `"ab"   reject at q1: final state not accepting`},
		},
		{
			name: "dead end",
			args: []string{"run", "profile", "bb#"},
			want: []string{`reject at q1: no transition for current state and symbol (symbol "#" at position 2)`},
		},
		{
			name: "transducer trace",
			args: []string{"run", "squeeze-blanks", "--trace", "x__x."},
			want: []string{`accept at q3, output "x_x."`, "(q2, _, ε) -> q2"},
		},
		{
			name: "symbols",
			args: []string{"run", "profile", "--symbols", "a a #"},
			want: []string{"accept at q3"},
		},
		{
			name: "minimize",
			args: []string{"run", "profile", "--minimize", "aa#"},
			want: []string{"minimized: 0 unreachable, 0 useless, 0 merged, 4 states", "accept at q3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("run error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRun_Samples(t *testing.T) {
	out, err := runCLI(t, "run", "profile")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if got := lines(out); len(got) != len(catalog.Profile.Samples) {
		t.Errorf("got %d lines, want one per sample:\n%s", len(got), out)
	}
}

func TestRun_Stdin(t *testing.T) {
	out, err := runCLIWithInput(t, strings.NewReader("aa#\nbaba#\r\n"), "run", "profile", "-")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	got := lines(out)
	if len(got) != 2 || !strings.Contains(got[1], `"baba#"`) || !strings.Contains(got[1], "accept") {
		t.Errorf("stdin run = %q", got)
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := runCLI(t, "run", "profile", "az#")
	if !fsaerrors.Is(err, fsaerrors.ErrCodeValidation) {
		t.Errorf("invalid symbol error = %v, want VALIDATION", err)
	}

	_, err = runCLI(t, "run", "nope", "a")
	if !errors.Is(err, catalog.ErrUnknownMachine) || !fsaerrors.Is(err, fsaerrors.ErrCodeNotFound) {
		t.Errorf("unknown machine error = %v", err)
	}
}

func TestTrace_Plain(t *testing.T) {
	out, err := runCLI(t, "trace", "profile", "aa#", "--plain")
	if err != nil {
		t.Fatalf("trace error: %v", err)
	}
	want := []string{
		`profile on "aa#"`,
		"  0  (q0, a) -> q1",
		"  1  (q1, a) -> q2",
		"  2  (q2, #) -> q3",
		"accept at q3",
	}
	if got := lines(out); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("trace --plain =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"table", []string{"reduce", "profile"}, "4 → 4 states (0 unreachable, 0 useless, 0 merged, 4 states)"},
		{"unreachable only", []string{"reduce", "profile", "--only", "unreachable"}, "0 unreachable, 4 states"},
		{"useless only", []string{"reduce", "profile", "--only", "useless"}, "0 useless, 4 states"},
		{"dot", []string{"reduce", "profile", "-f", "dot"}, "digraph"},
		{"mermaid", []string{"reduce", "squeeze-blanks", "-f", "mermaid"}, "stateDiagram-v2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("reduce error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}

	for _, args := range [][]string{
		{"reduce", "profile", "--only", "everything"},
		{"reduce", "profile", "-f", "svg"},
	} {
		if _, err := runCLI(t, args...); !fsaerrors.Is(err, fsaerrors.ErrCodeInvalidInput) {
			t.Errorf("%v error = %v, want INVALID_INPUT", args, err)
		}
	}
}

func TestRender(t *testing.T) {
	out, err := runCLI(t, "render", "profile", "-f", "dot", "--input", "aa#")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "digraph") || !strings.Contains(out, "#ffeb3b") {
		t.Errorf("render dot with overlay:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "profile.mmd")
	if _, err := runCLI(t, "render", "profile", "-f", "mermaid", "-o", path); err != nil {
		t.Fatalf("render -o error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.HasPrefix(string(data), "stateDiagram-v2") {
		t.Errorf("written file = %q, %v", data, err)
	}

	if _, err := runCLI(t, "render", "profile", "-f", "gif"); !fsaerrors.Is(err, fsaerrors.ErrCodeUnsupported) {
		t.Errorf("render gif error = %v, want UNSUPPORTED", err)
	}
	if _, err := runCLI(t, "render", "profile", "-f", "dot", "--input", "zz"); !fsaerrors.Is(err, fsaerrors.ErrCodeValidation) {
		t.Errorf("render bad overlay error = %v, want VALIDATION", err)
	}
	if _, err := runCLI(t, "render", "profile", "-f", "svg", "-o", t.TempDir()+"/"); !fsaerrors.Is(err, fsaerrors.ErrCodeInvalidInput) {
		t.Errorf("render to directory error = %v, want INVALID_INPUT", err)
	}
	if _, err := runCLI(t, "render", "../profile", "-f", "dot"); !fsaerrors.Is(err, fsaerrors.ErrCodeInvalidInput) {
		t.Errorf("render ../profile error = %v, want INVALID_INPUT", err)
	}
}

func TestSample(t *testing.T) {
	out, err := runCLI(t, "sample", "-n", "5", "--seed", "3")
	if err != nil {
		t.Fatalf("sample error: %v", err)
	}
	re := regexp.MustCompile(`^[ab]*a#$`)
	got := lines(out)
	if len(got) != 5 {
		t.Fatalf("got %d strings, want 5", len(got))
	}
	for _, s := range got {
		if !re.MatchString(s) {
			t.Errorf("%q does not match the genuine pattern", s)
		}
	}

	again, _ := runCLI(t, "sample", "-n", "5", "--seed", "3")
	if again != out {
		t.Error("same seed produced different samples")
	}

	out, err = runCLI(t, "sample", "(ab)+a#", "-n", "3", "--check", "profile")
	if err != nil {
		t.Fatalf("sample --check error: %v", err)
	}
	if n := strings.Count(out, "accept at q3"); n != 3 {
		t.Errorf("sample --check accepted %d of 3:\n%s", n, out)
	}

	if _, err := runCLI(t, "sample", `a\b`); err == nil {
		t.Error("sample with word boundary should fail")
	}
}

func TestClassify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	data := "# id friend\n0 1\n0 2\n1 0\n1 2\n2 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "classify", path, "--total", "3", "--genuine", "1", "--json")
	if err != nil {
		t.Fatalf("classify error: %v", err)
	}
	var r classify.Report
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if r.Profiles != 3 || r.Samples != 5 {
		t.Errorf("report = %+v, want 3 profiles and 5 samples", r)
	}
	if r.TP+r.FP+r.TN+r.FN != r.Samples {
		t.Errorf("confusion matrix does not add up: %+v", r)
	}

	if _, err := runCLI(t, "classify"); !fsaerrors.Is(err, fsaerrors.ErrCodeConfiguration) {
		t.Errorf("classify without dataset error = %v, want CONFIGURATION", err)
	}
}

func TestClassify_NegativeFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	if err := os.WriteFile(path, []byte("0 1\n1 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, flag := range []string{"--total=-1", "--genuine=-1", "--attempts=-1", "--max-profiles=-1"} {
		t.Run(flag, func(t *testing.T) {
			_, err := runCLI(t, "classify", path, flag)
			if !fsaerrors.Is(err, fsaerrors.ErrCodeValidation) {
				t.Errorf("classify %s error = %v, want VALIDATION", flag, err)
			}
		})
	}
}
