package buildinfo

import (
	"strings"
	"testing"
)

func TestGet_PrefersStampedValues(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02T03:04:05Z"
	got := Get()
	if got != (Info{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-02T03:04:05Z"}) {
		t.Errorf("Get() = %+v", got)
	}
	if tmpl := Template(); !strings.Contains(tmpl, "{{.Name}} v1.2.3\n") || !strings.Contains(tmpl, "commit: abc123") {
		t.Errorf("Template() = %q", tmpl)
	}
}

func TestGet_Unstamped(t *testing.T) {
	got := Get()
	if got.Version == "" || got.Commit == "" || got.Date == "" {
		t.Errorf("Get() = %+v, want every field set", got)
	}
}
