package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOptionsPath(t *testing.T) {
	t.Parallel()

	dir := "/tmp/ws"
	cases := []struct {
		target string
		want   string
	}{
		{"", ""},
		{"0", ""},
		{"off", ""},
		{"1", filepath.Join(dir, DefaultFileName)},
		{"debug", filepath.Join(dir, DefaultFileName)},
		{"/var/log/savanna.json", "/var/log/savanna.json"},
	}
	for _, tc := range cases {
		got := Options{Target: tc.target, Dir: dir}.Path()
		if got != tc.want {
			t.Fatalf("Path(%q) = %q, want %q", tc.target, got, tc.want)
		}
	}
}

func TestNew_DisabledIsNop(t *testing.T) {
	t.Parallel()

	l, err := New(Options{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Core().Enabled(0) {
		t.Fatalf("expected nop logger")
	}
}

func TestNew_WritesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	l, err := New(Options{Target: "1", Level: "warn", Dir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("dropped")
	l.Warn("kept")
	_ = l.Sync()

	b, err := os.ReadFile(filepath.Join(dir, DefaultFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	if strings.Contains(s, "dropped") || !strings.Contains(s, `"msg":"kept"`) {
		t.Fatalf("unexpected log content: %s", s)
	}
}

func TestNew_BadLevel(t *testing.T) {
	t.Parallel()

	if _, err := New(Options{Target: "1", Level: "loud", Dir: t.TempDir()}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLog, "debug")
	t.Setenv(EnvLogLevel, "")

	o := FromEnv("/ws")
	if o.Path() != filepath.Join("/ws", DefaultFileName) {
		t.Fatalf("path %q", o.Path())
	}
	lvl, err := o.level()
	if err != nil || lvl.String() != "debug" {
		t.Fatalf("level %v err %v", lvl, err)
	}
}
