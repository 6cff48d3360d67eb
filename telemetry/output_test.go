package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/pong/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}

	// All writes on a nil manager are no-ops
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteMatch(MatchRecord{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteMatch(MatchRecord{Match: i, Winner: "Player", PlayerScore: 7}); err != nil {
			t.Fatalf("WriteMatch: %v", err)
		}
	}
	if err := om.WriteHighlight(Highlight{Type: HighlightShutout, Match: 1}); err != nil {
		t.Fatalf("WriteHighlight: %v", err)
	}
	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 600}); err != nil {
		t.Fatalf("WriteTelemetry: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 600); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "matches.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("matches.csv has %d lines, want header + 3 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "match,seed,winner") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "3,0,Player,7") {
		t.Errorf("last row = %q", lines[3])
	}

	for _, name := range []string{"telemetry.csv", "perf.csv", "highlights.csv"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if n := len(strings.Split(strings.TrimSpace(string(data)), "\n")); n != 2 {
			t.Errorf("%s has %d lines, want 2", name, n)
		}
	}
}

func TestOutputManagerWriteConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	loaded, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if loaded.Match.WinningScore != cfg.Match.WinningScore {
		t.Errorf("winning score = %d, want %d", loaded.Match.WinningScore, cfg.Match.WinningScore)
	}
}
