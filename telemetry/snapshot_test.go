package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/pong/components"
)

func TestSnapshotSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()

	state := components.MatchState{
		Tick:            1800,
		BallX:           123.5,
		BallY:           42,
		SpeedX:          -1.5,
		SpeedY:          -4,
		PlayerPaddleX:   100,
		OpponentPaddleX: 210,
		PlayerScore:     7,
		OpponentScore:   0,
		IsGameOver:      true,
		Winner:          components.SidePlayer,
		PointerMoved:    true,
	}
	snapshot := &Snapshot{
		Version:     SnapshotVersion,
		Seed:        42,
		Match:       3,
		CourtWidth:  500,
		CourtHeight: 700,
		State:       StateToJSON(state),
		Highlight: &Highlight{
			Type:        HighlightShutout,
			Match:       3,
			Tick:        1800,
			Description: "Player won 7-0 without conceding",
		},
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Snapshot file not created at %s", path)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if loaded.Seed != 42 || loaded.Match != 3 {
		t.Errorf("seed/match = %d/%d, want 42/3", loaded.Seed, loaded.Match)
	}
	if got := loaded.State.State(); got != state {
		t.Errorf("state mismatch:\n got %+v\nwant %+v", got, state)
	}
	if loaded.Highlight == nil {
		t.Fatal("Highlight not loaded")
	}
	if loaded.Highlight.Type != HighlightShutout {
		t.Errorf("Highlight type = %s, want %s", loaded.Highlight.Type, HighlightShutout)
	}
}

func TestSnapshotWinnerIsLiteral(t *testing.T) {
	tmpDir := t.TempDir()
	snapshot := &Snapshot{
		Version: SnapshotVersion,
		State:   StateToJSON(components.MatchState{Winner: components.SideComputer, IsGameOver: true}),
	}

	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"winner": "Computer"`) {
		t.Errorf("expected winner literal in snapshot, got:\n%s", data)
	}
}

func TestSnapshotFilename(t *testing.T) {
	tmpDir := t.TempDir()

	snapshot := &Snapshot{
		Version:   SnapshotVersion,
		Match:     2,
		State:     MatchStateJSON{Tick: 5000},
		Highlight: &Highlight{Type: HighlightLongRally, Tick: 5000},
	}
	path, err := SaveSnapshot(snapshot, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if want := filepath.Join(tmpDir, "snapshot_m2_t5000_long_rally.json"); path != want {
		t.Errorf("Path mismatch: got %s, want %s", path, want)
	}

	plain := &Snapshot{Version: SnapshotVersion, Match: 1, State: MatchStateJSON{Tick: 3000}}
	path, err = SaveSnapshot(plain, tmpDir)
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if want := filepath.Join(tmpDir, "snapshot_m1_t3000.json"); path != want {
		t.Errorf("Path mismatch: got %s, want %s", path, want)
	}
}

func TestLoadSnapshotRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	if err := os.WriteFile(path, []byte(`{"version": 99}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestLoadSnapshotRejectsUnknownWinner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	data := `{"version": 1, "state": {"winner": "Nobody"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("expected error for unknown winner literal")
	}
}
