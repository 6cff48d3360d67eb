package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pthm-cable/pong/components"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot captures a match at a point of interest.
type Snapshot struct {
	Version int   `json:"version"`
	Seed    int64 `json:"seed"`
	Match   int   `json:"match"`

	CourtWidth  float64 `json:"court_width"`
	CourtHeight float64 `json:"court_height"`

	State MatchStateJSON `json:"state"`

	Highlight *Highlight `json:"highlight,omitempty"`
}

// MatchStateJSON is the JSON-serializable form of components.MatchState.
type MatchStateJSON struct {
	Tick int32 `json:"tick"`

	BallX  float64 `json:"ball_x"`
	BallY  float64 `json:"ball_y"`
	SpeedX float64 `json:"speed_x"`
	SpeedY float64 `json:"speed_y"`

	PlayerPaddleX   float64 `json:"player_paddle_x"`
	OpponentPaddleX float64 `json:"opponent_paddle_x"`

	PlayerScore   int `json:"player_score"`
	OpponentScore int `json:"opponent_score"`

	IsGameOver   bool            `json:"is_game_over"`
	Winner       components.Side `json:"winner"`
	PointerMoved bool            `json:"pointer_moved"`
}

// StateToJSON converts a match state to its JSON form.
func StateToJSON(s components.MatchState) MatchStateJSON {
	return MatchStateJSON{
		Tick:            s.Tick,
		BallX:           s.BallX,
		BallY:           s.BallY,
		SpeedX:          s.SpeedX,
		SpeedY:          s.SpeedY,
		PlayerPaddleX:   s.PlayerPaddleX,
		OpponentPaddleX: s.OpponentPaddleX,
		PlayerScore:     s.PlayerScore,
		OpponentScore:   s.OpponentScore,
		IsGameOver:      s.IsGameOver,
		Winner:          s.Winner,
		PointerMoved:    s.PointerMoved,
	}
}

// State converts the JSON form back to a match state.
func (j MatchStateJSON) State() components.MatchState {
	return components.MatchState{
		Tick:            j.Tick,
		BallX:           j.BallX,
		BallY:           j.BallY,
		SpeedX:          j.SpeedX,
		SpeedY:          j.SpeedY,
		PlayerPaddleX:   j.PlayerPaddleX,
		OpponentPaddleX: j.OpponentPaddleX,
		PlayerScore:     j.PlayerScore,
		OpponentScore:   j.OpponentScore,
		IsGameOver:      j.IsGameOver,
		Winner:          j.Winner,
		PointerMoved:    j.PointerMoved,
	}
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_m%d_t%d", snapshot.Match, snapshot.State.Tick)
	if snapshot.Highlight != nil {
		name += "_" + string(snapshot.Highlight.Type)
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snapshot.Version)
	}

	return &snapshot, nil
}
