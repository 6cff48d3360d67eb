package game

// Options holds per-run settings that do not belong in the config file.
type Options struct {
	Seed        int64
	LogStats    bool   // Log window stats, perf and highlights via slog
	OutputDir   string // CSV output directory ("" disables)
	SnapshotDir string // Snapshot directory ("" disables)
}
