package systems

// Phase identifiers, in frame order. Shared by the perf collector and the UI.
const (
	PhaseMotion      = "motion"
	PhaseWalls       = "walls"
	PhasePaddles     = "paddles"
	PhaseOpponent    = "opponent"
	PhaseTermination = "termination"
	PhaseSparks      = "sparks"
)

// SystemInfo describes a frame phase for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string
	Category    string // "core" or "visual"
}

// SystemRegistry holds metadata about all frame phases.
// This centralizes naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known phases.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known phases in the order the stepper runs them.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: PhaseMotion, Name: "Motion", Description: "Integrates ball position", Category: "core"})
	r.Register(SystemInfo{ID: PhaseWalls, Name: "Walls", Description: "Reflects off side walls", Category: "core"})
	r.Register(SystemInfo{ID: PhasePaddles, Name: "Paddles", Description: "Resolves hits, misses and scoring", Category: "core"})
	r.Register(SystemInfo{ID: PhaseOpponent, Name: "Opponent", Description: "Steers the far paddle", Category: "core"})
	r.Register(SystemInfo{ID: PhaseTermination, Name: "Termination", Description: "Checks the winning score", Category: "core"})
	r.Register(SystemInfo{ID: PhaseSparks, Name: "Sparks", Description: "Updates visual effects", Category: "visual"})
}

// Register adds a phase to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns phase info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a phase ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered phases.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all phase IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
