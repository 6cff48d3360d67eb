package components

// Position represents an effect entity's court position.
type Position struct {
	X, Y float32
}

// Velocity represents an effect entity's per-tick displacement.
type Velocity struct {
	X, Y float32
}

// SparkKind identifies what emitted a spark.
type SparkKind uint8

const (
	SparkPaddleHit SparkKind = iota
	SparkWallBounce
	SparkPoint
)

// Spark is a short-lived visual particle.
type Spark struct {
	Kind    SparkKind
	Life    int32
	MaxLife int32
	Size    float32
}

// Alpha returns the remaining life as a fraction in [0, 1].
func (s *Spark) Alpha() float32 {
	if s.MaxLife <= 0 {
		return 0
	}
	a := float32(s.Life) / float32(s.MaxLife)
	if a < 0 {
		return 0
	}
	return a
}
