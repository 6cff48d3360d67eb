package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pong/components"
)

// SparkSystem manages short-lived spark entities emitted on contacts.
// Sparks are purely visual and never feed back into the match state.
type SparkSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Spark]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Spark]
	rng    *rand.Rand

	maxSparks int
	baseLife  int32
	count     int

	toRemove []ecs.Entity
}

// NewSparkSystem creates a spark system with its own ECS world.
func NewSparkSystem(maxSparks, life int, rng *rand.Rand) *SparkSystem {
	w := ecs.NewWorld()
	if maxSparks <= 0 {
		maxSparks = 256
	}
	if life <= 0 {
		life = 30
	}
	return &SparkSystem{
		world:     w,
		mapper:    ecs.NewMap3[components.Position, components.Velocity, components.Spark](w),
		filter:    ecs.NewFilter3[components.Position, components.Velocity, components.Spark](w),
		rng:       rng,
		maxSparks: maxSparks,
		baseLife:  int32(life),
	}
}

// Emit spawns a burst of sparks for the given contacts.
func (s *SparkSystem) Emit(c Contacts) {
	x, y := float32(c.X), float32(c.Y)
	switch {
	case c.PlayerHit:
		s.burst(x, y, components.SparkPaddleHit, 10, -1)
	case c.OpponentHit:
		s.burst(x, y, components.SparkPaddleHit, 10, 1)
	case c.Scored != components.SideNone:
		s.burst(x, y, components.SparkPoint, 24, 0)
	}
	if c.WallBounce {
		s.burst(x, y, components.SparkWallBounce, 4, 0)
	}
}

// burst emits count sparks; bias pushes them up (-1) or down (1) the court.
func (s *SparkSystem) burst(x, y float32, kind components.SparkKind, count int, bias float32) {
	for i := 0; i < count && s.count < s.maxSparks; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 0.5 + s.rng.Float32()*1.5
		life := s.baseLife/2 + s.rng.Int31n(s.baseLife)

		pos := components.Position{
			X: x + (s.rng.Float32()-0.5)*4,
			Y: y + (s.rng.Float32()-0.5)*4,
		}
		vel := components.Velocity{
			X: float32(math.Cos(angle)) * speed,
			Y: float32(math.Sin(angle))*speed + bias,
		}
		spark := components.Spark{
			Kind:    kind,
			Life:    life,
			MaxLife: life,
			Size:    1.5 + s.rng.Float32()*1.5,
		}

		s.mapper.NewEntity(&pos, &vel, &spark)
		s.count++
	}
}

// Update ages and moves all sparks, removing expired ones.
func (s *SparkSystem) Update() {
	s.toRemove = s.toRemove[:0]

	query := s.filter.Query()
	for query.Next() {
		pos, vel, spark := query.Get()

		spark.Life--
		if spark.Life <= 0 {
			s.toRemove = append(s.toRemove, query.Entity())
			continue
		}

		// Drag
		vel.X *= 0.94
		vel.Y *= 0.94

		pos.X += vel.X
		pos.Y += vel.Y
	}

	// Remove entities after the query has released the world
	for _, e := range s.toRemove {
		s.world.RemoveEntity(e)
		s.count--
	}
}

// Each calls fn for every live spark. Used by renderers.
func (s *SparkSystem) Each(fn func(pos *components.Position, spark *components.Spark)) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, spark := query.Get()
		fn(pos, spark)
	}
}

// Clear removes every spark.
func (s *SparkSystem) Clear() {
	s.toRemove = s.toRemove[:0]
	query := s.filter.Query()
	for query.Next() {
		s.toRemove = append(s.toRemove, query.Entity())
	}
	for _, e := range s.toRemove {
		s.world.RemoveEntity(e)
	}
	s.count = 0
}

// Count returns the current number of live sparks.
func (s *SparkSystem) Count() int {
	return s.count
}
