package behavior

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object",
// which refers to a bird-like object. https://en.wikipedia.org/wiki/Boids
type Boid struct {
	Position     geometry.Vector2D
	Velocity     geometry.Vector2D
	Acceleration geometry.Vector2D
}

// New creates a boid with a uniformly random position inside
// [0,width) x [0,height) and velocity components in [-1,1).
func New(rng *rand.Rand, width, height float64) *Boid {
	return &Boid{
		Position: geometry.Vector2D{
			X: rng.Float64() * width,
			Y: rng.Float64() * height,
		},
		Velocity: geometry.Vector2D{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
		},
	}
}

// ApplyForce accumulates a steering force into the boid's acceleration.
// The acceleration is transient: it is consumed and zeroed by step.
func (b *Boid) ApplyForce(force geometry.Vector2D) {
	b.Acceleration = b.Acceleration.Add(force)
}

// Heading returns the boid's orientation in radians, derived from its
// current velocity. Used by renderers to rotate an oriented marker.
func (b *Boid) Heading() float64 {
	return b.Velocity.Heading()
}

// step integrates one tick of motion and applies the toroidal boundary.
//
// The wrap checks are sequential, each one seeing the position left by the
// previous, and run in a fixed order: x<0, y<0, x>width, y>height. A boid
// that leaves through a corner therefore gets both axes wrapped in the same
// tick, and a value corrected by the first check is never re-wrapped by the
// opposite-boundary check.
func (b *Boid) step(s Settings) {
	b.Velocity = b.Velocity.Add(b.Acceleration).Limit(s.MaxSpeed)
	b.Position = b.Position.Add(b.Velocity)
	b.Acceleration = geometry.Vector2D{}

	if b.Position.X < 0 {
		b.Position.X = s.Width
	}
	if b.Position.Y < 0 {
		b.Position.Y = s.Height
	}
	if b.Position.X > s.Width {
		b.Position.X = 0
	}
	if b.Position.Y > s.Height {
		b.Position.Y = 0
	}
}
