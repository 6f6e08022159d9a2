package behavior

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Settings controls the physics constants for the simulation.
// All values are fixed for the lifetime of a Flock.
type Settings struct {
	Width  float64 // World plane width
	Height float64 // World plane height

	MaxSpeed float64 // Velocity magnitude cap
	MaxForce float64 // Steering force magnitude cap

	SeparationWeight float64
	AlignmentWeight  float64
	CohesionWeight   float64

	PerceptionRadius float64 // How far can they see?

	Seed uint64 // Seed for the initial random placement
}

// DefaultSettings returns the classic flocking constants for a plane
// of the given dimensions.
func DefaultSettings(width, height float64) Settings {
	return Settings{
		Width:            width,
		Height:           height,
		MaxSpeed:         3.0,
		MaxForce:         0.05,
		SeparationWeight: 1.5,
		AlignmentWeight:  1.0,
		CohesionWeight:   1.0,
		PerceptionRadius: 50.0,
		Seed:             1,
	}
}

// BoidState is the read-only per-boid view handed to renderers:
// a position and a heading angle for drawing an oriented marker.
type BoidState struct {
	Position geometry.Vector2D
	Heading  float64
}

// Flock owns a fixed population of boids and advances them one tick at a
// time. It performs no internal concurrency and holds no locks: Update is
// meant to be driven from a single goroutine, once per tick, at whatever
// pace the caller chooses.
type Flock struct {
	settings Settings
	boids    []*Boid
}

// NewFlock creates a flock of count boids with random initial state drawn
// from a PCG source seeded by s.Seed. Two flocks built from identical
// settings and count produce bit-identical trajectories. A count of zero is
// legal and yields a no-op simulation.
func NewFlock(count int, s Settings) *Flock {
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed))
	boids := make([]*Boid, count)
	for i := range boids {
		boids[i] = New(rng, s.Width, s.Height)
	}
	return &Flock{settings: s, boids: boids}
}

// Len returns the population size.
func (f *Flock) Len() int { return len(f.boids) }

// Settings returns the flock's immutable configuration.
func (f *Flock) Settings() Settings { return f.settings }

// Snapshot returns a copy of the per-boid state the renderer needs.
// The slice is freshly allocated on every call; callers can hold on to it
// without aliasing live simulation state.
func (f *Flock) Snapshot() []BoidState {
	out := make([]BoidState, len(f.boids))
	for i, b := range f.boids {
		out[i] = BoidState{Position: b.Position, Heading: b.Heading()}
	}
	return out
}

// Update advances the simulation by one tick.
//
// Every steering force is computed against the population as it stood at
// the start of the tick: all forces land in a separate buffer before any
// boid is integrated, so no boid ever observes a sibling's already-updated
// state mid-tick. Brute-force neighbor scanning makes one tick O(n²) in the
// population size.
func (f *Flock) Update() {
	forces := make([]geometry.Vector2D, len(f.boids))
	for i, b := range f.boids {
		sep := f.separate(i, b).Mul(f.settings.SeparationWeight)
		ali := f.align(i, b).Mul(f.settings.AlignmentWeight)
		coh := f.cohere(i, b).Mul(f.settings.CohesionWeight)
		forces[i] = sep.Add(ali).Add(coh)
	}
	for i, b := range f.boids {
		b.ApplyForce(forces[i])
		b.step(f.settings)
	}
}

// isNeighbor reports whether the boid at index j is a neighbor of the boid
// at index self. Self-exclusion is by index, never by value: two boids that
// coincide in position are still distinct. The radius check is a strict
// less-than, so a boid exactly at the perception radius is not a neighbor.
func (f *Flock) isNeighbor(self, j int, b *Boid) bool {
	if j == self {
		return false
	}
	return b.Position.DistanceTo(f.boids[j].Position) < f.settings.PerceptionRadius
}

// separate steers away from nearby boids, weighting closer neighbors more:
// each neighbor contributes a unit vector pointing away, divided by the
// distance. If the averaged repulsion is exactly zero (no neighbors, or
// perfectly symmetric ones) the zero vector is returned as-is rather than
// being normalized.
func (f *Flock) separate(self int, b *Boid) geometry.Vector2D {
	var steer geometry.Vector2D
	count := 0
	for j, other := range f.boids {
		if !f.isNeighbor(self, j, b) {
			continue
		}
		d := b.Position.DistanceTo(other.Position)
		away := b.Position.Sub(other.Position).Normalize().Div(d)
		steer = steer.Add(away)
		count++
	}
	if count > 0 {
		steer = steer.Div(float64(count))
	}
	if steer.LenSqr() == 0 {
		return steer
	}
	desired := steer.Normalize().Mul(f.settings.MaxSpeed)
	return desired.Sub(b.Velocity).Limit(f.settings.MaxForce)
}

// align steers towards the average velocity of nearby boids.
func (f *Flock) align(self int, b *Boid) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0
	for j, other := range f.boids {
		if !f.isNeighbor(self, j, b) {
			continue
		}
		sum = sum.Add(other.Velocity)
		count++
	}
	if count == 0 {
		return geometry.Vector2D{}
	}
	desired := sum.Div(float64(count)).Normalize().Mul(f.settings.MaxSpeed)
	return desired.Sub(b.Velocity).Limit(f.settings.MaxForce)
}

// cohere steers towards the average position of nearby boids.
func (f *Flock) cohere(self int, b *Boid) geometry.Vector2D {
	var sum geometry.Vector2D
	count := 0
	for j, other := range f.boids {
		if !f.isNeighbor(self, j, b) {
			continue
		}
		sum = sum.Add(other.Position)
		count++
	}
	if count == 0 {
		return geometry.Vector2D{}
	}
	return f.seek(b, sum.Div(float64(count)))
}

// seek returns the steering force that nudges b's velocity towards the
// given target point, capped at MaxForce.
func (f *Flock) seek(b *Boid, target geometry.Vector2D) geometry.Vector2D {
	desired := target.Sub(b.Position).Normalize().Mul(f.settings.MaxSpeed)
	return desired.Sub(b.Velocity).Limit(f.settings.MaxForce)
}
