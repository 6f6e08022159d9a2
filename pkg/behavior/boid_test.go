package behavior

import (
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func TestNew_InitialRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 100; i++ {
		b := New(rng, 800, 600)
		if b.Position.X < 0 || b.Position.X >= 800 {
			t.Fatalf("position X out of [0,800): %v", b.Position.X)
		}
		if b.Position.Y < 0 || b.Position.Y >= 600 {
			t.Fatalf("position Y out of [0,600): %v", b.Position.Y)
		}
		if b.Velocity.X < -1 || b.Velocity.X >= 1 {
			t.Fatalf("velocity X out of [-1,1): %v", b.Velocity.X)
		}
		if b.Velocity.Y < -1 || b.Velocity.Y >= 1 {
			t.Fatalf("velocity Y out of [-1,1): %v", b.Velocity.Y)
		}
		if (b.Acceleration != geometry.Vector2D{}) {
			t.Fatalf("new boid has nonzero acceleration: %v", b.Acceleration)
		}
	}
}

func TestBoid_ApplyForceAccumulates(t *testing.T) {
	b := &Boid{}
	b.ApplyForce(geometry.Vector2D{X: 1, Y: 2})
	b.ApplyForce(geometry.Vector2D{X: -0.5, Y: 0.5})

	want := geometry.Vector2D{X: 0.5, Y: 2.5}
	if !b.Acceleration.Eq(want) {
		t.Errorf("Acceleration = %v; want %v", b.Acceleration, want)
	}
}

func TestBoid_StepIntegration(t *testing.T) {
	s := DefaultSettings(800, 600)
	b := &Boid{
		Position:     geometry.Vector2D{X: 100, Y: 100},
		Velocity:     geometry.Vector2D{X: 1, Y: 0},
		Acceleration: geometry.Vector2D{X: 0, Y: 0.5},
	}

	b.step(s)

	if want := (geometry.Vector2D{X: 1, Y: 0.5}); !b.Velocity.Eq(want) {
		t.Errorf("Velocity = %v; want %v", b.Velocity, want)
	}
	if want := (geometry.Vector2D{X: 101, Y: 100.5}); !b.Position.Eq(want) {
		t.Errorf("Position = %v; want %v", b.Position, want)
	}
	if (b.Acceleration != geometry.Vector2D{}) {
		t.Errorf("Acceleration not reset after step: %v", b.Acceleration)
	}
}

func TestBoid_StepCapsSpeed(t *testing.T) {
	s := DefaultSettings(800, 600)
	b := &Boid{
		Velocity:     geometry.Vector2D{X: 10, Y: 0},
		Acceleration: geometry.Vector2D{X: 10, Y: 0},
	}

	b.step(s)

	if speed := b.Velocity.Len(); speed > s.MaxSpeed+geometry.Epsilon {
		t.Errorf("speed %v exceeds MaxSpeed %v", speed, s.MaxSpeed)
	}
}

func TestBoid_ToroidalWrapOrder(t *testing.T) {
	// A boid just past the left and bottom edges must land at x=width and
	// y=0: the negative-x check runs first (wrapping to width), and the
	// subsequent x>width check must not see that as an overflow. This
	// verifies sequential, not simultaneous, wrap logic.
	s := DefaultSettings(800, 600)
	b := &Boid{Position: geometry.Vector2D{X: -0.001, Y: 600.001}}

	b.step(s)

	if b.Position.X != 800 {
		t.Errorf("Position.X = %v; want 800 (wrapped from negative)", b.Position.X)
	}
	if b.Position.Y != 0 {
		t.Errorf("Position.Y = %v; want 0 (wrapped from overflow)", b.Position.Y)
	}
}

func TestBoid_WrapEachEdge(t *testing.T) {
	s := DefaultSettings(800, 600)
	tests := []struct {
		name string
		pos  geometry.Vector2D
		want geometry.Vector2D
	}{
		{"left edge", geometry.Vector2D{X: -1, Y: 300}, geometry.Vector2D{X: 800, Y: 300}},
		{"right edge", geometry.Vector2D{X: 801, Y: 300}, geometry.Vector2D{X: 0, Y: 300}},
		{"top edge", geometry.Vector2D{X: 400, Y: -1}, geometry.Vector2D{X: 400, Y: 600}},
		{"bottom edge", geometry.Vector2D{X: 400, Y: 601}, geometry.Vector2D{X: 400, Y: 0}},
		{"inside", geometry.Vector2D{X: 400, Y: 300}, geometry.Vector2D{X: 400, Y: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Boid{Position: tt.pos}
			b.step(s)
			if b.Position != tt.want {
				t.Errorf("Position = %v; want %v", b.Position, tt.want)
			}
		})
	}
}

func TestBoid_Heading(t *testing.T) {
	b := &Boid{Velocity: geometry.Vector2D{X: 0, Y: 2}}
	if got, want := b.Heading(), b.Velocity.Heading(); got != want {
		t.Errorf("Heading = %v; want %v", got, want)
	}
}
