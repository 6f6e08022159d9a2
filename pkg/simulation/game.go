package simulation

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/behavior"
)

// whiteImage is the 1-texel source every triangle samples from.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.RGBA{R: 100, G: 200, B: 255, A: 255})
}

// Game is the ebiten driver around the flock kernel. It owns the pacing:
// one kernel tick per ebiten update, one snapshot read per draw. The kernel
// stays passive and is never touched from another goroutine.
type Game struct {
	flock *behavior.Flock
	cfg   *Config

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// GetNewGame builds the game around a freshly constructed flock.
func GetNewGame(cfg *Config) *Game {
	return &Game{
		flock: behavior.NewFlock(cfg.NumBoids, cfg.Settings()),
		cfg:   cfg,
	}
}

// Flock exposes the simulation kernel, mostly for headless drivers.
func (g *Game) Flock() *behavior.Flock { return g.flock }

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	g.flock.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	for _, b := range g.flock.Snapshot() {
		drawBoid(screen, b)
	}

	if g.cfg.ShowStats {
		msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nBoids: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
			ebiten.ActualFPS(),
			ebiten.ActualTPS(),
			g.flock.Len(),
			g.updateAvg,
			g.drawAvg)
		ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
	}
}

// drawBoid renders one boid as an oriented triangle pointing along its
// heading.
func drawBoid(screen *ebiten.Image, b behavior.BoidState) {
	tipX := b.Position.X + math.Cos(b.Heading)*6
	tipY := b.Position.Y + math.Sin(b.Heading)*6
	rightX := b.Position.X + math.Cos(b.Heading+2.5)*5
	rightY := b.Position.Y + math.Sin(b.Heading+2.5)*5
	leftX := b.Position.X + math.Cos(b.Heading-2.5)*5
	leftY := b.Position.Y + math.Sin(b.Heading-2.5)*5

	// Define the 3 vertices of the triangle
	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
	}

	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}

	screen.DrawTriangles(vertices, indices, whiteImage, op)
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}
