package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/crazy3lf/colorconv"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/MightyAlex200/plife"
)

const (
	screenWidth  = 1200
	screenHeight = 800
	particleSize = 2.0
	minZoom      = 0.1
)

// Viewer renders a simulation with Ebitengine. Drag to pan, wheel to zoom,
// space to pause, [ and ] to change ticks per frame.
type Viewer struct {
	sim    *plife.Simulation
	colors []color.RGBA

	zoom           float64
	camX, camY     float64
	prevMX, prevMY float64
	paused         bool
	ticksPerFrame  int

	ticks uint64
	start time.Time
}

// NewViewer builds a viewer with a hue-spread palette, one color per type.
func NewViewer(sim *plife.Simulation) *Viewer {
	numTypes := sim.Ruleset().NumTypes
	colors := make([]color.RGBA, numTypes)
	for t := range colors {
		h := float64(t) / float64(numTypes) * 360
		r, g, b, _ := colorconv.HSVToRGB(h, 1, 1)
		colors[t] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return &Viewer{
		sim:           sim,
		colors:        colors,
		zoom:          1,
		ticksPerFrame: 1,
		start:         time.Now(),
	}
}

// Update is called each tick by Ebitengine.
func (v *Viewer) Update() error {
	v.handleInput()
	if v.paused {
		return nil
	}
	for i := 0; i < v.ticksPerFrame; i++ {
		v.sim.Step()
		v.ticks++
	}
	return nil
}

func (v *Viewer) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) && v.ticksPerFrame > 1 {
		v.ticksPerFrame--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
		v.ticksPerFrame++
	}

	_, wheelY := ebiten.Wheel()
	v.zoom += wheelY * 0.1
	if v.zoom < minZoom {
		v.zoom = minZoom
	}

	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		v.camX -= (float64(mx) - v.prevMX) / v.zoom
		v.camY -= (float64(my) - v.prevMY) / v.zoom
	}
	v.prevMX = float64(mx)
	v.prevMY = float64(my)
}

// Draw is called each frame by Ebitengine.
func (v *Viewer) Draw(screen *ebiten.Image) {
	for _, p := range v.sim.Snapshot() {
		sx := (p.Position.X-v.camX)*v.zoom + screenWidth/2
		sy := (p.Position.Y-v.camY)*v.zoom + screenHeight/2
		if sx < -particleSize || sx > screenWidth+particleSize || sy < -particleSize || sy > screenHeight+particleSize {
			continue
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(particleSize*v.zoom), v.colors[p.Type], true)
	}

	tps := float64(v.ticks) / time.Since(v.start).Seconds()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("fps: %d\ntps: %d", int(ebiten.ActualFPS()), int(tps)))
}

// Layout returns the screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
