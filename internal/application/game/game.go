// Package game provides the driver that holds the active view and applies
// the actions it returns.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/viewloop/internal/application/render"
	"github.com/younwookim/viewloop/internal/application/view"
)

// InputSource produces the next frame's input snapshot. The live keyboard
// poller and the replayer both satisfy it.
type InputSource interface {
	Poll() view.Input
}

// Game implements ebiten.Game and drives exactly one active view per frame.
type Game struct {
	current view.View
	input   InputSource
	surface *render.Buffer
	screenW int
	screenH int
	dt      float64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Game with the given initial view and input source.
func New(initial view.View, input InputSource, screenW, screenH int) *Game {
	return &Game{
		current: initial,
		input:   input,
		surface: render.NewBuffer(),
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
}

// Update renders one frame of the active view and applies the result.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	in := g.input.Poll()

	if g.recorder != nil {
		g.recorder.RecordFrame(in)
	}

	ctx := &view.Context{Surface: g.surface, Input: in}
	action := g.current.Render(ctx, g.dt)

	switch action.Kind {
	case view.ActionChange:
		g.current = action.Next
	case view.ActionQuit:
		g.saveRecording()
		return ebiten.Termination
	}

	return nil
}

// Draw applies the frame's buffered clear to the screen.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Flush(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// EnableRecording records every polled snapshot and saves the session when
// the loop terminates. startView names the view the run begins on.
func (g *Game) EnableRecording(filename, startView string) {
	g.recorder = NewRecorder(startView)
	g.recordFilename = filename
}
