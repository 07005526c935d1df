// Package view defines the View interface for game screens.
//
// Each screen implements the View interface to render one frame and report
// what the driver should do next. View transitions are handled by returning
// a change action carrying the next View.
package view

import "image/color"

// View represents a game screen.
//
// The driver calls Render once per frame with the shared context and the
// frame's delta time. The returned Action tells the driver whether to keep
// the current view, swap in a new one, or stop the loop.
type View interface {
	// Render produces one frame.
	// dt is the delta time in seconds (typically 1/60).
	Render(ctx *Context, dt float64) Action
}

// Surface is the drawing target a view clears each frame.
type Surface interface {
	// SetClearColor sets the color used by the next Clear.
	SetClearColor(c color.RGBA)

	// Clear fills the surface with the current clear color.
	Clear()
}

// Input is the per-frame input snapshot.
type Input struct {
	Quit   bool // Window close requested
	Escape bool // Escape pressed this frame
	Space  bool // Space pressed this frame
}

// Context is the shared per-frame state passed into each view by the driver.
// Views read input from it and issue draw commands through it; they must not
// retain it beyond the Render call.
type Context struct {
	Surface Surface
	Input   Input
}
