package view

import (
	"fmt"
	"image/color"
)

// Colors for rendering
var (
	colorViewA = color.RGBA{255, 0, 0, 255}
	colorViewB = color.RGBA{0, 0, 255, 255}
)

// ViewA clears the screen red and hands control to ViewB on space.
type ViewA struct{}

// Render implements the View interface.
func (ViewA) Render(ctx *Context, _ float64) Action {
	if ctx.Input.Quit || ctx.Input.Escape {
		return Quit()
	}

	if ctx.Input.Space {
		return ChangeTo(ViewB{})
	}

	ctx.Surface.SetClearColor(colorViewA)
	ctx.Surface.Clear()

	return None()
}

// ViewB clears the screen blue and hands control back to ViewA on space.
type ViewB struct{}

// Render implements the View interface.
func (ViewB) Render(ctx *Context, _ float64) Action {
	if ctx.Input.Quit || ctx.Input.Escape {
		return Quit()
	}

	if ctx.Input.Space {
		return ChangeTo(ViewA{})
	}

	ctx.Surface.SetClearColor(colorViewB)
	ctx.Surface.Clear()

	return None()
}

// FromName returns the view registered under name ("a" or "b").
// Used for the initial view selection and for replay headers.
func FromName(name string) (View, error) {
	switch name {
	case "a":
		return ViewA{}, nil
	case "b":
		return ViewB{}, nil
	default:
		return nil, fmt.Errorf("unknown view %q", name)
	}
}
