// Package render bridges view draw commands to the ebiten screen.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/viewloop/internal/application/view"
)

// Buffer latches clear commands issued during the update phase so they can
// be applied to the screen during the draw phase. The latch persists across
// frames: a frame that issues no commands (a transition or quit frame)
// repaints the previous color instead of flashing black.
type Buffer struct {
	clearColor color.RGBA
	cleared    bool
}

var _ view.Surface = (*Buffer)(nil)

// NewBuffer creates an empty surface buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// SetClearColor sets the color used by the next Clear.
func (b *Buffer) SetClearColor(c color.RGBA) {
	b.clearColor = c
}

// Clear marks the surface for clearing with the current clear color.
func (b *Buffer) Clear() {
	b.cleared = true
}

// Flush applies the latched clear to the screen.
func (b *Buffer) Flush(screen *ebiten.Image) {
	if !b.cleared {
		return
	}
	screen.Fill(b.clearColor)
}
