// Package system provides the keyboard and window input poller.
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/viewloop/internal/application/view"
)

// InputSystem reads the live input state from ebiten.
type InputSystem struct{}

// NewInputSystem creates a new input system.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll builds the current frame's input snapshot.
// Quit reflects the window close button; the driver must enable
// ebiten.SetWindowClosingHandled so the close request reaches the views
// instead of killing the window directly.
func (s *InputSystem) Poll() view.Input {
	return view.Input{
		Quit:   ebiten.IsWindowBeingClosed(),
		Escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Space:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}
