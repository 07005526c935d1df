// Package replay provides input playback from recorded session files.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/viewloop/internal/application/view"
)

// Replayer feeds recorded frames back one at a time.
type Replayer struct {
	data  Session
	frame int
}

// NewReplayer creates a new replayer from session data.
func NewReplayer(data Session) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadSession loads session data from a file.
func LoadSession(filename string) (*Session, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Session
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances.
// The second return value is false once all frames are consumed.
func (r *Replayer) GetInput() (view.Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return view.Input{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return view.Input{
		Quit:   fi.Q,
		Escape: fi.E,
		Space:  fi.S,
	}, true
}

// Poll implements the driver's input source. When the recording runs out it
// reports a quit request so playback terminates cleanly.
func (r *Replayer) Poll() view.Input {
	in, ok := r.GetInput()
	if !ok {
		return view.Input{Quit: true}
	}
	return in
}

// CurrentFrame returns the current frame number.
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames.
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// StartView returns the name of the view the recording began on.
func (r *Replayer) StartView() string {
	return r.data.StartView
}

// Reset resets the replayer to the beginning.
func (r *Replayer) Reset() {
	r.frame = 0
}
