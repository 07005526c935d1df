package game

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/younwookim/viewloop/internal/application/replay"
	"github.com/younwookim/viewloop/internal/application/view"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.Session
	recording bool
	frame     int
}

// NewRecorder creates a new recorder. startView is stored in the session
// header so playback can start from the same view.
func NewRecorder(startView string) *Recorder {
	return &Recorder{
		data: replay.Session{
			Version:   "1.0",
			StartView: startView,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input snapshot.
func (r *Recorder) RecordFrame(in view.Input) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F: r.frame,
		Q: in.Quit,
		E: in.Escape,
		S: in.Space,
	})
	r.frame++
}

// Save writes the session to a file.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded session (for testing)
func (r *Recorder) Data() replay.Session {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("session_%s.json", time.Now().Format("20060102_150405"))
}

// saveRecording saves the current recording to file
func (g *Game) saveRecording() {
	if g.recorder == nil {
		return
	}

	filename := g.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := g.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, g.recorder.FrameCount())
	}
}
