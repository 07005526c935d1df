package replay

// FrameInput records the input snapshot for a single frame.
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	Q bool `json:"q,omitempty"` // Quit requested
	E bool `json:"e,omitempty"` // Escape
	S bool `json:"s,omitempty"` // Space
}

// Session contains all data needed to replay a recorded run.
// StartView names the view the run began on so playback starts from the
// same state.
type Session struct {
	Version   string       `json:"version"`
	StartView string       `json:"startView"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
