package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/gravityshift/internal/application/replay"
	"github.com/younwookim/gravityshift/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for one level run
func NewRecorder(levelIndex int, levelName string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Level:     levelIndex,
			LevelName: levelName,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's gameplay input.
// Scene controls (pause, restart, back) are not recorded.
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F: r.frame,
		L: input.Left,
		R: input.Right,
		J: input.JumpPressed,
	})
	r.frame++
}

// Save writes the replay data to a file. A .mpk name selects msgpack.
func (r *Recorder) Save(filename string) error {
	if err := replay.Save(filename, r.data); err != nil {
		return fmt.Errorf("failed to save replay %s: %w", filename, err)
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

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename(ext string) string {
	return fmt.Sprintf("replay_%s%s", time.Now().Format("20060102_150405"), ext)
}
