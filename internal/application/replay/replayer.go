package replay

import (
	"time"
)

// Input is the gameplay input of one replayed frame
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return Input{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return Input{Left: fi.L, Right: fi.R, Jump: fi.J}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the catalog index the replay was recorded on
func (r *Replayer) Level() int {
	return r.data.Level
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: hold right for
// every frame and press jump on the listed frames.
func CreateTestReplayData(level, frames int, jumpFrames ...int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Level:     level,
		LevelName: "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, R: true}
	}
	for _, j := range jumpFrames {
		if j >= 0 && j < frames {
			data.Frames[j].J = true
		}
	}

	return data
}
