package replay

// Version is written into every new recording
const Version = "2.0"

// FrameInput records the gameplay input of a single frame
type FrameInput struct {
	F int  `json:"f" msgpack:"f"`                     // Frame number
	L bool `json:"l,omitempty" msgpack:"l,omitempty"` // Left
	R bool `json:"r,omitempty" msgpack:"r,omitempty"` // Right
	J bool `json:"j,omitempty" msgpack:"j,omitempty"` // JumpPressed
}

// ReplayData contains all data needed to replay a level run.
// The simulation is deterministic, so no seed is stored.
type ReplayData struct {
	Version   string       `json:"version" msgpack:"version"`
	Level     int          `json:"level" msgpack:"level"`         // catalog index
	LevelName string       `json:"levelName" msgpack:"levelName"` // informational
	StartTime string       `json:"startTime" msgpack:"startTime"`
	Frames    []FrameInput `json:"frames" msgpack:"frames"`
}
