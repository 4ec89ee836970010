package config

// LevelConfig is the root config for level JSON files
type LevelConfig struct {
	Name          string              `json:"name"`
	TimeLimit     float64             `json:"timeLimit,omitempty"`
	Spawn         PointConfig         `json:"spawn"`
	Finish        PointConfig         `json:"finish"`
	Platforms     []PlatformConfig    `json:"platforms"`
	Spikes        []RectConfig        `json:"spikes,omitempty"`
	GravityZones  []GravityZoneConfig `json:"gravityZones,omitempty"`
	TimeSlowZones []RectConfig        `json:"timeSlowZones,omitempty"`
	Enemies       []RectConfig        `json:"enemies,omitempty"`
	Boxes         []RectConfig        `json:"boxes,omitempty"`
}

type PointConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RectConfig is a centre point plus half extents
type RectConfig struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	HW float64 `json:"hw"`
	HH float64 `json:"hh"`
}

type PlatformConfig struct {
	RectConfig
	Friction float64      `json:"friction"`
	Type     string       `json:"type,omitempty"` // normal | vanishing | impulse
	Impulse  *PointConfig `json:"impulse,omitempty"`
}

type GravityZoneConfig struct {
	RectConfig
	Direction string `json:"direction"` // up | down | left | right
}
