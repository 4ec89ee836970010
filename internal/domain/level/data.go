// Package level describes the static content of a level.
package level

import "github.com/younwookim/gravityshift/internal/domain/mechanics"

// Vec is a point or extent in world units
type Vec struct {
	X, Y float64
}

// V builds a Vec
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// PlatformType selects the platform behaviour
type PlatformType int

const (
	PlatformNormal PlatformType = iota
	PlatformVanishing
	PlatformImpulse
)

// String returns the lowercase name used in level files
func (t PlatformType) String() string {
	switch t {
	case PlatformNormal:
		return "normal"
	case PlatformVanishing:
		return "vanishing"
	case PlatformImpulse:
		return "impulse"
	default:
		return "unknown"
	}
}

// PlatformData declares one platform
type PlatformData struct {
	Position Vec
	HalfSize Vec
	Friction float64
	Type     PlatformType
	Impulse  Vec // launch vector for impulse platforms
}

// SpikeData declares a hazard by its visual size
type SpikeData struct {
	Position Vec
	HalfSize Vec
}

// GravityZoneData declares a zone that redirects gravity
type GravityZoneData struct {
	Position  Vec
	HalfSize  Vec
	Direction mechanics.Direction
}

// TimeSlowZoneData declares a zone that slows the simulation
type TimeSlowZoneData struct {
	Position Vec
	HalfSize Vec
}

// EnemyData declares an enemy. Patrol bounds are derived at assembly.
type EnemyData struct {
	Position Vec
	HalfSize Vec
}

// BoxData declares a pushable box
type BoxData struct {
	Position Vec
	HalfSize Vec
}

// Data is the immutable description of one level
type Data struct {
	Name          string
	TimeLimit     float64 // informational
	Spawn         Vec
	Finish        Vec
	Platforms     []PlatformData
	Spikes        []SpikeData
	GravityZones  []GravityZoneData
	TimeSlowZones []TimeSlowZoneData
	Enemies       []EnemyData
	Boxes         []BoxData
}

// Clone returns a copy that shares no slices with d
func (d Data) Clone() Data {
	c := d
	c.Platforms = append([]PlatformData(nil), d.Platforms...)
	c.Spikes = append([]SpikeData(nil), d.Spikes...)
	c.GravityZones = append([]GravityZoneData(nil), d.GravityZones...)
	c.TimeSlowZones = append([]TimeSlowZoneData(nil), d.TimeSlowZones...)
	c.Enemies = append([]EnemyData(nil), d.Enemies...)
	c.Boxes = append([]BoxData(nil), d.Boxes...)
	return c
}

// Catalog is an ordered, index-addressable set of levels
type Catalog struct {
	levels []Data
}

// NewCatalog builds a catalog from the given levels
func NewCatalog(levels ...Data) *Catalog {
	c := &Catalog{levels: make([]Data, 0, len(levels))}
	for _, l := range levels {
		c.levels = append(c.levels, l.Clone())
	}
	return c
}

// Get returns a copy of level i, or false when i is out of range
func (c *Catalog) Get(i int) (Data, bool) {
	if c == nil || i < 0 || i >= len(c.levels) {
		return Data{}, false
	}
	return c.levels[i].Clone(), true
}

// Count returns the number of levels
func (c *Catalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.levels)
}

// Names lists level names in order
func (c *Catalog) Names() []string {
	out := make([]string, 0, c.Count())
	for i := 0; i < c.Count(); i++ {
		out = append(out, c.levels[i].Name)
	}
	return out
}

// Append adds levels after the existing ones
func (c *Catalog) Append(levels ...Data) {
	for _, l := range levels {
		c.levels = append(c.levels, l.Clone())
	}
}
