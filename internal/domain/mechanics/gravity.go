// Package mechanics holds the level-wide gravity and time state.
package mechanics

import "fmt"

// DefaultGravity is the magnitude of the world force field
const DefaultGravity = 9.8

// Direction is the side of the screen gravity pulls toward
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
)

// String returns the lowercase name used in level files
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Unit returns the unit vector gravity points along
func (d Direction) Unit() (x, y float64) {
	switch d {
	case Up:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, -1
	}
}

// Vertical reports whether gravity pulls along the Y axis
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// ParseDirection converts a level-file name into a Direction
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "down", "DOWN":
		return Down, nil
	case "up", "UP":
		return Up, nil
	case "left", "LEFT":
		return Left, nil
	case "right", "RIGHT":
		return Right, nil
	default:
		return Down, fmt.Errorf("unknown gravity direction %q", s)
	}
}

// Field is the simulation-wide force field gravity is applied to
type Field interface {
	SetGravity(x, y float64)
}

// GravityManager owns the current gravity direction of a level
type GravityManager struct {
	field     Field
	magnitude float64
	current   Direction
}

// NewGravityManager creates a manager and applies Down to field immediately.
func NewGravityManager(field Field, magnitude float64) *GravityManager {
	g := &GravityManager{field: field, magnitude: magnitude}
	g.Set(Down)
	return g
}

// Set re-points the field along d
func (g *GravityManager) Set(d Direction) {
	g.current = d
	x, y := g.Vector()
	g.field.SetGravity(x, y)
}

// Get returns the current direction
func (g *GravityManager) Get() Direction {
	return g.current
}

// Vector returns the force applied for the current direction
func (g *GravityManager) Vector() (x, y float64) {
	ux, uy := g.current.Unit()
	return ux * g.magnitude, uy * g.magnitude
}
