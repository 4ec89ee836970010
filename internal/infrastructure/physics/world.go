// Package physics wraps the box2d rigid-body world used by every level.
package physics

import (
	"github.com/ByteArena/box2d"
)

// Solver iterations used for every step. Fixed: tuned for stability over speed.
const (
	VelocityIterations = 6
	PositionIterations = 2
)

// Collision categories (bit flags on every fixture filter)
const (
	CategoryPlayer uint16 = 0x0001
	CategoryEnv    uint16 = 0x0002
	CategoryDanger uint16 = 0x0004
	CategorySensor uint16 = 0x0008
)

// World owns a box2d world for the lifetime of one level.
type World struct {
	b2     box2d.B2World
	closed bool
}

// NewWorld creates a world with the given initial gravity vector.
// Fixture category and mask bits are only honoured once a contact filter
// is installed, so every world gets the stock one.
func NewWorld(gx, gy float64) *World {
	w := &World{
		b2: box2d.MakeB2World(box2d.MakeB2Vec2(gx, gy)),
	}
	w.b2.SetContactFilter(&box2d.B2ContactFilter{})
	return w
}

// Advance steps the simulation by dt scaled by timeScale.
// Contact callbacks registered with SetContactListener fire synchronously
// inside this call.
func (w *World) Advance(dt, timeScale float64) {
	if w.closed {
		return
	}
	step := dt * timeScale
	if step <= 0 {
		return
	}
	w.b2.Step(step, VelocityIterations, PositionIterations)
}

// SetGravity re-points the uniform force field.
func (w *World) SetGravity(x, y float64) {
	w.b2.SetGravity(box2d.MakeB2Vec2(x, y))
}

// Gravity returns the current force field vector.
func (w *World) Gravity() (x, y float64) {
	g := w.b2.GetGravity()
	return g.X, g.Y
}

// SetContactListener registers the begin/end/pre/post-solve callbacks.
func (w *World) SetContactListener(listener box2d.B2ContactListenerInterface) {
	w.b2.SetContactListener(listener)
}

// CreateBody adds a body to the world. Must not be called while Locked.
func (w *World) CreateBody(def *box2d.B2BodyDef) *box2d.B2Body {
	return w.b2.CreateBody(def)
}

// Locked reports whether the world is in the middle of a step.
func (w *World) Locked() bool {
	return w.b2.IsLocked()
}

// BodyCount returns the number of bodies currently in the world.
func (w *World) BodyCount() int {
	return w.b2.GetBodyCount()
}

// Closed reports whether Close has been called.
func (w *World) Closed() bool {
	return w.closed
}

// Close destroys every body and detaches the contact listener.
// Safe to call more than once.
func (w *World) Close() {
	if w.closed {
		return
	}
	w.b2.SetContactListener(nil)
	for b := w.b2.GetBodyList(); b != nil; {
		next := b.GetNext()
		w.b2.DestroyBody(b)
		b = next
	}
	w.closed = true
}
