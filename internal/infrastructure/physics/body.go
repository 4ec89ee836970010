package physics

import (
	"github.com/ByteArena/box2d"
)

// BodyType selects how the solver treats a body
type BodyType int

const (
	Static BodyType = iota
	Kinematic
	Dynamic
)

func (t BodyType) b2() uint8 {
	switch t {
	case Kinematic:
		return box2d.B2BodyType.B2_kinematicBody
	case Dynamic:
		return box2d.B2BodyType.B2_dynamicBody
	default:
		return box2d.B2BodyType.B2_staticBody
	}
}

// FixtureSpec holds the material and filter settings of one fixture
type FixtureSpec struct {
	Density  float64
	Friction float64
	Sensor   bool
	Category uint16
	Mask     uint16
	UserData interface{}
}

// NewBody creates a body of the given type at (x, y)
func (w *World) NewBody(t BodyType, x, y float64, fixedRotation bool) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Type = t.b2()
	def.Position.Set(x, y)
	def.FixedRotation = fixedRotation
	return w.CreateBody(&def)
}

// AttachBox adds an axis-aligned box fixture centred on the body
func AttachBox(body *box2d.B2Body, hx, hy float64, spec FixtureSpec) *box2d.B2Fixture {
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(hx, hy)
	return attach(body, &shape, spec)
}

// AttachPolygon adds a convex polygon fixture in body-local coordinates
func AttachPolygon(body *box2d.B2Body, vertices []box2d.B2Vec2, spec FixtureSpec) *box2d.B2Fixture {
	shape := box2d.MakeB2PolygonShape()
	shape.Set(vertices, len(vertices))
	return attach(body, &shape, spec)
}

func attach(body *box2d.B2Body, shape box2d.B2ShapeInterface, spec FixtureSpec) *box2d.B2Fixture {
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.Density = spec.Density
	fd.Friction = spec.Friction
	fd.IsSensor = spec.Sensor
	fd.Filter.CategoryBits = spec.Category
	fd.Filter.MaskBits = spec.Mask
	fd.UserData = spec.UserData
	return body.CreateFixtureFromDef(&fd)
}

// Fixtures returns the fixtures attached to body in creation-reverse order
// (box2d prepends new fixtures to the list).
func Fixtures(body *box2d.B2Body) []*box2d.B2Fixture {
	var out []*box2d.B2Fixture
	for f := body.GetFixtureList(); f != nil; f = f.GetNext() {
		out = append(out, f)
	}
	return out
}
