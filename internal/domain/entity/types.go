package entity

import (
	"github.com/ByteArena/box2d"
	"github.com/younwookim/gravityshift/internal/domain/mechanics"
)

// EntityID is a unique identifier for an entity (never recycled, 0 is "nil")
type EntityID uint32

// Kind discriminates the entity variants
type Kind int

const (
	KindPlayer Kind = iota
	KindPlatform
	KindVanishingPlatform
	KindImpulsePlatform
	KindSpike
	KindEnemy
	KindBox
	KindGravityZone
	KindTimeSlowZone
	KindFinishZone
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindPlatform:
		return "Platform"
	case KindVanishingPlatform:
		return "VanishingPlatform"
	case KindImpulsePlatform:
		return "ImpulsePlatform"
	case KindSpike:
		return "Spike"
	case KindEnemy:
		return "Enemy"
	case KindBox:
		return "Box"
	case KindGravityZone:
		return "GravityZone"
	case KindTimeSlowZone:
		return "TimeSlowZone"
	case KindFinishZone:
		return "FinishZone"
	default:
		return "Unknown"
	}
}

// IsPlatform is true for every kind the player can stand and jump on
func (k Kind) IsPlatform() bool {
	return k == KindPlatform || k == KindVanishingPlatform || k == KindImpulsePlatform
}

// Part identifies which fixture of an entity's body was touched
type Part int

const (
	PartBody Part = iota
	PartTopSensor
)

// Tag is stored as fixture user data and links a fixture back to its owner
type Tag struct {
	ID   EntityID
	Part Part
}

// TagOf extracts the tag from a fixture. Fixtures without one are not gameplay fixtures.
func TagOf(f *box2d.B2Fixture) (Tag, bool) {
	if f == nil {
		return Tag{}, false
	}
	tag, ok := f.GetUserData().(Tag)
	if !ok || tag.ID == 0 {
		return Tag{}, false
	}
	return tag, true
}

// Entity is the shared contract of every level object.
// Each entity owns exactly one body, fixed at construction.
type Entity interface {
	ID() EntityID
	Kind() Kind
	Body() *box2d.B2Body
	Update(dt float64)
	View() View
}

// View is the render-facing snapshot of an entity
type View struct {
	ID           EntityID
	Kind         Kind
	X, Y         float64
	HalfW, HalfH float64
	Active       bool
	Fraction     float64 // remaining life of a vanishing platform, 1..0
	FacingRight  bool
	Moving       bool
	Dead         bool
	AnimTime     float64
	Direction    mechanics.Direction
}

// base carries the fields every entity shares
type base struct {
	id           EntityID
	kind         Kind
	body         *box2d.B2Body
	halfW, halfH float64
}

func (b *base) ID() EntityID        { return b.id }
func (b *base) Kind() Kind          { return b.kind }
func (b *base) Body() *box2d.B2Body { return b.body }

// Position returns the body centre
func (b *base) Position() (x, y float64) {
	p := b.body.GetPosition()
	return p.X, p.Y
}

// HalfSize returns the declared half extents
func (b *base) HalfSize() (hw, hh float64) {
	return b.halfW, b.halfH
}

// Active reports whether the body still takes part in the simulation
func (b *base) Active() bool {
	return b.body.IsActive()
}

func (b *base) view() View {
	x, y := b.Position()
	return View{
		ID:       b.id,
		Kind:     b.kind,
		X:        x,
		Y:        y,
		HalfW:    b.halfW,
		HalfH:    b.halfH,
		Active:   b.body.IsActive(),
		Fraction: 1,
	}
}

func tag(id EntityID) Tag {
	return Tag{ID: id, Part: PartBody}
}
