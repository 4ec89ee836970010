package entity

import (
	"math"

	"github.com/younwookim/gravityshift/internal/domain/mechanics"
	"github.com/younwookim/gravityshift/internal/infrastructure/physics"
)

// BoxParams holds pushable box tuning
type BoxParams struct {
	Density  float64
	Friction float64
	Damping  float64 // velocity multiplier applied each frame
}

// DefaultBoxParams returns the stock box tuning
func DefaultBoxParams() BoxParams {
	return BoxParams{Density: 0.5, Friction: 0.6, Damping: 0.95}
}

// Box is a pushable crate that slows to rest
type Box struct {
	base
	damping float64
}

// NewBox creates a dynamic box
func NewBox(id EntityID, w *physics.World, x, y, hw, hh float64, p BoxParams) *Box {
	body := w.NewBody(physics.Dynamic, x, y, true)
	physics.AttachBox(body, hw, hh, physics.FixtureSpec{
		Density:  p.Density,
		Friction: p.Friction,
		Category: physics.CategoryEnv,
		Mask:     physics.CategoryPlayer | physics.CategoryDanger | physics.CategoryEnv,
		UserData: tag(id),
	})
	return &Box{
		base:    base{id: id, kind: KindBox, body: body, halfW: hw, halfH: hh},
		damping: p.Damping,
	}
}

// Update damps the linear velocity
func (b *Box) Update(dt float64) {
	v := b.body.GetLinearVelocity()
	v.X *= b.damping
	v.Y *= b.damping
	b.body.SetLinearVelocity(v)
}

// View implements Entity
func (b *Box) View() View {
	return b.view()
}

// Spike hitbox caps
const (
	SpikeMaxHalfW   = 0.4
	SpikeMaxHalfH   = 0.5
	SpikeWidthRatio = 0.6
	SpikeHighRatio  = 0.9
)

// SpikeHitbox shrinks the declared half extents to the lethal area
func SpikeHitbox(hw, hh float64) (float64, float64) {
	return math.Min(SpikeMaxHalfW, hw*SpikeWidthRatio), math.Min(SpikeMaxHalfH, hh*SpikeHighRatio)
}

// Spike is a solid hazard with a hitbox smaller than its visual size
type Spike struct {
	base
	hitW, hitH float64
}

// NewSpike creates a static hazard. hw/hh are the visual half extents.
func NewSpike(id EntityID, w *physics.World, x, y, hw, hh float64) *Spike {
	hitW, hitH := SpikeHitbox(hw, hh)
	body := w.NewBody(physics.Static, x, y, false)
	physics.AttachBox(body, hitW, hitH, physics.FixtureSpec{
		Category: physics.CategoryDanger,
		Mask:     physics.CategoryPlayer,
		UserData: tag(id),
	})
	return &Spike{
		base: base{id: id, kind: KindSpike, body: body, halfW: hw, halfH: hh},
		hitW: hitW,
		hitH: hitH,
	}
}

// Hitbox returns the half extents of the lethal fixture
func (s *Spike) Hitbox() (hw, hh float64) {
	return s.hitW, s.hitH
}

func (s *Spike) Update(dt float64) {}

// View implements Entity
func (s *Spike) View() View {
	return s.view()
}

// Zone is a static sensor volume the player can enter
type Zone struct {
	base
	direction mechanics.Direction
}

func newZone(id EntityID, kind Kind, w *physics.World, x, y, hw, hh float64) *Zone {
	body := w.NewBody(physics.Static, x, y, false)
	physics.AttachBox(body, hw, hh, physics.FixtureSpec{
		Sensor:   true,
		Category: physics.CategorySensor,
		Mask:     physics.CategoryPlayer,
		UserData: tag(id),
	})
	return &Zone{base: base{id: id, kind: kind, body: body, halfW: hw, halfH: hh}}
}

// NewGravityZone creates a zone that redirects gravity to d
func NewGravityZone(id EntityID, w *physics.World, x, y, hw, hh float64, d mechanics.Direction) *Zone {
	z := newZone(id, KindGravityZone, w, x, y, hw, hh)
	z.direction = d
	return z
}

// NewTimeSlowZone creates a zone that slows the simulation while occupied
func NewTimeSlowZone(id EntityID, w *physics.World, x, y, hw, hh float64) *Zone {
	return newZone(id, KindTimeSlowZone, w, x, y, hw, hh)
}

// NewFinishZone creates the level goal
func NewFinishZone(id EntityID, w *physics.World, x, y, hw, hh float64) *Zone {
	return newZone(id, KindFinishZone, w, x, y, hw, hh)
}

// Direction returns the gravity payload (gravity zones only)
func (z *Zone) Direction() mechanics.Direction {
	return z.direction
}

func (z *Zone) Update(dt float64) {}

// View implements Entity
func (z *Zone) View() View {
	v := z.view()
	v.Direction = z.direction
	return v
}
