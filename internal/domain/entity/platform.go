package entity

import (
	"github.com/younwookim/gravityshift/internal/infrastructure/physics"
)

// DefaultVanishLifetime is the time a vanishing platform survives once touched
const DefaultVanishLifetime = 1.2

// Platform is a static standable body
type Platform struct {
	base
	friction float64
}

// NewPlatform creates a static platform
func NewPlatform(id EntityID, w *physics.World, x, y, hw, hh, friction float64) *Platform {
	return newPlatform(id, KindPlatform, w, x, y, hw, hh, friction)
}

func newPlatform(id EntityID, kind Kind, w *physics.World, x, y, hw, hh, friction float64) *Platform {
	body := w.NewBody(physics.Static, x, y, false)
	physics.AttachBox(body, hw, hh, physics.FixtureSpec{
		Friction: friction,
		Category: physics.CategoryEnv,
		Mask:     physics.CategoryPlayer | physics.CategoryDanger,
		UserData: tag(id),
	})
	return &Platform{
		base:     base{id: id, kind: kind, body: body, halfW: hw, halfH: hh},
		friction: friction,
	}
}

// Top returns the y of the standing surface
func (p *Platform) Top() float64 {
	return p.body.GetPosition().Y + p.halfH
}

// Friction returns the surface friction
func (p *Platform) Friction() float64 {
	return p.friction
}

// Update is a no-op for static platforms
func (p *Platform) Update(dt float64) {}

// View implements Entity
func (p *Platform) View() View {
	return p.view()
}

// VanishingPlatform decays once the player first touches it
type VanishingPlatform struct {
	Platform
	initial   float64
	lifeTime  float64
	activated bool
}

// NewVanishingPlatform creates a platform that disappears lifetime seconds after first contact
func NewVanishingPlatform(id EntityID, w *physics.World, x, y, hw, hh, friction, lifetime float64) *VanishingPlatform {
	return &VanishingPlatform{
		Platform: *newPlatform(id, KindVanishingPlatform, w, x, y, hw, hh, friction),
		initial:  lifetime,
		lifeTime: lifetime,
	}
}

// Activate starts the countdown. One-way.
func (v *VanishingPlatform) Activate() {
	v.activated = true
}

// Activated reports whether the countdown has started
func (v *VanishingPlatform) Activated() bool {
	return v.activated
}

// LifeTime returns the remaining countdown
func (v *VanishingPlatform) LifeTime() float64 {
	return v.lifeTime
}

// Fraction returns the remaining life in [0, 1]
func (v *VanishingPlatform) Fraction() float64 {
	if v.initial <= 0 {
		return 0
	}
	f := v.lifeTime / v.initial
	if f < 0 {
		return 0
	}
	return f
}

// Update runs the countdown and deactivates the body when it expires
func (v *VanishingPlatform) Update(dt float64) {
	if !v.activated {
		return
	}
	if dt > 0 {
		v.lifeTime -= dt
	}
	if v.lifeTime <= 0 && v.body.IsActive() {
		v.body.SetActive(false)
	}
}

// View implements Entity
func (v *VanishingPlatform) View() View {
	view := v.view()
	view.Fraction = v.Fraction()
	return view
}

// ImpulsePlatform launches the player once per contact
type ImpulsePlatform struct {
	Platform
	impulseX, impulseY float64
}

// NewImpulsePlatform creates a launch pad with a fixed impulse
func NewImpulsePlatform(id EntityID, w *physics.World, x, y, hw, hh, friction, ix, iy float64) *ImpulsePlatform {
	return &ImpulsePlatform{
		Platform: *newPlatform(id, KindImpulsePlatform, w, x, y, hw, hh, friction),
		impulseX: ix,
		impulseY: iy,
	}
}

// Impulse returns the launch vector
func (i *ImpulsePlatform) Impulse() (x, y float64) {
	return i.impulseX, i.impulseY
}

// ApplyTo launches the player
func (i *ImpulsePlatform) ApplyTo(p *Player) {
	p.ApplyImpulse(i.impulseX, i.impulseY)
}
