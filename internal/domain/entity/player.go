package entity

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/younwookim/gravityshift/internal/domain/mechanics"
	"github.com/younwookim/gravityshift/internal/infrastructure/physics"
)

// GravitySource reports the current gravity direction
type GravitySource interface {
	Get() mechanics.Direction
}

// PlayerParams holds the player body and movement tuning
type PlayerParams struct {
	HalfW       float64
	HalfH       float64
	Density     float64
	Friction    float64
	MoveSpeed   float64 // units/sec along the axis perpendicular to gravity
	JumpImpulse float64
}

// DefaultPlayerParams returns the stock player tuning
func DefaultPlayerParams() PlayerParams {
	return PlayerParams{
		HalfW:       0.4,
		HalfH:       0.6,
		Density:     1,
		Friction:    0.2,
		MoveSpeed:   3,
		JumpImpulse: 7,
	}
}

// Player is the controlled body
type Player struct {
	base
	params  PlayerParams
	gravity GravitySource

	canJump       bool
	move          float64
	jumpRequested bool

	// Animation state
	facingRight bool
	moving      bool
	animTime    float64
}

// NewPlayer creates the player body at the spawn point
func NewPlayer(id EntityID, w *physics.World, x, y float64, gravity GravitySource, p PlayerParams) *Player {
	body := w.NewBody(physics.Dynamic, x, y, true)
	physics.AttachBox(body, p.HalfW, p.HalfH, physics.FixtureSpec{
		Density:  p.Density,
		Friction: p.Friction,
		Category: physics.CategoryPlayer,
		Mask:     physics.CategoryEnv | physics.CategoryDanger | physics.CategorySensor,
		UserData: tag(id),
	})

	return &Player{
		base:        base{id: id, kind: KindPlayer, body: body, halfW: p.HalfW, halfH: p.HalfH},
		params:      p,
		gravity:     gravity,
		facingRight: true,
	}
}

// SetMove sets this frame's movement intent along the free axis, clamped to [-1, 1]
func (p *Player) SetMove(move float64) {
	p.move = math.Max(-1, math.Min(1, move))
}

// RequestJump asks for a jump on the next update
func (p *Player) RequestJump() {
	p.jumpRequested = true
}

// AllowJump grants jump permission (platform touched)
func (p *Player) AllowJump() {
	p.canJump = true
}

// ForbidJump revokes jump permission (platform left)
func (p *Player) ForbidJump() {
	p.canJump = false
}

// CanJump reports whether a jump would currently fire
func (p *Player) CanJump() bool {
	return p.canJump
}

// Update applies the pending intents. Both are consumed.
func (p *Player) Update(dt float64) {
	p.animTime += dt

	move := p.move
	p.move = 0
	p.moving = math.Abs(move) > 0.1
	if move > 0.1 {
		p.facingRight = true
	} else if move < -0.1 {
		p.facingRight = false
	}

	vel := p.body.GetLinearVelocity()
	if p.gravity.Get().Vertical() {
		vel.X = move * p.params.MoveSpeed
	} else {
		vel.Y = move * p.params.MoveSpeed
	}
	p.body.SetLinearVelocity(vel)

	if p.jumpRequested {
		p.jumpRequested = false
		p.Jump()
	}
}

// Jump applies the jump impulse opposite to gravity if permitted.
// Permission is consumed; it returns whether the impulse fired.
func (p *Player) Jump() bool {
	if !p.canJump {
		return false
	}
	ux, uy := p.gravity.Get().Unit()
	p.ApplyImpulse(-ux*p.params.JumpImpulse, -uy*p.params.JumpImpulse)
	p.canJump = false
	return true
}

// ApplyImpulse pushes the player's centre of mass
func (p *Player) ApplyImpulse(x, y float64) {
	p.body.ApplyLinearImpulse(box2d.MakeB2Vec2(x, y), p.body.GetWorldCenter(), true)
}

// Velocity returns the linear velocity
func (p *Player) Velocity() (vx, vy float64) {
	v := p.body.GetLinearVelocity()
	return v.X, v.Y
}

// Teleport moves the player to (x, y) and zeroes all motion.
// Must not be called while the world is stepping.
func (p *Player) Teleport(x, y float64) {
	p.body.SetTransform(box2d.MakeB2Vec2(x, y), 0)
	p.body.SetLinearVelocity(box2d.MakeB2Vec2(0, 0))
	p.body.SetAngularVelocity(0)
	p.body.SetAwake(true)
}

// SnapY places the player at y, optionally zeroing vertical velocity
func (p *Player) SnapY(y float64, zeroVY bool) {
	pos := p.body.GetPosition()
	p.body.SetTransform(box2d.MakeB2Vec2(pos.X, y), p.body.GetAngle())
	if zeroVY {
		v := p.body.GetLinearVelocity()
		v.Y = 0
		p.body.SetLinearVelocity(v)
	}
}

// View implements Entity
func (p *Player) View() View {
	v := p.view()
	v.FacingRight = p.facingRight
	v.Moving = p.moving
	v.AnimTime = p.animTime
	return v
}
