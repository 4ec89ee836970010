package entity

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/younwookim/gravityshift/internal/infrastructure/physics"
)

// EnemyState is the life cycle of an enemy
type EnemyState int

const (
	EnemyPatrolling EnemyState = iota
	EnemyPendingKill
	EnemyDead
)

// String returns the string representation of the state
func (s EnemyState) String() string {
	switch s {
	case EnemyPatrolling:
		return "Patrolling"
	case EnemyPendingKill:
		return "PendingKill"
	case EnemyDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// PatrolBounds is the horizontal range an enemy walks
type PatrolBounds struct {
	MinX, MaxX float64
	Y          float64
}

// EnemyParams holds enemy tuning
type EnemyParams struct {
	PatrolSpeed  float64
	TurnEpsilon  float64 // flip when this close to the target
	SensorHeight float64
	SensorWidth  float64 // fraction of body width covered by the top sensor
	DeathDispose float64
	Density      float64
	Friction     float64
}

// DefaultEnemyParams returns the stock enemy tuning
func DefaultEnemyParams() EnemyParams {
	return EnemyParams{
		PatrolSpeed:  1.5,
		TurnEpsilon:  0.1,
		SensorHeight: 0.15,
		SensorWidth:  0.9,
		DeathDispose: 0.5,
		Density:      1,
		Friction:     0.2,
	}
}

// Enemy is a kinematic patroller that can be stomped
type Enemy struct {
	base
	params EnemyParams
	bounds PatrolBounds
	fixedY float64

	state       EnemyState
	movingRight bool
	deathTimer  float64
	animTime    float64
}

// NewEnemy creates an enemy with a body fixture and a top sensor
func NewEnemy(id EntityID, w *physics.World, x, y, hw, hh float64, bounds PatrolBounds, p EnemyParams) *Enemy {
	body := w.NewBody(physics.Kinematic, x, y, true)
	physics.AttachBox(body, hw, hh, physics.FixtureSpec{
		Density:  p.Density,
		Friction: p.Friction,
		Category: physics.CategoryDanger,
		Mask:     physics.CategoryPlayer | physics.CategoryEnv,
		UserData: tag(id),
	})

	sx := hw * p.SensorWidth
	physics.AttachPolygon(body, []box2d.B2Vec2{
		box2d.MakeB2Vec2(-sx, hh),
		box2d.MakeB2Vec2(sx, hh),
		box2d.MakeB2Vec2(sx, hh+p.SensorHeight),
		box2d.MakeB2Vec2(-sx, hh+p.SensorHeight),
	}, physics.FixtureSpec{
		Sensor:   true,
		Category: physics.CategoryDanger,
		Mask:     physics.CategoryPlayer,
		UserData: Tag{ID: id, Part: PartTopSensor},
	})

	if bounds.MinX > bounds.MaxX {
		bounds.MinX, bounds.MaxX = bounds.MaxX, bounds.MinX
	}

	return &Enemy{
		base:        base{id: id, kind: KindEnemy, body: body, halfW: hw, halfH: hh},
		params:      p,
		bounds:      bounds,
		fixedY:      y,
		movingRight: true,
	}
}

// State returns the life-cycle state
func (e *Enemy) State() EnemyState {
	return e.state
}

// Patrolling reports whether the enemy is alive and not marked for death
func (e *Enemy) Patrolling() bool {
	return e.state == EnemyPatrolling
}

// Dead reports whether the kill has been finalised
func (e *Enemy) Dead() bool {
	return e.state == EnemyDead
}

// Bounds returns the patrol range
func (e *Enemy) Bounds() PatrolBounds {
	return e.bounds
}

// MovingRight reports the patrol direction
func (e *Enemy) MovingRight() bool {
	return e.movingRight
}

// AnimTime returns the animation clock
func (e *Enemy) AnimTime() float64 {
	return e.animTime
}

// Kill marks the enemy for death after the current step.
// Returns true only on the transition out of Patrolling.
func (e *Enemy) Kill() bool {
	if e.state != EnemyPatrolling {
		return false
	}
	e.state = EnemyPendingKill
	return true
}

// ProcessKill finalises a pending kill. Call only outside the physics step.
func (e *Enemy) ProcessKill() bool {
	if e.state != EnemyPendingKill {
		return false
	}
	e.state = EnemyDead
	if e.body.IsActive() {
		e.body.SetActive(false)
	}
	return true
}

// Update walks the patrol or runs the death timer
func (e *Enemy) Update(dt float64) {
	switch e.state {
	case EnemyPatrolling:
		if e.body.IsActive() {
			e.animTime += dt
			e.patrol(dt)
		}
	case EnemyDead:
		e.deathTimer += dt
		if e.deathTimer >= e.params.DeathDispose && e.body.IsActive() {
			e.body.SetActive(false)
		}
	}
}

func (e *Enemy) patrol(dt float64) {
	minX, maxX := e.bounds.MinX, e.bounds.MaxX
	x := e.body.GetPosition().X

	// Clamp into range
	if x < minX {
		x = minX
		e.movingRight = true
	} else if x > maxX {
		x = maxX
		e.movingRight = false
	}

	target := e.target()
	dx := target - x
	if math.Abs(dx) < e.params.TurnEpsilon {
		e.movingRight = !e.movingRight
		target = e.target()
		dx = target - x
	}

	step := e.params.PatrolSpeed * dt
	var nx float64
	if math.Abs(dx) < step {
		nx = target
	} else if dx > 0 {
		nx = x + step
	} else {
		nx = x - step
	}
	nx = math.Max(minX, math.Min(maxX, nx))

	// Y is pinned every frame so external pushes never lift the enemy
	e.body.SetTransform(box2d.MakeB2Vec2(nx, e.fixedY), 0)
}

func (e *Enemy) target() float64 {
	if e.movingRight {
		return e.bounds.MaxX
	}
	return e.bounds.MinX
}

// View implements Entity
func (e *Enemy) View() View {
	v := e.view()
	v.FacingRight = e.movingRight
	v.Moving = e.state == EnemyPatrolling
	v.Dead = e.state != EnemyPatrolling
	v.AnimTime = e.animTime
	return v
}
