package system

import (
	"github.com/ByteArena/box2d"
	"github.com/younwookim/gravityshift/internal/domain/entity"
	"github.com/younwookim/gravityshift/internal/domain/mechanics"
	"github.com/younwookim/gravityshift/internal/infrastructure/config"
)

// Signals receives the level-wide requests raised by contacts
type Signals interface {
	TriggerRespawn()
	QueueLevelComplete()
}

// surface is anything with a standing top edge
type surface interface {
	Top() float64
}

// ContactHandler turns raw contact pairs into gameplay effects.
// It implements box2d.B2ContactListenerInterface; every callback runs inside
// the physics step, so structural changes are pushed to the intent queue.
type ContactHandler struct {
	registry *entity.Registry
	gravity  *mechanics.GravityManager
	time     *mechanics.TimeManager
	queue    *Queue
	signals  Signals
	cfg      config.ContactTuning
}

// NewContactHandler creates a handler bound to one level
func NewContactHandler(
	registry *entity.Registry,
	gravity *mechanics.GravityManager,
	time *mechanics.TimeManager,
	queue *Queue,
	signals Signals,
	cfg config.ContactTuning,
) *ContactHandler {
	return &ContactHandler{
		registry: registry,
		gravity:  gravity,
		time:     time,
		queue:    queue,
		signals:  signals,
		cfg:      cfg,
	}
}

// BeginContact implements box2d.B2ContactListenerInterface
func (h *ContactHandler) BeginContact(contact box2d.B2ContactInterface) {
	if a, b, ok := contactTags(contact); ok {
		h.begin(a, b)
	}
}

// EndContact implements box2d.B2ContactListenerInterface
func (h *ContactHandler) EndContact(contact box2d.B2ContactInterface) {
	if a, b, ok := contactTags(contact); ok {
		h.end(a, b)
	}
}

// PreSolve implements box2d.B2ContactListenerInterface
func (h *ContactHandler) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {
	if a, b, ok := contactTags(contact); ok {
		h.preSolve(a, b)
	}
}

// PostSolve implements box2d.B2ContactListenerInterface
func (h *ContactHandler) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}

func contactTags(contact box2d.B2ContactInterface) (entity.Tag, entity.Tag, bool) {
	if contact == nil {
		return entity.Tag{}, entity.Tag{}, false
	}
	a, okA := entity.TagOf(contact.GetFixtureA())
	b, okB := entity.TagOf(contact.GetFixtureB())
	return a, b, okA && okB
}

// pair orders a contact as (player, other). Pairs without the player body are ignored.
func (h *ContactHandler) pair(a, b entity.Tag) (*entity.Player, entity.Tag, bool) {
	p := h.registry.Player()
	if p == nil {
		return nil, entity.Tag{}, false
	}
	switch {
	case a.ID == p.ID() && a.Part == entity.PartBody:
		return p, b, true
	case b.ID == p.ID() && b.Part == entity.PartBody:
		return p, a, true
	}
	return nil, entity.Tag{}, false
}

func (h *ContactHandler) begin(a, b entity.Tag) {
	p, other, ok := h.pair(a, b)
	if !ok {
		return
	}

	// Head sensor contacts never fall through to the body rules
	if other.Part == entity.PartTopSensor {
		h.stomp(p, other.ID)
		return
	}

	e, ok := h.registry.Get(other.ID)
	if !ok {
		return
	}

	switch e.Kind() {
	case entity.KindPlatform, entity.KindVanishingPlatform, entity.KindImpulsePlatform:
		p.AllowJump()
		switch pl := e.(type) {
		case *entity.VanishingPlatform:
			pl.Activate()
		case *entity.ImpulsePlatform:
			pl.ApplyTo(p)
		}
	case entity.KindSpike:
		h.signals.TriggerRespawn()
	case entity.KindEnemy:
		if en, ok := e.(*entity.Enemy); ok && en.Patrolling() && en.Active() {
			h.signals.TriggerRespawn()
		}
	case entity.KindGravityZone:
		if z, ok := e.(*entity.Zone); ok {
			h.gravity.Set(z.Direction())
		}
	case entity.KindTimeSlowZone:
		h.time.Slow()
	case entity.KindFinishZone:
		h.signals.QueueLevelComplete()
	}
}

// stomp kills the enemy when the player lands on its head while not rising
func (h *ContactHandler) stomp(p *entity.Player, enemyID entity.EntityID) {
	en, ok := h.registry.Enemy(enemyID)
	if !ok || !en.Patrolling() || !en.Active() || !p.Active() {
		return
	}

	_, vy := p.Velocity()
	_, py := p.Position()
	_, ey := en.Position()
	if vy >= h.cfg.StompMaxVY || py <= ey {
		return
	}

	if en.Kill() {
		h.queue.Push(KillIntent{EnemyID: en.ID()})
	}
	p.ApplyImpulse(0, h.cfg.StompBounce)
}

func (h *ContactHandler) end(a, b entity.Tag) {
	p, other, ok := h.pair(a, b)
	if !ok || other.Part != entity.PartBody {
		return
	}

	e, ok := h.registry.Get(other.ID)
	if !ok {
		return
	}

	switch {
	case e.Kind().IsPlatform():
		p.ForbidJump()
	case e.Kind() == entity.KindTimeSlowZone:
		h.time.Reset()
	}
}

// preSolve queues a small upward correction when the player has sunk a
// few hundredths into a platform top while settling.
func (h *ContactHandler) preSolve(a, b entity.Tag) {
	p, other, ok := h.pair(a, b)
	if !ok || other.Part != entity.PartBody {
		return
	}

	e, ok := h.registry.Get(other.ID)
	if !ok || !e.Kind().IsPlatform() {
		return
	}
	s, ok := e.(surface)
	if !ok {
		return
	}

	_, py := p.Position()
	_, hh := p.HalfSize()
	_, vy := p.Velocity()

	top := s.Top()
	bottom := py - hh
	if bottom < top-h.cfg.LowerBand || bottom > top+h.cfg.UpperBand || vy > h.cfg.MaxRiseSpeed {
		return
	}

	target := top + hh
	diff := target - py
	if diff <= h.cfg.MinCorrection || diff >= h.cfg.MaxCorrection {
		return
	}

	h.queue.Push(SnapIntent{
		PlayerID: p.ID(),
		Y:        target,
		ZeroVY:   vy < 0 && vy > -h.cfg.MaxSettleSpeed,
	})
}
