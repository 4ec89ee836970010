// Package session runs one level: the world, its entities and the per-frame
// order of updates, physics step and deferred intents.
package session

import (
	"errors"
	"fmt"

	"github.com/younwookim/gravityshift/internal/application/system"
	"github.com/younwookim/gravityshift/internal/domain/entity"
	"github.com/younwookim/gravityshift/internal/domain/level"
	"github.com/younwookim/gravityshift/internal/domain/mechanics"
	"github.com/younwookim/gravityshift/internal/infrastructure/config"
	"github.com/younwookim/gravityshift/internal/infrastructure/physics"
)

// ErrLevelNotFound is returned for an index outside the catalog
var ErrLevelNotFound = errors.New("level not found")

// Events are edge-triggered: each is true for exactly one Update
type Events struct {
	RespawnRequested bool
	Respawned        bool
	LevelComplete    bool
	NextLevel        bool // a following level exists
	Finished         bool // the last level was cleared
}

// Session owns the world of one level
type Session struct {
	catalog *level.Catalog
	index   int
	data    level.Data
	tuning  *config.Tuning

	world    *physics.World
	registry *entity.Registry
	player   *entity.Player
	gravity  *mechanics.GravityManager
	time     *mechanics.TimeManager
	queue    *system.Queue
	handler  *system.ContactHandler

	// Respawn
	respawnPending bool
	respawnTimer   float64

	// Completion
	completePending bool
	complete        bool

	elapsed float64
	pending Events // raised outside Update, reported by the next one
}

// New builds the level at index from catalog
func New(catalog *level.Catalog, index int, tuning *config.Tuning) (*Session, error) {
	data, ok := catalog.Get(index)
	if !ok {
		return nil, fmt.Errorf("failed to start level %d: %w", index, ErrLevelNotFound)
	}
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}

	s := &Session{
		catalog: catalog,
		index:   index,
		data:    data,
		tuning:  tuning,
	}
	s.build()
	return s, nil
}

func (s *Session) build() {
	s.world = physics.NewWorld(0, 0)
	s.registry = entity.NewRegistry()
	s.gravity = mechanics.NewGravityManager(s.world, s.tuning.World.Gravity)
	s.time = mechanics.NewTimeManager(s.tuning.World.SlowScale)
	s.queue = system.NewQueue()
	s.handler = system.NewContactHandler(s.registry, s.gravity, s.time, s.queue, s, s.tuning.Contact)
	s.world.SetContactListener(s.handler)

	s.player = system.AssembleLevel(s.world, s.data, s.registry, s.gravity, s.tuning)

	s.respawnPending = false
	s.respawnTimer = 0
	s.completePending = false
	s.complete = false
	s.elapsed = 0
	s.pending = Events{}
}

// Update advances one frame
func (s *Session) Update(dt float64) Events {
	if s.world.Closed() || s.complete {
		return Events{}
	}

	ev := s.pending
	s.pending = Events{}
	s.elapsed += dt

	// 1. Respawn timer
	if s.respawnPending {
		s.respawnTimer += dt
		if s.respawnTimer >= s.tuning.Session.RespawnDelay {
			s.respawn()
			ev.Respawned = true
		}
	}

	// 2. Fall-out check
	if _, y := s.player.Position(); y < s.tuning.Session.FallLimit {
		s.TriggerRespawn()
	}

	// 3. Entity updates
	for _, e := range s.registry.All() {
		e.Update(dt)
	}

	// 4. Physics step, contact callbacks fire inside
	s.world.Advance(dt, s.time.Get())

	// 5. Deferred intents
	for _, in := range s.queue.Drain() {
		switch it := in.(type) {
		case system.KillIntent:
			if en, ok := s.registry.Enemy(it.EnemyID); ok {
				en.ProcessKill()
			}
		case system.SnapIntent:
			if it.PlayerID == s.player.ID() {
				s.player.SnapY(it.Y, it.ZeroVY)
			}
		case system.CompleteLevelIntent:
			s.completePending = false
			s.complete = true
		}
	}
	for _, en := range s.registry.Enemies() {
		en.ProcessKill()
	}

	if s.pending.RespawnRequested {
		ev.RespawnRequested = true
		s.pending.RespawnRequested = false
	}
	if s.complete {
		ev.LevelComplete = true
		ev.NextLevel = s.index+1 < s.catalog.Count()
		ev.Finished = !ev.NextLevel
	}
	return ev
}

func (s *Session) respawn() {
	s.player.Teleport(s.data.Spawn.X, s.data.Spawn.Y)
	s.gravity.Set(mechanics.Down)
	s.respawnPending = false
	s.respawnTimer = 0
}

// TriggerRespawn schedules a respawn. No-op while one is pending.
func (s *Session) TriggerRespawn() {
	if s.respawnPending {
		return
	}
	s.respawnPending = true
	s.respawnTimer = 0
	s.pending.RespawnRequested = true
}

// QueueLevelComplete pushes a completion intent unless one is already queued
func (s *Session) QueueLevelComplete() {
	if s.completePending || s.complete {
		return
	}
	s.completePending = true
	s.queue.Push(system.CompleteLevelIntent{})
}

// RespawnPending reports whether a respawn is scheduled
func (s *Session) RespawnPending() bool {
	return s.respawnPending
}

// Complete reports whether the level has been cleared
func (s *Session) Complete() bool {
	return s.complete
}

// Restart tears the level down and rebuilds it from its data
func (s *Session) Restart() {
	s.world.Close()
	s.build()
}

// Close releases the world. Further updates are no-ops.
func (s *Session) Close() {
	s.world.Close()
}

// Closed reports whether the level's world has been released
func (s *Session) Closed() bool {
	return s.world.Closed()
}

// SetInput hands this frame's intents to the player
func (s *Session) SetInput(left, right, jump bool) {
	system.ApplyInput(s.player, system.InputState{Left: left, Right: right, JumpPressed: jump})
}

// Views returns a snapshot of every entity in creation order
func (s *Session) Views() []entity.View {
	all := s.registry.All()
	out := make([]entity.View, 0, len(all))
	for _, e := range all {
		out = append(out, e.View())
	}
	return out
}

// Player returns the player entity
func (s *Session) Player() *entity.Player {
	return s.player
}

// Registry returns the entity registry
func (s *Session) Registry() *entity.Registry {
	return s.registry
}

// Gravity returns the current gravity direction
func (s *Session) Gravity() mechanics.Direction {
	return s.gravity.Get()
}

// TimeScale returns the current simulation multiplier
func (s *Session) TimeScale() float64 {
	return s.time.Get()
}

// Level returns the level data
func (s *Session) Level() level.Data {
	return s.data
}

// Index returns the catalog index of the level
func (s *Session) Index() int {
	return s.index
}

// Elapsed returns the seconds played since the last (re)start
func (s *Session) Elapsed() float64 {
	return s.elapsed
}
