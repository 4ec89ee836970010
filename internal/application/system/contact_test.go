package system

import (
	"testing"

	"github.com/ByteArena/box2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/gravityshift/internal/domain/entity"
	"github.com/younwookim/gravityshift/internal/domain/mechanics"
	"github.com/younwookim/gravityshift/internal/infrastructure/config"
	"github.com/younwookim/gravityshift/internal/infrastructure/physics"
)

type recordingSignals struct {
	respawns  int
	completes int
}

func (s *recordingSignals) TriggerRespawn()     { s.respawns++ }
func (s *recordingSignals) QueueLevelComplete() { s.completes++ }

type contactFixture struct {
	world   *physics.World
	reg     *entity.Registry
	gravity *mechanics.GravityManager
	time    *mechanics.TimeManager
	queue   *Queue
	signals *recordingSignals
	handler *ContactHandler
	player  *entity.Player
}

func newContactFixture(t *testing.T, px, py float64) *contactFixture {
	t.Helper()
	w := physics.NewWorld(0, 0)
	f := &contactFixture{
		world:   w,
		reg:     entity.NewRegistry(),
		gravity: mechanics.NewGravityManager(w, mechanics.DefaultGravity),
		time:    mechanics.NewTimeManager(mechanics.DefaultSlowScale),
		queue:   NewQueue(),
		signals: &recordingSignals{},
	}
	f.handler = NewContactHandler(f.reg, f.gravity, f.time, f.queue, f.signals, config.DefaultTuning().Contact)
	f.player = entity.NewPlayer(f.reg.NewID(), w, px, py, f.gravity, entity.DefaultPlayerParams())
	f.reg.Add(f.player)
	return f
}

func (f *contactFixture) add(e entity.Entity) entity.Tag {
	f.reg.Add(e)
	return entity.Tag{ID: e.ID()}
}

func (f *contactFixture) playerTag() entity.Tag {
	return entity.Tag{ID: f.player.ID()}
}

func (f *contactFixture) enemy(x, y float64) *entity.Enemy {
	e := entity.NewEnemy(f.reg.NewID(), f.world, x, y, 0.4, 0.5,
		entity.PatrolBounds{MinX: x - 2, MaxX: x + 2, Y: y}, entity.DefaultEnemyParams())
	f.reg.Add(e)
	return e
}

func (f *contactFixture) setPlayerVelocity(vx, vy float64) {
	f.player.Body().SetLinearVelocity(box2d.MakeB2Vec2(vx, vy))
}

func TestContact_PlatformGrantsAndRevokesJump(t *testing.T) {
	f := newContactFixture(t, 0, 2)
	pl := f.add(entity.NewPlatform(f.reg.NewID(), f.world, 0, 0, 3, 0.5, 0.25))

	f.handler.begin(f.playerTag(), pl)
	assert.True(t, f.player.CanJump())

	f.handler.end(pl, f.playerTag())
	assert.False(t, f.player.CanJump(), "end contact is symmetric in fixture order")
}

func TestContact_VanishingActivates(t *testing.T) {
	f := newContactFixture(t, 0, 2)
	v := entity.NewVanishingPlatform(f.reg.NewID(), f.world, 0, 0, 1.5, 0.5, 0.3, 1.2)
	tag := f.add(v)

	f.handler.begin(tag, f.playerTag())

	assert.True(t, v.Activated())
	assert.True(t, f.player.CanJump())
}

func TestContact_ImpulseAppliedOncePerBegin(t *testing.T) {
	f := newContactFixture(t, 0, 2)
	pad := entity.NewImpulsePlatform(f.reg.NewID(), f.world, 0, 0, 1.5, 1.2, 0.3, 8, 7)
	tag := f.add(pad)
	m := f.player.Body().GetMass()

	f.handler.begin(f.playerTag(), tag)
	vx, vy := f.player.Velocity()
	assert.InDelta(t, 8/m, vx, 1e-9)
	assert.InDelta(t, 7/m, vy, 1e-9)

	f.handler.preSolve(f.playerTag(), tag)
	f.handler.end(f.playerTag(), tag)
	vx, _ = f.player.Velocity()
	assert.InDelta(t, 8/m, vx, 1e-9, "only begin contact launches")

	f.handler.begin(f.playerTag(), tag)
	vx, _ = f.player.Velocity()
	assert.InDelta(t, 16/m, vx, 1e-9)
}

func TestContact_SpikeRequestsRespawn(t *testing.T) {
	f := newContactFixture(t, 0, 2)
	spike := f.add(entity.NewSpike(f.reg.NewID(), f.world, 0, 0, 0.7, 0.25))

	f.handler.begin(spike, f.playerTag())
	assert.Equal(t, 1, f.signals.respawns)
}

func TestContact_Stomp(t *testing.T) {
	tests := []struct {
		name      string
		vy        float64
		px, py    float64
		wantStomp bool
	}{
		{"falling from above", -2, 10, 1, true},
		{"resting on head", 0, 10, 1, true},
		{"rising", 2, 10, 1, false},
		{"just under threshold", 0.29, 10, 1, true},
		{"at threshold", 0.3, 10, 1, false},
		{"below centre", -2, 10, -0.2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContactFixture(t, tt.px, tt.py)
			e := f.enemy(10, 0)
			f.setPlayerVelocity(0, tt.vy)
			sensor := entity.Tag{ID: e.ID(), Part: entity.PartTopSensor}

			f.handler.begin(f.playerTag(), sensor)

			if tt.wantStomp {
				assert.Equal(t, entity.EnemyPendingKill, e.State())
				assert.Equal(t, []Intent{KillIntent{EnemyID: e.ID()}}, f.queue.Drain())
				_, vy := f.player.Velocity()
				assert.InDelta(t, tt.vy+4/f.player.Body().GetMass(), vy, 1e-9, "bounce")
			} else {
				assert.Equal(t, entity.EnemyPatrolling, e.State())
				assert.Equal(t, 0, f.queue.Len())
			}
			assert.Equal(t, 0, f.signals.respawns, "sensor contact never respawns")
		})
	}
}

func TestContact_RisingIntoEnemyFallsBackToBodyRespawn(t *testing.T) {
	f := newContactFixture(t, 10, 1)
	e := f.enemy(10, 0)
	f.setPlayerVelocity(0, 2)

	f.handler.begin(f.playerTag(), entity.Tag{ID: e.ID(), Part: entity.PartTopSensor})
	f.handler.begin(entity.Tag{ID: e.ID(), Part: entity.PartBody}, f.playerTag())

	assert.Equal(t, entity.EnemyPatrolling, e.State())
	assert.Equal(t, 1, f.signals.respawns)
}

func TestContact_StompIsIdempotent(t *testing.T) {
	f := newContactFixture(t, 10, 1)
	e := f.enemy(10, 0)
	f.setPlayerVelocity(0, -2)
	sensor := entity.Tag{ID: e.ID(), Part: entity.PartTopSensor}

	f.handler.begin(f.playerTag(), sensor)
	f.setPlayerVelocity(0, -2)
	f.handler.begin(sensor, f.playerTag())

	assert.Equal(t, 1, f.queue.Len(), "second stomp on a pending enemy is ignored")

	// A dying enemy's body is no longer lethal
	f.handler.begin(f.playerTag(), entity.Tag{ID: e.ID()})
	assert.Equal(t, 0, f.signals.respawns)
}

func TestContact_InactivePlayerCannotStomp(t *testing.T) {
	f := newContactFixture(t, 10, 1)
	e := f.enemy(10, 0)
	f.setPlayerVelocity(0, -2)
	f.player.Body().SetActive(false)

	f.handler.begin(f.playerTag(), entity.Tag{ID: e.ID(), Part: entity.PartTopSensor})
	assert.Equal(t, entity.EnemyPatrolling, e.State())
}

func TestContact_GravityZone(t *testing.T) {
	for _, d := range []mechanics.Direction{mechanics.Up, mechanics.Left, mechanics.Right, mechanics.Down} {
		t.Run(d.String(), func(t *testing.T) {
			f := newContactFixture(t, 0, 0)
			zone := f.add(entity.NewGravityZone(f.reg.NewID(), f.world, 0, 0, 1.5, 3, d))

			f.handler.begin(zone, f.playerTag())
			assert.Equal(t, d, f.gravity.Get())

			gx, gy := f.world.Gravity()
			ux, uy := d.Unit()
			assert.Equal(t, ux*mechanics.DefaultGravity, gx)
			assert.Equal(t, uy*mechanics.DefaultGravity, gy)

			f.handler.end(zone, f.playerTag())
			assert.Equal(t, d, f.gravity.Get(), "leaving a gravity zone keeps the direction")
		})
	}
}

func TestContact_TimeSlowZone(t *testing.T) {
	f := newContactFixture(t, 0, 0)
	zone := f.add(entity.NewTimeSlowZone(f.reg.NewID(), f.world, 0, 0, 2, 2))

	f.handler.begin(f.playerTag(), zone)
	assert.True(t, f.time.IsSlow())
	assert.Equal(t, 0.5, f.time.Get())

	f.handler.end(zone, f.playerTag())
	assert.False(t, f.time.IsSlow())
}

func TestContact_FinishZone(t *testing.T) {
	f := newContactFixture(t, 0, 0)
	zone := f.add(entity.NewFinishZone(f.reg.NewID(), f.world, 0, 0, 1, 1))

	f.handler.begin(f.playerTag(), zone)
	f.handler.begin(zone, f.playerTag())
	assert.Equal(t, 2, f.signals.completes, "idempotence is the session's concern")
}

func TestContact_IgnoresNonPlayerPairs(t *testing.T) {
	f := newContactFixture(t, 0, 0)
	pl := f.add(entity.NewPlatform(f.reg.NewID(), f.world, 0, -2, 3, 0.5, 0.25))
	spike := f.add(entity.NewSpike(f.reg.NewID(), f.world, 0, 0, 0.7, 0.25))
	unknown := entity.Tag{ID: 999}

	f.handler.begin(pl, spike)
	f.handler.begin(f.playerTag(), unknown)
	f.handler.end(f.playerTag(), unknown)
	f.handler.preSolve(f.playerTag(), unknown)
	f.handler.BeginContact(nil)
	f.handler.EndContact(nil)
	f.handler.PreSolve(nil, box2d.B2Manifold{})
	f.handler.PostSolve(nil, nil)

	assert.Equal(t, 0, f.signals.respawns)
	assert.Equal(t, 0, f.queue.Len())
	assert.False(t, f.player.CanJump())
}

func TestContact_PreSolveSnap(t *testing.T) {
	// Platform top at y=1, player half height 0.6: resting centre is 1.6
	tests := []struct {
		name     string
		py       float64
		vy       float64
		wantSnap bool
		zeroVY   bool
	}{
		{"sunk a little while settling", 1.56, -0.2, true, true},
		{"sunk while falling fast", 1.56, -1.0, true, false},
		{"sunk and still", 1.57, 0, true, false},
		{"resting exactly", 1.6, 0, false, false},
		{"barely sunk", 1.59, 0, false, false},
		{"sunk too deep", 1.52, 0, false, false},
		{"rising", 1.56, 0.5, false, false},
		{"hovering above", 1.7, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContactFixture(t, 0, tt.py)
			pl := f.add(entity.NewPlatform(f.reg.NewID(), f.world, 0, 0.5, 3, 0.5, 0.25))
			f.setPlayerVelocity(0, tt.vy)

			f.handler.preSolve(pl, f.playerTag())

			intents := f.queue.Drain()
			if !tt.wantSnap {
				assert.Empty(t, intents)
				return
			}
			require.Len(t, intents, 1)
			snap, ok := intents[0].(SnapIntent)
			require.True(t, ok)
			assert.Equal(t, f.player.ID(), snap.PlayerID)
			assert.InDelta(t, 1.6, snap.Y, 1e-9)
			assert.Equal(t, tt.zeroVY, snap.ZeroVY)

			_, y := f.player.Position()
			assert.Equal(t, tt.py, y, "snap is deferred, not applied mid-step")
		})
	}
}

func TestContact_PreSolveIgnoresNonPlatforms(t *testing.T) {
	f := newContactFixture(t, 0, 1.56)
	box := f.add(entity.NewBox(f.reg.NewID(), f.world, 0, 0.5, 0.5, 0.5, entity.DefaultBoxParams()))

	f.handler.preSolve(f.playerTag(), box)
	assert.Equal(t, 0, f.queue.Len())
}

func TestContact_ListenerThroughWorldStep(t *testing.T) {
	f := newContactFixture(t, 0, 1.7)
	f.world.SetContactListener(f.handler)
	f.gravity.Set(mechanics.Down)
	f.add(entity.NewPlatform(f.reg.NewID(), f.world, 0, 0.5, 3, 0.5, 0.25))

	for i := 0; i < 30; i++ {
		f.world.Advance(1.0/60.0, 1)
	}
	assert.True(t, f.player.CanJump(), "landing grants a jump")
}
