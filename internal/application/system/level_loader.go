package system

import (
	"fmt"

	"github.com/younwookim/gravityshift/internal/domain/entity"
	"github.com/younwookim/gravityshift/internal/domain/level"
	"github.com/younwookim/gravityshift/internal/domain/mechanics"
	"github.com/younwookim/gravityshift/internal/infrastructure/config"
	"github.com/younwookim/gravityshift/internal/infrastructure/physics"
)

// PlayerParams converts player tuning into entity parameters
func PlayerParams(t config.PlayerTuning) entity.PlayerParams {
	return entity.PlayerParams{
		HalfW:       t.HalfWidth,
		HalfH:       t.HalfHeight,
		Density:     t.Density,
		Friction:    t.Friction,
		MoveSpeed:   t.MoveSpeed,
		JumpImpulse: t.JumpImpulse,
	}
}

// EnemyParams converts enemy tuning into entity parameters
func EnemyParams(t config.EnemyTuning) entity.EnemyParams {
	return entity.EnemyParams{
		PatrolSpeed:  t.PatrolSpeed,
		TurnEpsilon:  t.TurnEpsilon,
		SensorHeight: t.SensorHeight,
		SensorWidth:  t.SensorWidth,
		DeathDispose: t.DeathDispose,
		Density:      t.Density,
		Friction:     t.Friction,
	}
}

// BoxParams converts box tuning into entity parameters
func BoxParams(t config.BoxTuning) entity.BoxParams {
	return entity.BoxParams{Density: t.Density, Friction: t.Friction, Damping: t.Damping}
}

// DerivePatrolBounds finds the platform an enemy stands on and patrols its
// span minus a margin. Without a supporting platform the enemy patrols a
// fixed range around its spawn.
func DerivePatrolBounds(e level.EnemyData, platforms []level.PlatformData, t config.EnemyTuning) entity.PatrolBounds {
	x, y := e.Position.X, e.Position.Y
	for _, p := range platforms {
		left := p.Position.X - p.HalfSize.X
		right := p.Position.X + p.HalfSize.X
		bottom := p.Position.Y - p.HalfSize.Y
		top := p.Position.Y + p.HalfSize.Y
		if x < left || x > right || y < bottom || y > top+t.PatrolTolerance {
			continue
		}

		minX, maxX := left+t.PatrolMargin, right-t.PatrolMargin
		if minX > maxX {
			minX, maxX = p.Position.X, p.Position.X
		}
		return entity.PatrolBounds{MinX: minX, MaxX: maxX, Y: p.Position.Y}
	}
	return entity.PatrolBounds{MinX: x - t.DefaultPatrol, MaxX: x + t.DefaultPatrol, Y: y}
}

// AssembleLevel populates w with one body per declared item, registers every
// entity and resets gravity to Down. Returns the player.
func AssembleLevel(
	w *physics.World,
	data level.Data,
	reg *entity.Registry,
	gravity *mechanics.GravityManager,
	cfg *config.Tuning,
) *entity.Player {
	gravity.Set(mechanics.Down)

	player := entity.NewPlayer(reg.NewID(), w, data.Spawn.X, data.Spawn.Y, gravity, PlayerParams(cfg.Player))
	reg.Add(player)

	for _, p := range data.Platforms {
		reg.Add(newPlatform(reg.NewID(), w, p, cfg.Platform))
	}

	for _, s := range data.Spikes {
		reg.Add(entity.NewSpike(reg.NewID(), w, s.Position.X, s.Position.Y, s.HalfSize.X, s.HalfSize.Y))
	}

	for _, z := range data.GravityZones {
		reg.Add(entity.NewGravityZone(reg.NewID(), w, z.Position.X, z.Position.Y, z.HalfSize.X, z.HalfSize.Y, z.Direction))
	}

	for _, z := range data.TimeSlowZones {
		reg.Add(entity.NewTimeSlowZone(reg.NewID(), w, z.Position.X, z.Position.Y, z.HalfSize.X, z.HalfSize.Y))
	}

	enemyParams := EnemyParams(cfg.Enemy)
	for _, e := range data.Enemies {
		bounds := DerivePatrolBounds(e, data.Platforms, cfg.Enemy)
		reg.Add(entity.NewEnemy(reg.NewID(), w, e.Position.X, e.Position.Y, e.HalfSize.X, e.HalfSize.Y, bounds, enemyParams))
	}

	boxParams := BoxParams(cfg.Box)
	for _, b := range data.Boxes {
		reg.Add(entity.NewBox(reg.NewID(), w, b.Position.X, b.Position.Y, b.HalfSize.X, b.HalfSize.Y, boxParams))
	}

	reg.Add(entity.NewFinishZone(reg.NewID(), w, data.Finish.X, data.Finish.Y,
		cfg.Platform.FinishHalfWidth, cfg.Platform.FinishHalfHeight))

	return player
}

func newPlatform(id entity.EntityID, w *physics.World, p level.PlatformData, t config.PlatformTuning) entity.Entity {
	x, y, hw, hh := p.Position.X, p.Position.Y, p.HalfSize.X, p.HalfSize.Y
	switch p.Type {
	case level.PlatformVanishing:
		return entity.NewVanishingPlatform(id, w, x, y, hw, hh, p.Friction, t.VanishLifetime)
	case level.PlatformImpulse:
		return entity.NewImpulsePlatform(id, w, x, y, hw, hh, p.Friction, p.Impulse.X, p.Impulse.Y)
	default:
		return entity.NewPlatform(id, w, x, y, hw, hh, p.Friction)
	}
}

// ParsePlatformType converts a level-file platform type
func ParsePlatformType(s string) (level.PlatformType, error) {
	switch s {
	case "", "normal":
		return level.PlatformNormal, nil
	case "vanishing":
		return level.PlatformVanishing, nil
	case "impulse":
		return level.PlatformImpulse, nil
	default:
		return level.PlatformNormal, fmt.Errorf("unknown platform type %q", s)
	}
}

// LevelFromConfig converts a LevelConfig into level data
func LevelFromConfig(cfg *config.LevelConfig) (level.Data, error) {
	data := level.Data{
		Name:      cfg.Name,
		TimeLimit: cfg.TimeLimit,
		Spawn:     level.V(cfg.Spawn.X, cfg.Spawn.Y),
		Finish:    level.V(cfg.Finish.X, cfg.Finish.Y),
	}

	for i, p := range cfg.Platforms {
		typ, err := ParsePlatformType(p.Type)
		if err != nil {
			return level.Data{}, fmt.Errorf("level %s platform %d: %w", cfg.Name, i, err)
		}
		pd := level.PlatformData{
			Position: level.V(p.X, p.Y),
			HalfSize: level.V(p.HW, p.HH),
			Friction: p.Friction,
			Type:     typ,
		}
		if p.Impulse != nil {
			pd.Impulse = level.V(p.Impulse.X, p.Impulse.Y)
		}
		data.Platforms = append(data.Platforms, pd)
	}

	for i, z := range cfg.GravityZones {
		dir, err := mechanics.ParseDirection(z.Direction)
		if err != nil {
			return level.Data{}, fmt.Errorf("level %s gravity zone %d: %w", cfg.Name, i, err)
		}
		data.GravityZones = append(data.GravityZones, level.GravityZoneData{
			Position:  level.V(z.X, z.Y),
			HalfSize:  level.V(z.HW, z.HH),
			Direction: dir,
		})
	}

	for _, r := range cfg.Spikes {
		data.Spikes = append(data.Spikes, level.SpikeData{Position: level.V(r.X, r.Y), HalfSize: level.V(r.HW, r.HH)})
	}
	for _, r := range cfg.TimeSlowZones {
		data.TimeSlowZones = append(data.TimeSlowZones, level.TimeSlowZoneData{Position: level.V(r.X, r.Y), HalfSize: level.V(r.HW, r.HH)})
	}
	for _, r := range cfg.Enemies {
		data.Enemies = append(data.Enemies, level.EnemyData{Position: level.V(r.X, r.Y), HalfSize: level.V(r.HW, r.HH)})
	}
	for _, r := range cfg.Boxes {
		data.Boxes = append(data.Boxes, level.BoxData{Position: level.V(r.X, r.Y), HalfSize: level.V(r.HW, r.HH)})
	}

	return data, nil
}

// LevelsFromConfig converts a set of level files, stopping at the first error
func LevelsFromConfig(cfgs []*config.LevelConfig) ([]level.Data, error) {
	out := make([]level.Data, 0, len(cfgs))
	for _, cfg := range cfgs {
		d, err := LevelFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
