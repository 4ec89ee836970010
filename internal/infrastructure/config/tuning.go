package config

// Tuning is the root config for tuning.toml
type Tuning struct {
	World    WorldTuning    `toml:"world"`
	Player   PlayerTuning   `toml:"player"`
	Enemy    EnemyTuning    `toml:"enemy"`
	Platform PlatformTuning `toml:"platform"`
	Box      BoxTuning      `toml:"box"`
	Session  SessionTuning  `toml:"session"`
	Contact  ContactTuning  `toml:"contact"`
	Display  DisplayConfig  `toml:"display"`
}

type WorldTuning struct {
	Gravity   float64 `toml:"gravity"`   // magnitude, units/sec²
	SlowScale float64 `toml:"slowScale"` // time multiplier inside slow zones
}

type PlayerTuning struct {
	HalfWidth   float64 `toml:"halfWidth"`
	HalfHeight  float64 `toml:"halfHeight"`
	Density     float64 `toml:"density"`
	Friction    float64 `toml:"friction"`
	MoveSpeed   float64 `toml:"moveSpeed"`
	JumpImpulse float64 `toml:"jumpImpulse"`
}

type EnemyTuning struct {
	PatrolSpeed     float64 `toml:"patrolSpeed"`
	TurnEpsilon     float64 `toml:"turnEpsilon"`
	SensorHeight    float64 `toml:"sensorHeight"`
	SensorWidth     float64 `toml:"sensorWidth"`
	DeathDispose    float64 `toml:"deathDispose"`
	Density         float64 `toml:"density"`
	Friction        float64 `toml:"friction"`
	PatrolMargin    float64 `toml:"patrolMargin"`    // inset from the supporting platform edges
	DefaultPatrol   float64 `toml:"defaultPatrol"`   // half range when no platform supports the spawn
	PatrolTolerance float64 `toml:"patrolTolerance"` // how far above a platform top a spawn may sit
}

type PlatformTuning struct {
	VanishLifetime   float64 `toml:"vanishLifetime"`
	FinishHalfWidth  float64 `toml:"finishHalfWidth"`
	FinishHalfHeight float64 `toml:"finishHalfHeight"`
}

type BoxTuning struct {
	Density  float64 `toml:"density"`
	Friction float64 `toml:"friction"`
	Damping  float64 `toml:"damping"`
}

type SessionTuning struct {
	RespawnDelay float64 `toml:"respawnDelay"`
	FallLimit    float64 `toml:"fallLimit"`
}

// ContactTuning holds the stomp rule and the resting-contact snap bands
type ContactTuning struct {
	StompMaxVY     float64 `toml:"stompMaxVY"`
	StompBounce    float64 `toml:"stompBounce"`
	LowerBand      float64 `toml:"lowerBand"`
	UpperBand      float64 `toml:"upperBand"`
	MaxRiseSpeed   float64 `toml:"maxRiseSpeed"`
	MinCorrection  float64 `toml:"minCorrection"`
	MaxCorrection  float64 `toml:"maxCorrection"`
	MaxSettleSpeed float64 `toml:"maxSettleSpeed"`
}

type DisplayConfig struct {
	ScreenWidth   int     `toml:"screenWidth"`
	ScreenHeight  int     `toml:"screenHeight"`
	Scale         int     `toml:"scale"`
	Framerate     int     `toml:"framerate"`
	PixelsPerUnit float64 `toml:"pixelsPerUnit"`
}

// DefaultTuning returns the stock values. tuning.toml is decoded on top of it.
func DefaultTuning() Tuning {
	return Tuning{
		World: WorldTuning{Gravity: 9.8, SlowScale: 0.5},
		Player: PlayerTuning{
			HalfWidth:   0.4,
			HalfHeight:  0.6,
			Density:     1,
			Friction:    0.2,
			MoveSpeed:   3,
			JumpImpulse: 7,
		},
		Enemy: EnemyTuning{
			PatrolSpeed:     1.5,
			TurnEpsilon:     0.1,
			SensorHeight:    0.15,
			SensorWidth:     0.9,
			DeathDispose:    0.5,
			Density:         1,
			Friction:        0.2,
			PatrolMargin:    0.3,
			DefaultPatrol:   2,
			PatrolTolerance: 0.5,
		},
		Platform: PlatformTuning{VanishLifetime: 1.2, FinishHalfWidth: 1, FinishHalfHeight: 1},
		Box:      BoxTuning{Density: 0.5, Friction: 0.6, Damping: 0.95},
		Session:  SessionTuning{RespawnDelay: 0.5, FallLimit: -5},
		Contact: ContactTuning{
			StompMaxVY:     0.3,
			StompBounce:    4,
			LowerBand:      0.05,
			UpperBand:      0.15,
			MaxRiseSpeed:   0.2,
			MinCorrection:  0.02,
			MaxCorrection:  0.1,
			MaxSettleSpeed: 0.5,
		},
		Display: DisplayConfig{
			ScreenWidth:   480,
			ScreenHeight:  270,
			Scale:         2,
			Framerate:     60,
			PixelsPerUnit: 24,
		},
	}
}
