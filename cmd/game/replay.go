package main

import (
	"fmt"

	"github.com/younwookim/gravityshift/internal/application/replay"
	"github.com/younwookim/gravityshift/internal/application/session"
	"github.com/younwookim/gravityshift/internal/application/system"
	"github.com/younwookim/gravityshift/internal/domain/entity"
	"github.com/younwookim/gravityshift/internal/domain/level"
	"github.com/younwookim/gravityshift/internal/infrastructure/config"
)

// replayInput feeds recorded frames to the playing scene, then idles
type replayInput struct {
	replayer *replay.Replayer
}

func newReplayInput(r *replay.Replayer) *replayInput {
	return &replayInput{replayer: r}
}

// GetInput implements playing.InputSource
func (r *replayInput) GetInput() system.InputState {
	in, ok := r.replayer.GetInput()
	if !ok {
		return system.InputState{}
	}
	return system.InputState{Left: in.Left, Right: in.Right, JumpPressed: in.Jump}
}

// ReplayResult summarises a headless replay run
type ReplayResult struct {
	Level     string
	Frames    int
	Completed bool
	Respawns  int
	Kills     int
	FinalX    float64
	FinalY    float64
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("level=%q frames=%d completed=%v respawns=%d kills=%d final=(%.2f, %.2f)",
		r.Level, r.Frames, r.Completed, r.Respawns, r.Kills, r.FinalX, r.FinalY)
}

// RunReplay steps a session with the recorded inputs until they run out or
// the level is completed. The simulation is deterministic, so the same file
// always yields the same result.
func RunReplay(catalog *level.Catalog, tuning *config.Tuning, data *replay.ReplayData) (ReplayResult, error) {
	sess, err := session.New(catalog, data.Level, tuning)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("failed to start replay: %w", err)
	}
	defer sess.Close()

	framerate := tuning.Display.Framerate
	if framerate <= 0 {
		framerate = 60
	}
	dt := 1.0 / float64(framerate)

	result := ReplayResult{Level: sess.Level().Name}
	replayer := replay.NewReplayer(*data)
	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}

		sess.SetInput(in.Left, in.Right, in.Jump)
		ev := sess.Update(dt)
		result.Frames++
		if ev.Respawned {
			result.Respawns++
		}
		if ev.LevelComplete {
			result.Completed = true
			break
		}
	}

	for _, e := range sess.Registry().Enemies() {
		if e.State() != entity.EnemyPatrolling {
			result.Kills++
		}
	}
	result.FinalX, result.FinalY = sess.Player().Position()
	return result, nil
}
