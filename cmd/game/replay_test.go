package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/gravityshift/internal/application/replay"
	"github.com/younwookim/gravityshift/internal/application/session"
	"github.com/younwookim/gravityshift/internal/domain/level"
	"github.com/younwookim/gravityshift/internal/infrastructure/config"
)

// flatLevel is a long floor with the finish at x = 6
func flatLevel() level.Data {
	return level.Data{
		Name:   "flat",
		Spawn:  level.V(0, 1.2),
		Finish: level.V(6, 1.5),
		Platforms: []level.PlatformData{
			{Position: level.V(5, 0), HalfSize: level.V(10, 0.5), Friction: 0.25, Type: level.PlatformNormal},
		},
	}
}

func idleReplay(level, frames int) *replay.ReplayData {
	data := replay.CreateTestReplayData(level, frames)
	for i := range data.Frames {
		data.Frames[i].R = false
	}
	return &data
}

func TestRunReplay_IdlePlayerStaysPut(t *testing.T) {
	tun := config.DefaultTuning()
	result, err := RunReplay(level.NewCatalog(flatLevel()), &tun, idleReplay(0, 120))
	require.NoError(t, err)

	assert.Equal(t, "flat", result.Level)
	assert.Equal(t, 120, result.Frames)
	assert.False(t, result.Completed)
	assert.Equal(t, 0, result.Respawns)
	assert.InDelta(t, 0, result.FinalX, 1e-6)
	assert.InDelta(t, 1.1, result.FinalY, 0.1, "resting on the floor")
}

func TestRunReplay_WalkToFinish(t *testing.T) {
	tun := config.DefaultTuning()
	data := replay.CreateTestReplayData(0, 300) // hold right
	result, err := RunReplay(level.NewCatalog(flatLevel()), &tun, &data)
	require.NoError(t, err)

	assert.True(t, result.Completed)
	assert.Less(t, result.Frames, 300, "stops at completion")
	assert.Greater(t, result.FinalX, 4.0)
}

func TestRunReplay_Deterministic(t *testing.T) {
	tun := config.DefaultTuning()
	data := replay.CreateTestReplayData(0, 240, 30, 90, 150)

	first, err := RunReplay(level.DefaultCatalog(), &tun, &data)
	require.NoError(t, err)
	second, err := RunReplay(level.DefaultCatalog(), &tun, &data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunReplay_UnknownLevel(t *testing.T) {
	tun := config.DefaultTuning()
	_, err := RunReplay(level.DefaultCatalog(), &tun, idleReplay(17, 10))
	assert.ErrorIs(t, err, session.ErrLevelNotFound)
}

func TestReplayInput(t *testing.T) {
	data := replay.ReplayData{Frames: []replay.FrameInput{{F: 0, L: true}, {F: 1, R: true, J: true}}}
	in := newReplayInput(replay.NewReplayer(data))

	first := in.GetInput()
	assert.True(t, first.Left)
	assert.False(t, first.JumpPressed)

	second := in.GetInput()
	assert.True(t, second.Right)
	assert.True(t, second.JumpPressed)

	assert.Equal(t, false, in.GetInput().Right, "idle after the last frame")
}

func TestLoadCatalog_ShippedLevels(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	catalog := loadCatalog(loader)
	assert.Equal(t, 6, catalog.Count())
	assert.Equal(t, "Sandbox", catalog.Names()[5])

	tuning := loadTuning(loader)
	assert.Equal(t, config.DefaultTuning(), *tuning, "shipped tuning mirrors the defaults")
}

func TestLoadTuning_FallsBack(t *testing.T) {
	tuning := loadTuning(config.NewLoader(t.TempDir()))
	assert.Equal(t, config.DefaultTuning(), *tuning)
}

func TestReplayResult_String(t *testing.T) {
	r := ReplayResult{Level: "Intro Run", Frames: 10, Completed: true, FinalX: 1, FinalY: 2}
	assert.Equal(t, `level="Intro Run" frames=10 completed=true respawns=0 kills=0 final=(1.00, 2.00)`, r.String())
}
