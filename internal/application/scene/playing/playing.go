// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/gravityshift/internal/application/scene"
	"github.com/younwookim/gravityshift/internal/application/session"
	"github.com/younwookim/gravityshift/internal/application/state"
	"github.com/younwookim/gravityshift/internal/application/system"
	"github.com/younwookim/gravityshift/internal/domain/entity"
	"github.com/younwookim/gravityshift/internal/domain/level"
	"github.com/younwookim/gravityshift/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorPlatform  = color.RGBA{80, 80, 100, 255}
	colorVanishing = color.RGBA{150, 120, 200, 255}
	colorImpulse   = color.RGBA{230, 160, 40, 255}
	colorSpike     = color.RGBA{200, 50, 50, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorEnemy     = color.RGBA{200, 100, 100, 255}
	colorEnemyDead = color.RGBA{90, 90, 90, 255}
	colorBox       = color.RGBA{150, 110, 60, 255}
	colorGravity   = color.RGBA{60, 120, 220, 60}
	colorTimeSlow  = color.RGBA{120, 220, 220, 60}
	colorFinish    = color.RGBA{255, 215, 0, 120}
	colorOverlay   = color.RGBA{0, 0, 0, 150}
)

// levelCompleteDelay is how long the clear banner shows before the next level
const levelCompleteDelay = 1.5

// InputSource supplies one frame of input
type InputSource interface {
	GetInput() system.InputState
}

// Options configures a Playing scene
type Options struct {
	RecordPath string             // record gameplay input to this file when set
	Input      InputSource        // keyboard when nil
	Menu       func() scene.Scene // scene for Back; nil quits instead
}

// Playing is the main gameplay scene
type Playing struct {
	catalog *level.Catalog
	tuning  *config.Tuning
	session *session.Session
	state   state.GameState
	input   InputSource
	menu    func() scene.Scene

	screenW int
	screenH int
	ppu     float64

	clearTimer float64

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a Playing scene on the level at index
func New(catalog *level.Catalog, index int, tuning *config.Tuning, opts Options) (*Playing, error) {
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}

	sess, err := session.New(catalog, index, tuning)
	if err != nil {
		return nil, err
	}

	input := opts.Input
	if input == nil {
		input = system.NewInputSystem()
	}

	p := &Playing{
		catalog:        catalog,
		tuning:         tuning,
		session:        sess,
		state:          state.StatePlaying,
		input:          input,
		menu:           opts.Menu,
		screenW:        tuning.Display.ScreenWidth,
		screenH:        tuning.Display.ScreenHeight,
		ppu:            tuning.Display.PixelsPerUnit,
		recordFilename: opts.RecordPath,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(index, sess.Level().Name)
		log.Printf("Recording enabled: %s (level %d)", opts.RecordPath, index)
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	input := p.input.GetInput()

	switch p.state {
	case state.StatePlaying:
		return p.updatePlaying(input, dt)
	case state.StatePaused:
		if input.Pause {
			p.state = state.StatePlaying
		} else if input.Back {
			return p.back()
		}
	case state.StateLevelComplete:
		p.clearTimer += dt
		if p.clearTimer >= levelCompleteDelay || input.JumpPressed {
			if err := p.advance(); err != nil {
				log.Printf("Failed to start next level: %v", err)
				return p.back()
			}
		}
	case state.StateVictory:
		if input.JumpPressed || input.Back {
			return p.back()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(input system.InputState, dt float64) (scene.Scene, error) {
	if input.Pause {
		p.state = state.StatePaused
		return nil, nil
	}
	if input.Back {
		return p.back()
	}
	if input.Restart {
		p.restart()
		return nil, nil
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.session.SetInput(input.Left, input.Right, input.JumpPressed)
	ev := p.session.Update(dt)

	if ev.LevelComplete {
		log.Printf("Level %d (%s) complete in %.2fs", p.session.Index(), p.session.Level().Name, p.session.Elapsed())
		p.saveRecording()
		p.recorder = nil
		p.clearTimer = 0
		if ev.NextLevel {
			p.state = state.StateLevelComplete
		} else {
			p.state = state.StateVictory
		}
	}

	return nil, nil
}

// advance replaces the finished session with the next level's
func (p *Playing) advance() error {
	next := p.session.Index() + 1
	if _, ok := p.catalog.Get(next); !ok {
		return fmt.Errorf("failed to start level %d: %w", next, session.ErrLevelNotFound)
	}

	// One world at a time: tear down before building the next
	p.session.Close()
	sess, err := session.New(p.catalog, next, p.tuning)
	if err != nil {
		return err
	}
	p.session = sess
	p.state = state.StatePlaying
	log.Printf("Starting level %d (%s)", next, sess.Level().Name)
	return nil
}

func (p *Playing) back() (scene.Scene, error) {
	if p.menu == nil {
		return nil, scene.ErrQuit
	}
	return p.menu(), nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename(".json")
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	p.session.Restart()
	p.state = state.StatePlaying

	// Reset recorder if recording
	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.session.Index(), p.session.Level().Name)
		log.Printf("Recording restarted (level %d)", p.session.Index())
	}
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the running level
func (p *Playing) Session() *session.Session {
	return p.session
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.session.Player().Position()

	for _, v := range p.session.Views() {
		p.drawView(screen, v, camX, camY)
	}

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nP: Resume  Backspace: Menu")
	case state.StateLevelComplete:
		p.drawOverlay(screen, "LEVEL CLEAR")
	case state.StateVictory:
		p.drawOverlay(screen, "ALL LEVELS CLEAR\n\nSpace: Menu")
	}
}

// toScreen maps a world rectangle (centre, half extents, y up) to pixels
func (p *Playing) toScreen(x, y, hw, hh, camX, camY float64) (sx, sy, w, h float32) {
	sx = float32((x-hw-camX)*p.ppu + float64(p.screenW)/2)
	sy = float32(float64(p.screenH)/2 - (y+hh-camY)*p.ppu)
	w = float32(2 * hw * p.ppu)
	h = float32(2 * hh * p.ppu)
	return sx, sy, w, h
}

func (p *Playing) drawView(screen *ebiten.Image, v entity.View, camX, camY float64) {
	if !v.Active {
		return
	}

	c := colorFor(v)
	x, y, w, h := p.toScreen(v.X, v.Y, v.HalfW, v.HalfH, camX, camY)
	vector.DrawFilledRect(screen, x, y, w, h, c, false)

	// Facing marker
	if v.Kind == entity.KindPlayer || (v.Kind == entity.KindEnemy && !v.Dead) {
		mx := x
		if v.FacingRight {
			mx = x + w - 3
		}
		vector.DrawFilledRect(screen, mx, y+3, 3, 3, color.White, false)
	}
}

func colorFor(v entity.View) color.Color {
	switch v.Kind {
	case entity.KindPlayer:
		return colorPlayer
	case entity.KindVanishingPlatform:
		c := colorVanishing
		c.A = uint8(80 + 175*v.Fraction)
		return c
	case entity.KindImpulsePlatform:
		return colorImpulse
	case entity.KindSpike:
		return colorSpike
	case entity.KindEnemy:
		if v.Dead {
			return colorEnemyDead
		}
		return colorEnemy
	case entity.KindBox:
		return colorBox
	case entity.KindGravityZone:
		return colorGravity
	case entity.KindTimeSlowZone:
		return colorTimeSlow
	case entity.KindFinishZone:
		return colorFinish
	default:
		return colorPlatform
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	lvl := p.session.Level()
	text := fmt.Sprintf("%d/%d %s  %.1fs", p.session.Index()+1, p.catalog.Count(), lvl.Name, p.session.Elapsed())
	ebitenutil.DebugPrintAt(screen, text, 10, 10)

	status := fmt.Sprintf("gravity %s  time x%.1f", p.session.Gravity(), p.session.TimeScale())
	ebitenutil.DebugPrintAt(screen, status, 10, 24)

	if p.recorder != nil && p.recorder.IsRecording() {
		ebitenutil.DebugPrintAt(screen, "REC", p.screenW-30, 10)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	p.session.Close()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
