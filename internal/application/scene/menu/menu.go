// Package menu provides the level-select scene.
package menu

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/gravityshift/internal/application/scene"
	"github.com/younwookim/gravityshift/internal/application/scene/playing"
	"github.com/younwookim/gravityshift/internal/domain/level"
	"github.com/younwookim/gravityshift/internal/infrastructure/config"
)

var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorSelected = color.RGBA{100, 200, 100, 255}
)

// Input is one frame of menu navigation
type Input struct {
	Up      bool
	Down    bool
	Confirm bool
	Quit    bool
}

// InputSource supplies menu navigation
type InputSource interface {
	MenuInput() Input
}

// Keyboard reads menu navigation from ebiten
type Keyboard struct{}

// MenuInput implements InputSource
func (Keyboard) MenuInput() Input {
	return Input{
		Up:      inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Down:    inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Options configures the menu and the levels it starts
type Options struct {
	RecordPath string
	Input      InputSource         // keyboard when nil
	Gameplay   playing.InputSource // keyboard when nil
}

// Menu lists the catalog and starts the chosen level
type Menu struct {
	catalog  *level.Catalog
	tuning   *config.Tuning
	opts     Options
	selected int
	screenW  int
	screenH  int
}

// New creates the level-select scene
func New(catalog *level.Catalog, tuning *config.Tuning, opts Options) *Menu {
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}
	if opts.Input == nil {
		opts.Input = Keyboard{}
	}
	return &Menu{
		catalog: catalog,
		tuning:  tuning,
		opts:    opts,
		screenW: tuning.Display.ScreenWidth,
		screenH: tuning.Display.ScreenHeight,
	}
}

// Selected returns the highlighted catalog index
func (m *Menu) Selected() int {
	return m.selected
}

// Select highlights index, clamped to the catalog
func (m *Menu) Select(index int) {
	n := m.catalog.Count()
	switch {
	case n == 0:
		m.selected = 0
	case index < 0:
		m.selected = 0
	case index >= n:
		m.selected = n - 1
	default:
		m.selected = index
	}
}

// Update implements scene.Scene
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	in := m.opts.Input.MenuInput()

	switch {
	case in.Quit:
		return nil, scene.ErrQuit
	case in.Up:
		m.Select(m.selected - 1)
	case in.Down:
		m.Select(m.selected + 1)
	case in.Confirm:
		return m.start()
	}
	return nil, nil
}

func (m *Menu) start() (scene.Scene, error) {
	p, err := playing.New(m.catalog, m.selected, m.tuning, playing.Options{
		RecordPath: m.opts.RecordPath,
		Input:      m.opts.Gameplay,
		Menu:       m.back,
	})
	if err != nil {
		log.Printf("Failed to start level %d: %v", m.selected, err)
		return nil, nil
	}
	log.Printf("Starting level %d", m.selected)
	return p, nil
}

// back returns a fresh menu with the same selection
func (m *Menu) back() scene.Scene {
	next := New(m.catalog, m.tuning, m.opts)
	next.Select(m.selected)
	return next
}

// Draw implements scene.Scene
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, "GRAVITY SHIFT", m.screenW/2-40, 20)

	for i, name := range m.catalog.Names() {
		y := 60 + i*16
		if i == m.selected {
			vector.DrawFilledRect(screen, float32(m.screenW/2-70), float32(y-2), 4, 16, colorSelected, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d. %s", i+1, name), m.screenW/2-60, y)
	}

	ebitenutil.DebugPrintAt(screen, "Enter: Play  Esc: Quit", m.screenW/2-66, m.screenH-30)
}

// OnEnter implements scene.Scene
func (m *Menu) OnEnter() {}

// OnExit implements scene.Scene
func (m *Menu) OnExit() {}
