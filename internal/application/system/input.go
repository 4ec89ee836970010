package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/gravityshift/internal/domain/entity"
)

// InputSystem polls the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left        bool
	Right       bool
	JumpPressed bool
	// Scene controls, not recorded
	Pause   bool
	Restart bool
	Back    bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Back:    inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
	}
}

// MoveAxis folds left/right into a single -1..1 intent
func (in InputState) MoveAxis() float64 {
	move := 0.0
	if in.Left {
		move--
	}
	if in.Right {
		move++
	}
	return move
}

// ApplyInput hands this frame's intents to the player
func ApplyInput(p *entity.Player, in InputState) {
	if p == nil {
		return
	}
	p.SetMove(in.MoveAxis())
	if in.JumpPressed {
		p.RequestJump()
	}
}
