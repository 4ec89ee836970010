// Package scene defines the Scene interface for game screens.
//
// The menu and the playing screen implement Scene; the game loop swaps
// between them when Update returns a successor.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the game cleanly
var ErrQuit = errors.New("quit")

// Scene represents a game screen (level select, playing)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds.
	// Returns the next scene if a transition is needed, nil to stay.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene. Scenes owning a
	// physics world release it here.
	OnExit()
}
