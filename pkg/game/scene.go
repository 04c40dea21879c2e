package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the program: the loading screen or the walkable
// experience. Only the active scene is updated and drawn.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene onto screen.
	Draw(screen *ebiten.Image)
}
