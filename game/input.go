package game

import "github.com/hajimehoshi/ebiten/v2"

// InputProvider supplies the player's movement intent. The run driver
// polls it exactly once per tick, at the start of the update phase.
type InputProvider interface {
	// MoveDirection returns the desired movement direction, normalized.
	// The zero vector means no movement.
	MoveDirection() Vec2
}

// KeyboardInput reads WASD / arrow keys from ebiten.
type KeyboardInput struct{}

// NewKeyboardInput creates the keyboard input provider.
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// MoveDirection returns the normalized direction held on the keyboard.
// Diagonals normalize to unit length, so diagonal movement is not faster.
func (k *KeyboardInput) MoveDirection() Vec2 {
	var dir Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dir.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dir.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dir.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dir.Y += 1
	}
	return dir.Normalize()
}

// ScriptedInput is a settable input provider for tests and demos.
type ScriptedInput struct {
	Dir Vec2
}

// MoveDirection returns the scripted direction, normalized.
func (s *ScriptedInput) MoveDirection() Vec2 {
	return s.Dir.Normalize()
}
