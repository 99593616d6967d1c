package player

import (
	"voxgen/internal/config"
	"voxgen/internal/graphics"
	"voxgen/internal/input"
	"voxgen/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	FastMultiplier = 4.0
	// EyeHeight is how far above the surface the player spawns
	EyeHeight = 3.0
)

// Player flies the camera through the world. There is no collision or
// gravity; the streaming window follows Position.
type Player struct {
	Camera *graphics.Camera
}

func New(camera *graphics.Camera) *Player {
	return &Player{Camera: camera}
}

// Spawn places the camera EyeHeight above the given surface height.
func (p *Player) Spawn(x, z float32, surface int) {
	p.Camera.Position = mgl32.Vec3{x, float32(surface) + EyeHeight, z}
}

func (p *Player) Position() mgl32.Vec3 {
	return p.Camera.Position
}

// Update applies one frame of mouse look and movement.
func (p *Player) Update(dt float64, im *input.InputManager) {
	defer profiling.Track("player.Update")()

	dx, dy := im.MouseDelta()
	sens := config.GetMouseSensitivity()
	p.Camera.Rotate(float32(dx)*sens, float32(dy)*sens)

	var forward, right, up float32
	if im.IsActive(input.ActionMoveForward) {
		forward++
	}
	if im.IsActive(input.ActionMoveBackward) {
		forward--
	}
	if im.IsActive(input.ActionMoveRight) {
		right++
	}
	if im.IsActive(input.ActionMoveLeft) {
		right--
	}
	if im.IsActive(input.ActionMoveUp) {
		up++
	}
	if im.IsActive(input.ActionMoveDown) {
		up--
	}
	if forward == 0 && right == 0 && up == 0 {
		return
	}

	step := config.GetFlySpeed() * float32(dt)
	if im.IsActive(input.ActionFast) {
		step *= FastMultiplier
	}
	p.Camera.Move(forward*step, right*step, up*step)
}
