package player

import (
	"testing"

	"voxgen/internal/config"
	"voxgen/internal/graphics"
	"voxgen/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func newTestPlayer() (*Player, *input.InputManager) {
	return New(graphics.NewCamera(800, 600)), input.NewInputManager()
}

func TestSpawn(t *testing.T) {
	p, _ := newTestPlayer()
	p.Spawn(8, 8, 255)
	if want := (mgl32.Vec3{8, 258, 8}); p.Position() != want {
		t.Errorf("position = %v, want %v", p.Position(), want)
	}
}

func TestUpdateMovesForward(t *testing.T) {
	p, im := newTestPlayer()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	p.Update(0.5, im)

	want := mgl32.Vec3{0, 0, -config.GetFlySpeed() * 0.5}
	if !p.Position().ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("position = %v, want %v", p.Position(), want)
	}
}

func TestUpdateFastAndVertical(t *testing.T) {
	p, im := newTestPlayer()
	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	im.HandleKeyEvent(glfw.KeyLeftControl, glfw.Press)
	p.Update(1, im)

	want := mgl32.Vec3{0, config.GetFlySpeed() * FastMultiplier, 0}
	if !p.Position().ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("position = %v, want %v", p.Position(), want)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	p, im := newTestPlayer()
	im.HandleKeyEvent(glfw.KeyA, glfw.Press)
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)
	p.Update(1, im)
	if p.Position() != (mgl32.Vec3{}) {
		t.Errorf("position = %v, want origin", p.Position())
	}
}

func TestMouseLook(t *testing.T) {
	p, im := newTestPlayer()
	im.HandleCursorEvent(0, 0)
	im.HandleCursorEvent(100, -50)
	yaw, pitch := p.Camera.Yaw, p.Camera.Pitch
	p.Update(0, im)

	sens := config.GetMouseSensitivity()
	if got := p.Camera.Yaw - yaw; mgl32.Abs(got-100*sens) > 1e-4 {
		t.Errorf("yaw delta = %v", got)
	}
	if got := p.Camera.Pitch - pitch; mgl32.Abs(got-50*sens) > 1e-4 {
		t.Errorf("pitch delta = %v", got)
	}
}
