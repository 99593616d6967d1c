package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyF, glfw.Press)
	if !im.JustPressed(ActionToggleWireframe) || !im.IsActive(ActionToggleWireframe) {
		t.Fatal("press not registered")
	}
	// repeat keeps the key held without a new edge
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyF, glfw.Repeat)
	if im.JustPressed(ActionToggleWireframe) || !im.IsActive(ActionToggleWireframe) {
		t.Fatal("repeat produced a new press edge")
	}

	im.HandleKeyEvent(glfw.KeyF, glfw.Release)
	if !im.JustReleased(ActionToggleWireframe) || im.IsActive(ActionToggleWireframe) {
		t.Fatal("release not registered")
	}
	im.PostUpdate()
	if im.JustReleased(ActionToggleWireframe) {
		t.Fatal("edge survived PostUpdate")
	}
}

func TestMultipleKeysSameAction(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Fatal("arrow key not bound to forward")
	}
	im.UnbindKey(glfw.KeyW)
	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if !im.IsActive(ActionMoveForward) {
		t.Fatal("unbound key changed state")
	}
}

func TestInvalidAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyZ, ActionCount)
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	if im.IsActive(ActionCount) || im.JustPressed(-1) {
		t.Fatal("out of range action reported active")
	}
}

func TestMouseDelta(t *testing.T) {
	im := NewInputManager()

	im.HandleCursorEvent(100, 100)
	if dx, dy := im.MouseDelta(); dx != 0 || dy != 0 {
		t.Fatalf("first event produced delta %v,%v", dx, dy)
	}
	im.HandleCursorEvent(110, 95)
	im.HandleCursorEvent(115, 90)
	if dx, dy := im.MouseDelta(); dx != 15 || dy != 10 {
		t.Fatalf("delta = %v,%v, want 15,10", dx, dy)
	}

	im.PostUpdate()
	if dx, dy := im.MouseDelta(); dx != 0 || dy != 0 {
		t.Fatalf("delta not reset: %v,%v", dx, dy)
	}

	im.ResetMouse()
	im.HandleCursorEvent(0, 0)
	if dx, dy := im.MouseDelta(); dx != 0 || dy != 0 {
		t.Fatalf("jump after reset produced delta %v,%v", dx, dy)
	}
}
