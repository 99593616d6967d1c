package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraDefaultLooksDownNegativeZ(t *testing.T) {
	c := NewCamera(800, 600)
	if f := c.Front(); !f.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Fatalf("front = %v", f)
	}
	if r := c.Right(); !r.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("right = %v", r)
	}
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(800, 600)
	c.Move(2, 3, 1)
	want := mgl32.Vec3{3, 1, -2}
	if !c.Position.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("position = %v, want %v", c.Position, want)
	}
}

func TestCameraPitchClamped(t *testing.T) {
	c := NewCamera(800, 600)
	c.Rotate(0, 500)
	if c.Pitch != maxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, maxPitch)
	}
	c.Rotate(0, -1000)
	if c.Pitch != -maxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch, -maxPitch)
	}
}

func TestCameraViewportIgnoresZero(t *testing.T) {
	c := NewCamera(800, 400)
	c.SetViewport(0, 0)
	if c.AspectRatio != 2 {
		t.Errorf("aspect = %v, want 2", c.AspectRatio)
	}
}

func TestFrustumCullsBehindCamera(t *testing.T) {
	c := NewCamera(800, 600)
	f := NewFrustum(c.ProjectionMatrix().Mul4(c.ViewMatrix()))

	ahead := f.IntersectsAABB(mgl32.Vec3{-1, -1, -11}, mgl32.Vec3{1, 1, -9})
	behind := f.IntersectsAABB(mgl32.Vec3{-1, -1, 9}, mgl32.Vec3{1, 1, 11})
	beyond := f.IntersectsAABB(mgl32.Vec3{-1, -1, -2001}, mgl32.Vec3{1, 1, -1999})
	if !ahead {
		t.Error("box ahead culled")
	}
	if behind {
		t.Error("box behind not culled")
	}
	if beyond {
		t.Error("box past far plane not culled")
	}
}

func TestFrustumKeepsEnclosingBox(t *testing.T) {
	c := NewCamera(800, 600)
	c.Position = mgl32.Vec3{8, 100, 8}
	f := NewFrustum(c.ProjectionMatrix().Mul4(c.ViewMatrix()))
	if !f.IntersectsAABB(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{15.5, 255.5, 15.5}) {
		t.Error("chunk containing the camera culled")
	}
}
