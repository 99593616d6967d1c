package meshing

import (
	"testing"

	"voxgen/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func vec(v Vertex) mgl32.Vec3 {
	return mgl32.Vec3{v.Pos[0], v.Pos[1], v.Pos[2]}
}

func TestQuadWindingFacesOutward(t *testing.T) {
	at := world.BlockPos{X: 3, Y: 7, Z: -2}
	for _, dir := range world.AllDirections {
		q := NewQuad(world.BlockDirt, dir, at)
		v := q.Vertices
		for _, tri := range [][3]uint32{{0, 1, 2}, {2, 1, 3}} {
			a, b, c := vec(v[tri[0]]), vec(v[tri[1]]), vec(v[tri[2]])
			n := b.Sub(a).Cross(c.Sub(a))
			if n.Len() == 0 {
				t.Fatalf("%v: degenerate triangle %v", dir, tri)
			}
			if !n.Normalize().ApproxEqual(dir.Normal()) {
				t.Errorf("%v: triangle %v normal %v, want %v", dir, tri, n.Normalize(), dir.Normal())
			}
		}
	}
}

func TestQuadLiesOnFacePlane(t *testing.T) {
	at := world.BlockPos{X: 10, Y: 0, Z: 5}
	center := at.Vec3()
	for _, dir := range world.AllDirections {
		n := dir.Normal()
		q := NewQuad(world.BlockGrass, dir, at)
		for i, v := range q.Vertices {
			off := vec(v).Sub(center)
			if d := off.Dot(n); d != 0.5 {
				t.Errorf("%v vertex %d: distance to centre along normal = %v, want 0.5", dir, i, d)
			}
			for axis := 0; axis < 3; axis++ {
				if off[axis] != 0.5 && off[axis] != -0.5 {
					t.Errorf("%v vertex %d: offset %v is not a cube corner", dir, i, off)
				}
			}
		}
	}
}

func TestQuadUVsUseBlockTexture(t *testing.T) {
	q := NewQuad(world.BlockGrass, world.DirPosY, world.BlockPos{})
	lo := world.AtlasUV(world.TextureGrassTop, 0, 0)
	hi := world.AtlasUV(world.TextureGrassTop, 1, 1)
	seen := map[[2]float32]bool{}
	for _, v := range q.Vertices {
		if v.UV[0] < lo[0] || v.UV[0] > hi[0] || v.UV[1] < lo[1] || v.UV[1] > hi[1] {
			t.Errorf("uv %v outside grass top tile", v.UV)
		}
		seen[v.UV] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct uv corners, got %d", len(seen))
	}
}

func TestNewQuadInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewQuad(world.BlockDirt, world.Direction(9), world.BlockPos{})
}
