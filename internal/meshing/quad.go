package meshing

import (
	"voxgen/internal/world"
)

// Quad layout constants.
const (
	VerticesPerQuad = 4
	IndicesPerQuad  = 6
)

// Vertex is the GPU vertex layout: position followed by atlas UV.
type Vertex struct {
	Pos [3]float32
	UV  [2]float32
}

// VertexSize is the size of one Vertex in bytes.
const VertexSize = 5 * 4

// Quad is one visible face of one block.
type Quad struct {
	Vertices [VerticesPerQuad]Vertex
}

type faceCorner struct {
	offset [3]float32
	uv     [2]uint8
}

// Corner offsets per direction. Looking at a face from outside, v0 is bottom
// left, v1 bottom right, v2 top left and v3 top right, so both triangles of
// the 0,1,2,2,1,3 pattern wind counter-clockwise.
var faceCorners = [6][VerticesPerQuad]faceCorner{
	world.DirPosX: {
		{[3]float32{0.5, -0.5, 0.5}, [2]uint8{0, 1}},
		{[3]float32{0.5, -0.5, -0.5}, [2]uint8{1, 1}},
		{[3]float32{0.5, 0.5, 0.5}, [2]uint8{0, 0}},
		{[3]float32{0.5, 0.5, -0.5}, [2]uint8{1, 0}},
	},
	world.DirNegX: {
		{[3]float32{-0.5, -0.5, -0.5}, [2]uint8{0, 1}},
		{[3]float32{-0.5, -0.5, 0.5}, [2]uint8{1, 1}},
		{[3]float32{-0.5, 0.5, -0.5}, [2]uint8{0, 0}},
		{[3]float32{-0.5, 0.5, 0.5}, [2]uint8{1, 0}},
	},
	world.DirPosY: {
		{[3]float32{-0.5, 0.5, 0.5}, [2]uint8{0, 1}},
		{[3]float32{0.5, 0.5, 0.5}, [2]uint8{1, 1}},
		{[3]float32{-0.5, 0.5, -0.5}, [2]uint8{0, 0}},
		{[3]float32{0.5, 0.5, -0.5}, [2]uint8{1, 0}},
	},
	world.DirNegY: {
		{[3]float32{-0.5, -0.5, -0.5}, [2]uint8{0, 1}},
		{[3]float32{0.5, -0.5, -0.5}, [2]uint8{1, 1}},
		{[3]float32{-0.5, -0.5, 0.5}, [2]uint8{0, 0}},
		{[3]float32{0.5, -0.5, 0.5}, [2]uint8{1, 0}},
	},
	world.DirPosZ: {
		{[3]float32{-0.5, -0.5, 0.5}, [2]uint8{0, 1}},
		{[3]float32{0.5, -0.5, 0.5}, [2]uint8{1, 1}},
		{[3]float32{-0.5, 0.5, 0.5}, [2]uint8{0, 0}},
		{[3]float32{0.5, 0.5, 0.5}, [2]uint8{1, 0}},
	},
	world.DirNegZ: {
		{[3]float32{0.5, -0.5, -0.5}, [2]uint8{0, 1}},
		{[3]float32{-0.5, -0.5, -0.5}, [2]uint8{1, 1}},
		{[3]float32{0.5, 0.5, -0.5}, [2]uint8{0, 0}},
		{[3]float32{-0.5, 0.5, -0.5}, [2]uint8{1, 0}},
	},
}

// NewQuad builds the face of the block centred at translation that points
// along dir.
func NewQuad(block world.BlockID, dir world.Direction, translation world.BlockPos) Quad {
	// validates dir
	_ = dir.Normalized()

	at := translation.Vec3()
	var q Quad
	for i, c := range faceCorners[dir] {
		q.Vertices[i] = Vertex{
			Pos: [3]float32{c.offset[0] + at.X(), c.offset[1] + at.Y(), c.offset[2] + at.Z()},
			UV:  block.MapTexture(dir, c.uv),
		}
	}
	return q
}
