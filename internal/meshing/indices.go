package meshing

import "fmt"

// quadPattern triangulates one quad as (0,1,2) and (2,1,3).
var quadPattern = [IndicesPerQuad]uint32{0, 1, 2, 2, 1, 3}

// ComputeCubeIndices returns the index array for vertexCount quad vertices.
// vertexCount must be a multiple of four.
func ComputeCubeIndices(vertexCount int) []uint32 {
	if vertexCount < 0 || vertexCount%VerticesPerQuad != 0 {
		panic(fmt.Sprintf("meshing: vertex count %d is not a multiple of %d", vertexCount, VerticesPerQuad))
	}
	quads := vertexCount / VerticesPerQuad
	indices := make([]uint32, 0, quads*IndicesPerQuad)
	for q := range quads {
		base := uint32(q * VerticesPerQuad)
		for _, i := range quadPattern {
			indices = append(indices, base+i)
		}
	}
	return indices
}
