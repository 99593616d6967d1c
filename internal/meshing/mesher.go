package meshing

import (
	"runtime"

	"voxgen/internal/world"

	"golang.org/x/sync/errgroup"
)

// ChunkMesh holds the GPU-ready geometry of one chunk. It is immutable once
// built.
type ChunkMesh struct {
	Vertices []Vertex
	Indices  []uint32
	Elements uint32
}

// NewChunkMesh derives the index array for vertices.
func NewChunkMesh(vertices []Vertex) *ChunkMesh {
	indices := ComputeCubeIndices(len(vertices))
	return &ChunkMesh{
		Vertices: vertices,
		Indices:  indices,
		Elements: uint32(len(indices)),
	}
}

// QuadCount returns the number of faces in the mesh.
func (m *ChunkMesh) QuadCount() int {
	return len(m.Vertices) / VerticesPerQuad
}

// minBand keeps tiny grids from being split into goroutines with no work.
const minBand = 1024

// BuildChunkMesh emits one quad per visible face of every solid cell of grid.
// A face is visible when its neighbour lies outside the grid or is air.
// Neighbouring chunks are never consulted, so faces on the chunk border are
// always emitted.
//
// Cells are split into contiguous bands meshed in parallel; bands are joined
// in ascending cell order so the output does not depend on scheduling.
func BuildChunkMesh(pos world.ChunkPos, grid *world.Grid, workers int) *ChunkMesh {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	cells := grid.Len()
	bandSize := max((cells+workers-1)/workers, minBand)
	bands := (cells + bandSize - 1) / bandSize
	out := make([][]Vertex, bands)

	var g errgroup.Group
	g.SetLimit(workers)
	for b := range bands {
		start := b * bandSize
		end := min(start+bandSize, cells)
		g.Go(func() error {
			out[b] = meshCells(pos, grid, start, end)
			return nil
		})
	}
	// meshCells cannot fail
	_ = g.Wait()

	total := 0
	for _, band := range out {
		total += len(band)
	}
	vertices := make([]Vertex, 0, total)
	for _, band := range out {
		vertices = append(vertices, band...)
	}
	return NewChunkMesh(vertices)
}

// meshCells meshes the linear cell range [start, end).
func meshCells(pos world.ChunkPos, grid *world.Grid, start, end int) []Vertex {
	dims := grid.Dims()
	origin := pos.ToWorld()
	var vertices []Vertex
	for i := start; i < end; i++ {
		block := grid.AtIndex(i)
		if block.IsAir() {
			continue
		}
		local := dims.Decode(i)
		translation := local.Add(origin)
		for _, dir := range world.AllDirections {
			if !faceVisible(grid, local.Add(dir.Normalized())) {
				continue
			}
			q := NewQuad(block, dir, translation)
			vertices = append(vertices, q.Vertices[:]...)
		}
	}
	return vertices
}

func faceVisible(grid *world.Grid, neighbor world.BlockPos) bool {
	if !grid.InBounds(neighbor) {
		return true
	}
	return grid.At(neighbor).IsAir()
}
