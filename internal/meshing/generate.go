package meshing

import (
	"voxgen/internal/profiling"
	"voxgen/internal/world"
)

// Generate synthesizes the block grid of the chunk at pos and meshes it.
// The grid and mesh are produced together and never modified afterwards.
func Generate(pos world.ChunkPos, gen world.TerrainGenerator, workers int) (*world.Grid, *ChunkMesh) {
	defer profiling.Track("meshing.Generate")()
	grid := world.NewChunkGrid()
	gen.Populate(pos, grid)
	return grid, BuildChunkMesh(pos, grid, workers)
}
