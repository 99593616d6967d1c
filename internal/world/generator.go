package world

import (
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"
)

// TerrainGenerator fills the block grid of one chunk. Implementations must be
// deterministic and safe for concurrent use.
type TerrainGenerator interface {
	// Populate writes every cell of g for the chunk at pos.
	Populate(pos ChunkPos, g *Grid)
	// HeightAt returns the surface block Y at world X,Z.
	HeightAt(worldX, worldZ int) int
}

// Generator kinds accepted by NewGenerator.
const (
	GeneratorFlat  = "flat"
	GeneratorNoise = "noise"
)

// NewGenerator returns the generator registered under kind.
func NewGenerator(kind string, seed int64) (TerrainGenerator, error) {
	switch kind {
	case GeneratorFlat, "":
		return NewFlatGenerator(), nil
	case GeneratorNoise:
		return NewNoiseGenerator(seed), nil
	default:
		return nil, fmt.Errorf("unknown terrain generator %q", kind)
	}
}

// FlatGenerator fills the whole grid: the topmost layer is grass, every other
// cell is dirt.
type FlatGenerator struct{}

func NewFlatGenerator() *FlatGenerator {
	return &FlatGenerator{}
}

func (FlatGenerator) HeightAt(worldX, worldZ int) int {
	return ChunkHeight - 1
}

func (FlatGenerator) Populate(pos ChunkPos, g *Grid) {
	top := g.dims.Height - 1
	for i := range g.blocks {
		if g.dims.Decode(i).Y == top {
			g.blocks[i] = BlockGrass
		} else {
			g.blocks[i] = BlockDirt
		}
	}
}

// NoiseGenerator builds a rolling heightmap from octave simplex noise.
type NoiseGenerator struct {
	noise       opensimplex.Noise
	scale       float64
	baseHeight  int
	amp         float64
	octaves     int
	persistence float64
	lacunarity  float64
	dirtDepth   int
}

// NewNoiseGenerator creates a noise generator with default settings.
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{
		noise:       opensimplex.New(seed),
		scale:       1.0 / 64.0,
		baseHeight:  64,
		amp:         24,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
		dirtDepth:   3,
	}
}

func (g *NoiseGenerator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX) * g.scale
	z := float64(worldZ) * g.scale
	amplitude, frequency, sum, norm := 1.0, 1.0, 0.0, 0.0
	for range g.octaves {
		sum += g.noise.Eval2(x*frequency, z*frequency) * amplitude
		norm += amplitude
		amplitude *= g.persistence
		frequency *= g.lacunarity
	}
	h := float64(g.baseHeight) + sum/norm*g.amp
	return min(max(int(math.Floor(h)), 0), ChunkHeight-1)
}

func (g *NoiseGenerator) Populate(pos ChunkPos, grid *Grid) {
	origin := pos.ToWorld()
	d := grid.dims
	for z := range d.Depth {
		for x := range d.Width {
			h := min(g.HeightAt(origin.X+x, origin.Z+z), d.Height-1)
			for y := range d.Height {
				var b BlockID
				switch {
				case y > h:
					b = BlockAir
				case y == h:
					b = BlockGrass
				case y >= h-g.dirtDepth:
					b = BlockDirt
				default:
					b = BlockStone
				}
				grid.blocks[d.Index(x, y, z)] = b
			}
		}
	}
}
