package world

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Chunk dimensions
	ChunkWidth  = 16
	ChunkHeight = 256
	ChunkDepth  = 16

	ChunkVolume = ChunkWidth * ChunkHeight * ChunkDepth
)

// Dims is the size of a block grid along each axis.
type Dims struct {
	Width, Height, Depth int
}

// ChunkDims are the dimensions of every streamed chunk.
var ChunkDims = Dims{Width: ChunkWidth, Height: ChunkHeight, Depth: ChunkDepth}

// Volume returns the number of cells.
func (d Dims) Volume() int {
	return d.Width * d.Height * d.Depth
}

// Contains reports whether p lies inside [0,w) x [0,h) x [0,d).
func (d Dims) Contains(p BlockPos) bool {
	if p.X < 0 || p.Y < 0 || p.Z < 0 {
		return false
	}
	return p.X < d.Width && p.Y < d.Height && p.Z < d.Depth
}

// Index flattens local coordinates as x + y*w + z*w*h.
func (d Dims) Index(x, y, z int) int {
	return x + y*d.Width + z*d.Width*d.Height
}

// Decode is the inverse of Index.
func (d Dims) Decode(i int) BlockPos {
	return BlockPos{
		X: i % d.Width,
		Y: (i / d.Width) % d.Height,
		Z: (i / (d.Width * d.Height)) % d.Depth,
	}
}

// IsPosInBounds checks if a local position lies inside a chunk.
func IsPosInBounds(p BlockPos) bool {
	return ChunkDims.Contains(p)
}

// Grid is a dense block array. Every cell holds a valid BlockID.
type Grid struct {
	dims   Dims
	blocks []BlockID
}

// NewGrid creates a grid filled with air.
func NewGrid(dims Dims) *Grid {
	if dims.Width <= 0 || dims.Height <= 0 || dims.Depth <= 0 {
		panic(fmt.Sprintf("world: invalid grid dims %+v", dims))
	}
	return &Grid{dims: dims, blocks: make([]BlockID, dims.Volume())}
}

// NewChunkGrid creates a chunk-sized grid.
func NewChunkGrid() *Grid {
	return NewGrid(ChunkDims)
}

func (g *Grid) Dims() Dims {
	return g.dims
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.blocks)
}

// InBounds reports whether p addresses a cell of this grid.
func (g *Grid) InBounds(p BlockPos) bool {
	return g.dims.Contains(p)
}

// At returns the block at local position p. Out of range access panics.
func (g *Grid) At(p BlockPos) BlockID {
	if !g.dims.Contains(p) {
		panic(fmt.Sprintf("world: position %+v outside grid %+v", p, g.dims))
	}
	return g.blocks[g.dims.Index(p.X, p.Y, p.Z)]
}

// AtIndex returns the block stored at linear index i.
func (g *Grid) AtIndex(i int) BlockID {
	return g.blocks[i]
}

// Set stores a block at local position p.
func (g *Grid) Set(p BlockPos, b BlockID) {
	if !g.dims.Contains(p) {
		panic(fmt.Sprintf("world: position %+v outside grid %+v", p, g.dims))
	}
	g.blocks[g.dims.Index(p.X, p.Y, p.Z)] = b
}

// Blocks returns the backing array. Callers must not modify it.
func (g *Grid) Blocks() []BlockID {
	return g.blocks
}

// ChunkPos identifies a chunk column in the chunk grid. There is no vertical
// chunking.
type ChunkPos struct {
	X, Z int
}

// Origin is the chunk containing the world origin.
var Origin = ChunkPos{}

func (p ChunkPos) Add(o ChunkPos) ChunkPos {
	return ChunkPos{X: p.X + o.X, Z: p.Z + o.Z}
}

func (p ChunkPos) Sub(o ChunkPos) ChunkPos {
	return ChunkPos{X: p.X - o.X, Z: p.Z - o.Z}
}

// DistanceSq returns the squared planar distance in chunk units.
func (p ChunkPos) DistanceSq(o ChunkPos) int {
	d := p.Sub(o)
	return d.X*d.X + d.Z*d.Z
}

// ToWorld returns the world-space origin corner of the chunk.
func (p ChunkPos) ToWorld() BlockPos {
	return BlockPos{X: p.X * ChunkWidth, Y: 0, Z: p.Z * ChunkDepth}
}

func (p ChunkPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Z)
}

// ChunkPosFromWorld returns the chunk containing the world position.
func ChunkPosFromWorld(pos mgl32.Vec3) ChunkPos {
	return ChunkPos{
		X: floorDiv(int(math.Floor(float64(pos.X()))), ChunkWidth),
		Z: floorDiv(int(math.Floor(float64(pos.Z()))), ChunkDepth),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
