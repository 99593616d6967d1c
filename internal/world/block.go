package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockID identifies the material of a single cell.
type BlockID uint8

const (
	BlockAir BlockID = iota
	BlockDirt
	BlockGrass
	BlockStone
)

func (b BlockID) String() string {
	switch b {
	case BlockAir:
		return "air"
	case BlockDirt:
		return "dirt"
	case BlockGrass:
		return "grass"
	case BlockStone:
		return "stone"
	default:
		return fmt.Sprintf("block(%d)", uint8(b))
	}
}

// IsAir reports whether the block produces no geometry.
func (b BlockID) IsAir() bool {
	return b == BlockAir
}

// Direction is one of the six axis-aligned face directions.
type Direction uint8

const (
	DirPosX Direction = iota // east
	DirNegX                  // west
	DirPosY                  // top
	DirNegY                  // bottom
	DirPosZ                  // north
	DirNegZ                  // south
)

// AllDirections is the fixed iteration order used for face visibility checks.
var AllDirections = [6]Direction{DirPosX, DirNegX, DirPosY, DirNegY, DirPosZ, DirNegZ}

var directionOffsets = [6]BlockPos{
	DirPosX: {1, 0, 0},
	DirNegX: {-1, 0, 0},
	DirPosY: {0, 1, 0},
	DirNegY: {0, -1, 0},
	DirPosZ: {0, 0, 1},
	DirNegZ: {0, 0, -1},
}

// Normalized returns the unit integer vector of the direction.
func (d Direction) Normalized() BlockPos {
	if int(d) >= len(directionOffsets) {
		panic(fmt.Sprintf("world: invalid direction %d", uint8(d)))
	}
	return directionOffsets[d]
}

// Normal returns the direction as a float vector.
func (d Direction) Normal() mgl32.Vec3 {
	return d.Normalized().Vec3()
}

func (d Direction) String() string {
	switch d {
	case DirPosX:
		return "+x"
	case DirNegX:
		return "-x"
	case DirPosY:
		return "+y"
	case DirNegY:
		return "-y"
	case DirPosZ:
		return "+z"
	case DirNegZ:
		return "-z"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// BlockPos is an integer 3D position. It is used both for chunk-local cell
// coordinates and for world-space block coordinates.
type BlockPos struct {
	X, Y, Z int
}

// Add returns p+o component-wise.
func (p BlockPos) Add(o BlockPos) BlockPos {
	return BlockPos{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Vec3 converts the position to float coordinates.
func (p BlockPos) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}
