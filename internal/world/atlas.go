package world

import "fmt"

// Atlas layout. The texture atlas is a single square image split into
// AtlasTiles x AtlasTiles equally sized tiles.
const (
	AtlasTiles    = 16
	AtlasTileSize = 16 // pixels
	AtlasSize     = AtlasTiles * AtlasTileSize
)

// TextureID is a tile index into the atlas, counted row-major from the top left.
type TextureID uint16

const (
	TextureGrassTop  TextureID = 0
	TextureStone     TextureID = 1
	TextureDirt      TextureID = 2
	TextureGrassSide TextureID = 3
)

// TextureFor returns the atlas tile used by the given face of the block.
// Air has no faces and panics.
func (b BlockID) TextureFor(dir Direction) TextureID {
	switch b {
	case BlockGrass:
		switch dir {
		case DirPosY:
			return TextureGrassTop
		case DirNegY:
			return TextureDirt
		default:
			return TextureGrassSide
		}
	case BlockDirt:
		return TextureDirt
	case BlockStone:
		return TextureStone
	case BlockAir:
		panic("world: air has no texture")
	default:
		panic(fmt.Sprintf("world: unknown block %d", uint8(b)))
	}
}

// AtlasUV maps a tile and a local corner (u, v in {0, 1}) to normalized atlas
// coordinates. v grows downwards, matching image row order.
func AtlasUV(tex TextureID, u, v uint8) [2]float32 {
	col := int(tex) % AtlasTiles
	row := int(tex) / AtlasTiles
	return [2]float32{
		float32(col+int(u&1)) / AtlasTiles,
		float32(row+int(v&1)) / AtlasTiles,
	}
}

// MapTexture resolves the atlas coordinate of one corner of a block face.
func (b BlockID) MapTexture(dir Direction, corner [2]uint8) [2]float32 {
	return AtlasUV(b.TextureFor(dir), corner[0], corner[1])
}
