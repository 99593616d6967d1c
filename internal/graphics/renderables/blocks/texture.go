package blocks

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"

	"voxgen/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"
)

// tileColors fill the built-in atlas used when no image is configured.
var tileColors = map[world.TextureID]color.RGBA{
	world.TextureGrassTop:  {95, 159, 53, 255},
	world.TextureStone:     {125, 125, 125, 255},
	world.TextureDirt:      {134, 96, 67, 255},
	world.TextureGrassSide: {134, 96, 67, 255},
}

// DefaultAtlasImage draws a flat colored atlas. Each tile gets a darker
// one pixel border so block edges stay visible, and the grass side tile
// gets a green top band.
func DefaultAtlasImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, world.AtlasSize, world.AtlasSize))
	for tex, c := range tileColors {
		x0 := int(tex) % world.AtlasTiles * world.AtlasTileSize
		y0 := int(tex) / world.AtlasTiles * world.AtlasTileSize
		border := color.RGBA{darken(c.R), darken(c.G), darken(c.B), 255}
		grass := tileColors[world.TextureGrassTop]
		for y := 0; y < world.AtlasTileSize; y++ {
			for x := 0; x < world.AtlasTileSize; x++ {
				px := c
				if tex == world.TextureGrassSide && y < world.AtlasTileSize/4 {
					px = grass
				}
				if x == 0 || y == 0 || x == world.AtlasTileSize-1 || y == world.AtlasTileSize-1 {
					px = border
				}
				img.SetRGBA(x0+x, y0+y, px)
			}
		}
	}
	return img
}

func darken(v uint8) uint8 {
	return uint8(int(v) * 3 / 4)
}

// NormalizeAtlas converts img to RGBA at the fixed atlas size. Images of a
// different size are scaled with nearest neighbour sampling so tiles stay
// pixel exact.
func NormalizeAtlas(img image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, world.AtlasSize, world.AtlasSize))
	if img.Bounds().Dx() == world.AtlasSize && img.Bounds().Dy() == world.AtlasSize {
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
		return dst
	}
	log.Printf("atlas is %dx%d, scaling to %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), world.AtlasSize, world.AtlasSize)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// LoadAtlasImage decodes the atlas at path, or returns the built-in atlas
// when path is empty.
func LoadAtlasImage(path string) (*image.RGBA, error) {
	if path == "" {
		return DefaultAtlasImage(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open atlas: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode atlas %s: %w", path, err)
	}
	return NormalizeAtlas(img), nil
}

// uploadAtlas creates the GL texture for the atlas.
func uploadAtlas(rgba *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}
