package blocks

import (
	"image"
	"image/color"
	"testing"

	"voxgen/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestToggleWireframe(t *testing.T) {
	b := NewBlocks("", false)
	if !b.ToggleWireframe() || !b.Wireframe() {
		t.Fatal("first toggle should enable wireframe")
	}
	if b.ToggleWireframe() || b.Wireframe() {
		t.Fatal("second toggle should disable wireframe")
	}
}

func TestChunkBounds(t *testing.T) {
	min, max := ChunkBounds(world.ChunkPos{X: 1, Z: -2})
	wantMin := mgl32.Vec3{15.5, -0.5, -32.5}
	wantMax := mgl32.Vec3{31.5, 255.5, -16.5}
	if min != wantMin || max != wantMax {
		t.Errorf("bounds = %v..%v, want %v..%v", min, max, wantMin, wantMax)
	}
}

func TestDefaultAtlasImage(t *testing.T) {
	img := DefaultAtlasImage()
	if b := img.Bounds(); b.Dx() != world.AtlasSize || b.Dy() != world.AtlasSize {
		t.Fatalf("atlas bounds %v", b)
	}
	// centre of the stone tile
	x := int(world.TextureStone)*world.AtlasTileSize + world.AtlasTileSize/2
	y := world.AtlasTileSize / 2
	if c := img.RGBAAt(x, y); c != tileColors[world.TextureStone] {
		t.Errorf("stone tile centre = %v", c)
	}
	// top band of the grass side tile is green
	x = int(world.TextureGrassSide)*world.AtlasTileSize + world.AtlasTileSize/2
	if c := img.RGBAAt(x, 2); c != tileColors[world.TextureGrassTop] {
		t.Errorf("grass side top = %v", c)
	}
	// unused tiles stay transparent
	if c := img.RGBAAt(world.AtlasSize-1, world.AtlasSize-1); c.A != 0 {
		t.Errorf("unused tile = %v", c)
	}
}

func TestNormalizeAtlasScales(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, world.AtlasTiles, world.AtlasTiles))
	red := color.NRGBA{255, 0, 0, 255}
	src.SetNRGBA(1, 0, red)

	dst := NormalizeAtlas(src)
	if b := dst.Bounds(); b.Dx() != world.AtlasSize || b.Dy() != world.AtlasSize {
		t.Fatalf("bounds %v", b)
	}
	// source pixel (1,0) covers the whole tile 1 after scaling
	for _, p := range [][2]int{{16, 0}, {31, 15}, {24, 8}} {
		if c := dst.RGBAAt(p[0], p[1]); c != (color.RGBA{255, 0, 0, 255}) {
			t.Errorf("pixel %v = %v, want red", p, c)
		}
	}
	if c := dst.RGBAAt(0, 0); c.A != 0 {
		t.Errorf("pixel (0,0) = %v, want transparent", c)
	}
}

func TestNormalizeAtlasKeepsExactSize(t *testing.T) {
	src := DefaultAtlasImage()
	dst := NormalizeAtlas(src)
	for i := range src.Pix {
		if src.Pix[i] != dst.Pix[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestLoadAtlasImageMissingFile(t *testing.T) {
	if _, err := LoadAtlasImage("does/not/exist.png"); err == nil {
		t.Error("expected error for missing atlas")
	}
}
