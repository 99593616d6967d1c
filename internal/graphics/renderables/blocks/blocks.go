package blocks

import (
	_ "embed"

	"voxgen/internal/graphics"
	renderer "voxgen/internal/graphics/renderer"
	"voxgen/internal/profiling"
	"voxgen/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed shaders/main.vert
	mainVertShader string
	//go:embed shaders/main.frag
	mainFragShader string
)

// Blocks draws every loaded chunk with the atlas texture, either filled or
// as wireframe.
type Blocks struct {
	mainShader *graphics.Shader
	atlasPath  string
	atlas      uint32
	wireframe  bool

	// last frame
	drawn  int
	culled int
}

// NewBlocks creates a new blocks renderable. An empty atlasPath selects the
// built-in atlas.
func NewBlocks(atlasPath string, wireframe bool) *Blocks {
	return &Blocks{atlasPath: atlasPath, wireframe: wireframe}
}

// Init initializes the blocks rendering system
func (b *Blocks) Init() error {
	img, err := LoadAtlasImage(b.atlasPath)
	if err != nil {
		return err
	}

	b.mainShader, err = graphics.NewShader(mainVertShader, mainFragShader)
	if err != nil {
		return err
	}
	b.mainShader.Use()
	b.mainShader.SetInt("atlas", 0)

	b.atlas = uploadAtlas(img)
	return nil
}

// ToggleWireframe flips between filled and line rendering and returns the new
// state.
func (b *Blocks) ToggleWireframe() bool {
	b.wireframe = !b.wireframe
	return b.wireframe
}

func (b *Blocks) Wireframe() bool {
	return b.wireframe
}

// Stats returns how many chunks were drawn and frustum culled last frame.
func (b *Blocks) Stats() (drawn, culled int) {
	return b.drawn, b.culled
}

// Render draws all loaded chunks
func (b *Blocks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderBlocks")()

	if b.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	b.mainShader.Use()
	b.mainShader.SetMatrix4("proj", &ctx.Proj[0])
	b.mainShader.SetMatrix4("view", &ctx.View[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.atlas)

	b.drawn, b.culled = 0, 0
	for _, c := range ctx.Chunks {
		if !c.Loaded || c.Buffer == nil {
			continue
		}
		min, max := ChunkBounds(c.Pos)
		if !ctx.Frustum.IntersectsAABB(min, max) {
			b.culled++
			continue
		}
		c.Buffer.Draw()
		b.drawn++
	}
	gl.BindVertexArray(0)
}

// ChunkBounds returns the world space box enclosing every quad of a chunk.
// Blocks are unit cubes centred on integer coordinates.
func ChunkBounds(pos world.ChunkPos) (min, max mgl32.Vec3) {
	o := pos.ToWorld().Vec3()
	min = o.Sub(mgl32.Vec3{0.5, 0.5, 0.5})
	max = min.Add(mgl32.Vec3{world.ChunkWidth, world.ChunkHeight, world.ChunkDepth})
	return min, max
}

func (b *Blocks) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (b *Blocks) Dispose() {
	if b.mainShader != nil {
		b.mainShader.Delete()
	}
	if b.atlas != 0 {
		gl.DeleteTextures(1, &b.atlas)
		b.atlas = 0
	}
}
