package game

import (
	"fmt"
	"log"
	"time"

	"voxgen/internal/config"
	"voxgen/internal/graphics"
	"voxgen/internal/graphics/renderables/blocks"
	"voxgen/internal/graphics/renderables/crosshair"
	"voxgen/internal/graphics/renderer"
	"voxgen/internal/input"
	"voxgen/internal/meshing"
	"voxgen/internal/player"
	"voxgen/internal/profiling"
	"voxgen/internal/streaming"
	"voxgen/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Session is one run of the world viewer: the streaming pipeline, the
// renderer and the player camera.
type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	Blocks   *blocks.Blocks
	Player   *player.Player
	Streamer *streaming.ChunkStreamer
	Pool     *meshing.WorkerPool

	Paused        bool
	ShowProfiling bool

	frames           int
	lastFPSCheckTime time.Time
}

// NewSession wires the generator, worker pool, uploader and renderer from the
// current configuration and loads the chunks around the spawn point.
func NewSession(window *glfw.Window) (*Session, error) {
	gen, err := world.NewGenerator(config.GetGenerator(), config.GetSeed())
	if err != nil {
		return nil, err
	}

	width, height := window.GetFramebufferSize()
	camera := graphics.NewCamera(width, height)

	blocksRenderer := blocks.NewBlocks(config.GetAtlasPath(), config.GetWireframe())
	r, err := renderer.NewRenderer(camera, blocksRenderer, crosshair.NewCrosshair())
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}
	r.UpdateViewport(width, height)

	renderDistance := config.GetRenderDistance()
	// one window's worth of jobs fits without blocking
	queue := (renderDistance + 1) * (renderDistance + 1)
	pool := meshing.NewWorkerPool(config.GetGenerationWorkers(), queue, gen, config.GetMeshWorkers())
	streamer := streaming.NewChunkStreamer(streaming.NewChunkStore(), pool, blocks.NewGLUploader(), renderDistance)

	p := player.New(camera)
	p.Spawn(0, 0, gen.HeightAt(0, 0))

	s := &Session{
		Window:           window,
		Renderer:         r,
		Blocks:           blocksRenderer,
		Player:           p,
		Streamer:         streamer,
		Pool:             pool,
		lastFPSCheckTime: time.Now(),
	}

	if err := streamer.LoadInitial(); err != nil {
		// retried by the first update
		log.Printf("initial chunk load failed: %v", err)
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return s, nil
}

// Update handles toggles, moves the player and streams chunks. A streaming
// error means the frame must not be rendered.
func (s *Session) Update(dt float64, im *input.InputManager) error {
	if im.JustPressed(input.ActionPause) {
		s.Paused = !s.Paused
		if s.Paused {
			s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
			im.ResetMouse()
		}
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		log.Printf("wireframe: %v", s.Blocks.ToggleWireframe())
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		s.ShowProfiling = !s.ShowProfiling
	}

	if s.Paused {
		return nil
	}

	s.Player.Update(dt, im)
	return s.Streamer.OnUpdate(s.Player.Position())
}

// Render draws the loaded chunks.
func (s *Session) Render(dt float64) {
	s.Renderer.Render(s.Streamer.Chunks(), dt)
	s.frames++

	if since := time.Since(s.lastFPSCheckTime); since >= time.Second {
		if s.ShowProfiling {
			st := s.Streamer.Stats()
			drawn, culled := s.Blocks.Stats()
			log.Printf("fps=%d chunks=%d drawn=%d culled=%d generated=%d evicted=%d | %s",
				int(float64(s.frames)/since.Seconds()), st.Loaded, drawn, culled, st.Generated, st.Evicted, profiling.TopN(5))
		}
		s.frames = 0
		s.lastFPSCheckTime = time.Now()
	}
}

// Resize updates the viewport after a framebuffer size change.
func (s *Session) Resize(width, height int) {
	s.Renderer.UpdateViewport(width, height)
}

// Cleanup stops generation and frees all GPU resources. It must run on the
// thread owning the GL context.
func (s *Session) Cleanup() {
	s.Pool.Shutdown()
	s.Streamer.Close()
	s.Renderer.Dispose()
}
