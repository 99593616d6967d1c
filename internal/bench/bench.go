// Package bench drives the streaming pipeline without a window, moving a
// virtual camera along a path and collecting statistics.
package bench

import (
	"fmt"
	"math"
	"time"

	"voxgen/internal/meshing"
	"voxgen/internal/profiling"
	"voxgen/internal/streaming"
	"voxgen/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Path returns the camera position at the given step.
type Path func(step int) mgl32.Vec3

// StraightPath moves along +X by stepBlocks per step.
func StraightPath(stepBlocks float32) Path {
	return func(step int) mgl32.Vec3 {
		return mgl32.Vec3{float32(step) * stepBlocks, 64, 0}
	}
}

// CirclePath orbits the origin with the given radius, one full turn every
// stepsPerTurn steps.
func CirclePath(radius float32, stepsPerTurn int) Path {
	stepsPerTurn = max(stepsPerTurn, 1)
	return func(step int) mgl32.Vec3 {
		a := 2 * math.Pi * float64(step) / float64(stepsPerTurn)
		return mgl32.Vec3{radius * float32(math.Cos(a)), 64, radius * float32(math.Sin(a))}
	}
}

// NewPath resolves a path by name.
func NewPath(name string, stepBlocks float32) (Path, error) {
	switch name {
	case "straight", "":
		return StraightPath(stepBlocks), nil
	case "circle":
		return CirclePath(stepBlocks*32, 64), nil
	default:
		return nil, fmt.Errorf("unknown path %q", name)
	}
}

type Config struct {
	Generator      world.TerrainGenerator
	RenderDistance int
	Steps          int
	Path           Path
	GenWorkers     int
	MeshWorkers    int
}

type Result struct {
	Steps    int
	Elapsed  time.Duration
	MinStep  time.Duration
	MaxStep  time.Duration
	Stream   streaming.Stats
	Memory   streaming.MemoryStats
	Vertices int
	Profile  string
}

// AvgStep returns the mean update time.
func (r Result) AvgStep() time.Duration {
	if r.Steps == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Steps)
}

// Run loads the initial window and performs cfg.Steps updates along the
// path. It checks the store invariant after every step.
func Run(cfg Config) (Result, error) {
	if cfg.Path == nil {
		cfg.Path = StraightPath(16)
	}
	profiling.ResetFrame()

	queue := (cfg.RenderDistance + 1) * (cfg.RenderDistance + 1)
	pool := meshing.NewWorkerPool(cfg.GenWorkers, queue, cfg.Generator, cfg.MeshWorkers)
	defer pool.Shutdown()

	store := streaming.NewChunkStore()
	uploader := streaming.NewMemoryUploader()
	streamer := streaming.NewChunkStreamer(store, pool, uploader, cfg.RenderDistance)

	if err := streamer.LoadInitial(); err != nil {
		return Result{}, fmt.Errorf("initial load: %w", err)
	}

	res := Result{MinStep: time.Duration(math.MaxInt64)}
	for step := 1; step <= cfg.Steps; step++ {
		start := time.Now()
		if err := streamer.OnUpdate(cfg.Path(step)); err != nil {
			return res, fmt.Errorf("step %d: %w", step, err)
		}
		d := time.Since(start)

		if err := store.Verify(); err != nil {
			return res, fmt.Errorf("step %d: %w", step, err)
		}
		if live := uploader.Stats().Live; live != store.Len() {
			return res, fmt.Errorf("step %d: %d live buffers for %d chunks", step, live, store.Len())
		}

		res.Steps++
		res.Elapsed += d
		res.MinStep = min(res.MinStep, d)
		res.MaxStep = max(res.MaxStep, d)
	}
	if res.Steps == 0 {
		res.MinStep = 0
	}

	for _, c := range streamer.Chunks() {
		c.Buffer.Draw()
		res.Vertices += len(c.Mesh.Vertices)
	}
	res.Stream = streamer.Stats()
	res.Memory = uploader.Stats()
	res.Profile = profiling.TopN(5)

	streamer.Close()
	return res, nil
}
