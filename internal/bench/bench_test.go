package bench

import (
	"strings"
	"testing"

	"voxgen/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRunStraightPath(t *testing.T) {
	res, err := Run(Config{
		Generator:      world.NewFlatGenerator(),
		RenderDistance: 4,
		Steps:          6,
		Path:           StraightPath(world.ChunkWidth),
		GenWorkers:     2,
		MeshWorkers:    2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Steps != 6 {
		t.Fatalf("steps = %d", res.Steps)
	}
	if res.Stream.Generated < 25 || res.Stream.Evicted == 0 {
		t.Errorf("stream stats %+v", res.Stream)
	}
	// Close released everything
	if res.Memory.Uploads != res.Stream.Generated {
		t.Errorf("uploads %d, generated %d", res.Memory.Uploads, res.Stream.Generated)
	}
	if res.Memory.Draws != res.Stream.Loaded {
		t.Errorf("draws %d, loaded %d", res.Memory.Draws, res.Stream.Loaded)
	}
	if res.MinStep > res.MaxStep {
		t.Errorf("min step %v > max step %v", res.MinStep, res.MaxStep)
	}
}

func TestRunZeroSteps(t *testing.T) {
	res, err := Run(Config{Generator: world.NewFlatGenerator(), RenderDistance: 2, GenWorkers: 1, MeshWorkers: 1})
	if err != nil {
		t.Fatal(err)
	}
	if res.MinStep != 0 || res.AvgStep() != 0 {
		t.Errorf("zero-step durations %v/%v", res.MinStep, res.AvgStep())
	}
	if res.Stream.Generated != 9 {
		t.Errorf("generated = %d, want 9", res.Stream.Generated)
	}
}

func TestPaths(t *testing.T) {
	if p := StraightPath(16)(3); p != (mgl32.Vec3{48, 64, 0}) {
		t.Errorf("straight(3) = %v", p)
	}
	c := CirclePath(100, 4)
	if p := c(1); !p.ApproxEqualThreshold(mgl32.Vec3{0, 64, 100}, 1e-3) {
		t.Errorf("circle(1) = %v", p)
	}
	if _, err := NewPath("zigzag", 1); err == nil {
		t.Error("expected error for unknown path")
	}
}

func TestReport(t *testing.T) {
	out := Report("flat", Result{Steps: 2, Vertices: 1234})
	for _, want := range []string{"flat", "steps", "1234", "chunks evicted"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
