package config

import (
	"runtime"
	"sync"
)

// RenderSettings holds render and streaming configuration
type RenderSettings struct {
	mu                sync.RWMutex
	renderDistance    int // in chunks
	wireframe         bool
	generationWorkers int
	meshWorkers       int
}

const (
	DefaultRenderDistance = 4
	MinRenderDistance     = 1
	MaxRenderDistance     = 32
)

var globalRenderSettings = &RenderSettings{
	renderDistance:    DefaultRenderDistance,
	generationWorkers: runtime.NumCPU(),
	meshWorkers:       runtime.NumCPU(),
}

// GetRenderDistance returns the current render distance in chunks
func GetRenderDistance() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.renderDistance
}

// SetRenderDistance sets the render distance in chunks
func SetRenderDistance(distance int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	distance = max(distance, MinRenderDistance)
	distance = min(distance, MaxRenderDistance)

	globalRenderSettings.renderDistance = distance
}

// GetWireframe returns whether chunks start in wireframe mode
func GetWireframe() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframe
}

func SetWireframe(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = enabled
}

// GetGenerationWorkers returns how many chunks are generated concurrently
func GetGenerationWorkers() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.generationWorkers
}

func SetGenerationWorkers(n int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.generationWorkers = max(n, 1)
}

// GetMeshWorkers returns how many goroutines mesh the cells of one chunk
func GetMeshWorkers() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.meshWorkers
}

func SetMeshWorkers(n int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.meshWorkers = max(n, 1)
}
