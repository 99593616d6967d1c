package streaming

import (
	"errors"
	"fmt"
	"log"
	"time"

	"voxgen/internal/meshing"
	"voxgen/internal/profiling"
	"voxgen/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrPoolClosed is returned when the generation pool shuts down while a
// batch is in flight.
var ErrPoolClosed = errors.New("streaming: generation pool closed")

// Stats are cumulative streaming counters.
type Stats struct {
	Loaded    int
	Generated int
	Evicted   int
	Batches   int
	LastBatch time.Duration
}

// ChunkStreamer keeps the window of loaded chunks around the player.
// Generation fans out over the worker pool; the store is only mutated by the
// caller's goroutine once a batch has been fully collected.
type ChunkStreamer struct {
	store          *ChunkStore
	pool           *meshing.WorkerPool
	uploader       Uploader
	renderDistance int

	// set when the last load failed and must be retried
	retry bool
	stats Stats
}

// NewChunkStreamer creates a new chunk streamer.
func NewChunkStreamer(store *ChunkStore, pool *meshing.WorkerPool, uploader Uploader, renderDistance int) *ChunkStreamer {
	return &ChunkStreamer{
		store:          store,
		pool:           pool,
		uploader:       uploader,
		renderDistance: max(renderDistance, 1),
	}
}

// RenderDistance returns the streaming radius in chunks.
func (cs *ChunkStreamer) RenderDistance() int {
	return cs.renderDistance
}

// Chunks returns the loaded chunks in no particular order.
func (cs *ChunkStreamer) Chunks() []*Chunk {
	return cs.store.Chunks()
}

func (cs *ChunkStreamer) Stats() Stats {
	s := cs.stats
	s.Loaded = cs.store.Len()
	return s
}

// LoadInitial loads the window around the origin chunk.
func (cs *ChunkStreamer) LoadInitial() error {
	return cs.LoadChunks(world.Origin)
}

// OnUpdate evicts chunks that fell outside the render distance of the
// player and, if any were evicted, loads the window around the player.
func (cs *ChunkStreamer) OnUpdate(playerPos mgl32.Vec3) error {
	defer profiling.Track("streaming.OnUpdate")()

	playerChunk := world.ChunkPosFromWorld(playerPos)
	marked := cs.store.MarkFar(playerChunk, cs.renderDistance)
	if marked == 0 && !cs.retry {
		return nil
	}
	if marked > 0 {
		cs.Unload()
	}
	return cs.LoadChunks(playerChunk)
}

// Unload drops every chunk marked as unloaded and releases its buffer.
func (cs *ChunkStreamer) Unload() int {
	removed := cs.store.Sweep()
	cs.stats.Evicted += removed
	return removed
}

// Window returns the chunk positions LoadChunks covers around center. The
// half width is renderDistance/2 rounded down.
func (cs *ChunkStreamer) Window(center world.ChunkPos) []world.ChunkPos {
	half := cs.renderDistance / 2
	out := make([]world.ChunkPos, 0, (2*half+1)*(2*half+1))
	for z := center.Z - half; z <= center.Z+half; z++ {
		for x := center.X - half; x <= center.X+half; x++ {
			out = append(out, world.ChunkPos{X: x, Z: z})
		}
	}
	return out
}

// LoadChunks generates and uploads every chunk of the window around center
// that is not loaded yet. On error nothing is merged and buffers uploaded
// for the batch are released.
func (cs *ChunkStreamer) LoadChunks(center world.ChunkPos) error {
	defer profiling.Track("streaming.LoadChunks")()

	var missing []world.ChunkPos
	for _, p := range cs.Window(center) {
		if !cs.store.Has(p) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		cs.retry = false
		return nil
	}

	start := time.Now()
	results, err := cs.generate(missing)
	if err != nil {
		cs.retry = true
		return err
	}

	chunks := make([]*Chunk, 0, len(results))
	for _, r := range results {
		buf, err := cs.uploader.Upload(r.Mesh.Vertices, r.Mesh.Indices, r.Mesh.Elements)
		if err != nil {
			for _, c := range chunks {
				c.Buffer.Release()
			}
			cs.retry = true
			return fmt.Errorf("upload chunk %v: %w", r.Pos, err)
		}
		chunks = append(chunks, &Chunk{Pos: r.Pos, Grid: r.Grid, Mesh: r.Mesh, Buffer: buf})
	}
	cs.store.Add(chunks...)
	cs.retry = false

	elapsed := time.Since(start)
	cs.stats.Generated += len(chunks)
	cs.stats.Batches++
	cs.stats.LastBatch = elapsed
	log.Printf("generated %d chunks around %v in %.1fms", len(chunks), center, float64(elapsed.Microseconds())/1000.0)
	return nil
}

// generate fans the positions out over the pool and waits for every result.
func (cs *ChunkStreamer) generate(positions []world.ChunkPos) ([]meshing.GenerateResult, error) {
	resultChan := make(chan meshing.GenerateResult, len(positions))
	for _, p := range positions {
		if !cs.pool.SubmitJobBlocking(meshing.GenerateJob{Pos: p, ResultChan: resultChan}) {
			return nil, ErrPoolClosed
		}
	}

	results := make([]meshing.GenerateResult, 0, len(positions))
	for range positions {
		select {
		case r := <-resultChan:
			results = append(results, r)
		case <-cs.pool.Done():
			return nil, ErrPoolClosed
		}
	}
	return results, nil
}

// Close releases every loaded chunk.
func (cs *ChunkStreamer) Close() {
	cs.stats.Evicted += cs.store.Clear()
}
