package streaming

import (
	"fmt"

	"voxgen/internal/meshing"
	"voxgen/internal/profiling"
	"voxgen/internal/world"
)

// Chunk is one generated and uploaded chunk. Its grid and mesh are never
// modified; regenerating a chunk replaces the whole value.
type Chunk struct {
	Pos    world.ChunkPos
	Grid   *world.Grid
	Mesh   *meshing.ChunkMesh
	Buffer ChunkBuffer
	Loaded bool
}

// ChunkStore tracks the loaded chunk positions and the chunk list.
// Every position in the set has exactly one chunk with Loaded set, and vice
// versa. Not safe for concurrent use.
type ChunkStore struct {
	positions map[world.ChunkPos]struct{}
	chunks    []*Chunk
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		positions: make(map[world.ChunkPos]struct{}),
	}
}

// Has reports whether a loaded chunk exists at pos.
func (cs *ChunkStore) Has(pos world.ChunkPos) bool {
	_, ok := cs.positions[pos]
	return ok
}

// Len returns the number of loaded positions.
func (cs *ChunkStore) Len() int {
	return len(cs.positions)
}

// Chunks returns the chunk list. Callers must not modify it.
func (cs *ChunkStore) Chunks() []*Chunk {
	return cs.chunks
}

// Positions returns a copy of the loaded position set.
func (cs *ChunkStore) Positions() []world.ChunkPos {
	out := make([]world.ChunkPos, 0, len(cs.positions))
	for p := range cs.positions {
		out = append(out, p)
	}
	return out
}

// Add merges freshly generated chunks. Adding a position that is already
// loaded is a programming error.
func (cs *ChunkStore) Add(chunks ...*Chunk) {
	for _, c := range chunks {
		if _, ok := cs.positions[c.Pos]; ok {
			panic(fmt.Sprintf("streaming: chunk %v added twice", c.Pos))
		}
		c.Loaded = true
		cs.positions[c.Pos] = struct{}{}
		cs.chunks = append(cs.chunks, c)
	}
}

// MarkFar clears the Loaded flag of every chunk whose squared planar chunk
// distance to center exceeds radius*radius and drops it from the position
// set. Returns the number of chunks marked.
func (cs *ChunkStore) MarkFar(center world.ChunkPos, radius int) int {
	marked := 0
	for _, c := range cs.chunks {
		if !c.Loaded {
			continue
		}
		if c.Pos.DistanceSq(center) > radius*radius {
			c.Loaded = false
			delete(cs.positions, c.Pos)
			marked++
		}
	}
	return marked
}

// Sweep removes every chunk whose Loaded flag is cleared and releases its
// buffer. Returns number of removed chunks.
func (cs *ChunkStore) Sweep() int {
	defer profiling.Track("streaming.Sweep")()
	kept := cs.chunks[:0]
	removed := 0
	for _, c := range cs.chunks {
		if c.Loaded {
			kept = append(kept, c)
			continue
		}
		if c.Buffer != nil {
			c.Buffer.Release()
			c.Buffer = nil
		}
		removed++
	}
	clear(cs.chunks[len(kept):])
	cs.chunks = kept
	return removed
}

// Clear releases every chunk. Returns number of removed chunks.
func (cs *ChunkStore) Clear() int {
	for _, c := range cs.chunks {
		c.Loaded = false
	}
	clear(cs.positions)
	return cs.Sweep()
}

// Verify checks that the position set and the loaded chunks correspond 1:1.
func (cs *ChunkStore) Verify() error {
	seen := make(map[world.ChunkPos]struct{}, len(cs.chunks))
	for _, c := range cs.chunks {
		if !c.Loaded {
			continue
		}
		if _, dup := seen[c.Pos]; dup {
			return fmt.Errorf("chunk %v loaded twice", c.Pos)
		}
		seen[c.Pos] = struct{}{}
		if !cs.Has(c.Pos) {
			return fmt.Errorf("chunk %v is loaded but missing from the position set", c.Pos)
		}
	}
	for p := range cs.positions {
		if _, ok := seen[p]; !ok {
			return fmt.Errorf("position %v tracked without a loaded chunk", p)
		}
	}
	return nil
}
