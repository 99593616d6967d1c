package streaming

import (
	"fmt"

	"voxgen/internal/meshing"
)

// ChunkBuffer is a GPU resource holding one chunk's mesh. Release must be
// called exactly once; the buffer must not be drawn afterwards.
type ChunkBuffer interface {
	IndexCount() int32
	Draw()
	Release()
}

// Uploader turns generated meshes into drawable buffers. It is only called
// from the goroutine that owns the graphics device.
type Uploader interface {
	Upload(vertices []meshing.Vertex, indices []uint32, elements uint32) (ChunkBuffer, error)
}

// MemoryUploader keeps meshes in CPU memory. It backs headless runs and
// tests. Not safe for concurrent use.
type MemoryUploader struct {
	stats     MemoryStats
	failAfter int
	failErr   error
}

// MemoryStats describes the buffers handed out by a MemoryUploader.
type MemoryStats struct {
	Live     int
	Bytes    int64
	Uploads  int
	Releases int
	Draws    int
}

func NewMemoryUploader() *MemoryUploader {
	return &MemoryUploader{failAfter: -1}
}

// FailAfter makes every upload after the next n successful ones return err.
// A negative n disables failure injection.
func (u *MemoryUploader) FailAfter(n int, err error) {
	u.failAfter = n
	u.failErr = err
}

func (u *MemoryUploader) Stats() MemoryStats {
	return u.stats
}

func (u *MemoryUploader) Upload(vertices []meshing.Vertex, indices []uint32, elements uint32) (ChunkBuffer, error) {
	if u.failAfter == 0 {
		return nil, u.failErr
	}
	if u.failAfter > 0 {
		u.failAfter--
	}
	if int(elements) != len(indices) {
		return nil, fmt.Errorf("element count %d does not match %d indices", elements, len(indices))
	}
	b := &memoryBuffer{
		owner:    u,
		elements: int32(elements),
		bytes:    int64(len(vertices)*meshing.VertexSize + len(indices)*4),
	}
	u.stats.Live++
	u.stats.Uploads++
	u.stats.Bytes += b.bytes
	return b, nil
}

type memoryBuffer struct {
	owner    *MemoryUploader
	elements int32
	bytes    int64
	released bool
}

func (b *memoryBuffer) IndexCount() int32 {
	return b.elements
}

func (b *memoryBuffer) Draw() {
	if b.released {
		panic("streaming: draw of released chunk buffer")
	}
	b.owner.stats.Draws++
}

func (b *memoryBuffer) Release() {
	if b.released {
		panic("streaming: chunk buffer released twice")
	}
	b.released = true
	b.owner.stats.Live--
	b.owner.stats.Releases++
	b.owner.stats.Bytes -= b.bytes
}
