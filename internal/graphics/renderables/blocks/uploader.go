package blocks

import (
	"errors"
	"fmt"

	"voxgen/internal/meshing"
	"voxgen/internal/streaming"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrOutOfMemory is returned when the driver cannot allocate a chunk buffer.
var ErrOutOfMemory = errors.New("blocks: out of GPU memory")

// GLUploader creates one VAO with a vertex and an index buffer per chunk.
// It must only be used from the goroutine owning the GL context.
type GLUploader struct {
	live int
}

func NewGLUploader() *GLUploader {
	return &GLUploader{}
}

// Live returns the number of buffers not yet released.
func (u *GLUploader) Live() int {
	return u.live
}

func (u *GLUploader) Upload(vertices []meshing.Vertex, indices []uint32, elements uint32) (streaming.ChunkBuffer, error) {
	if int(elements) != len(indices) {
		return nil, fmt.Errorf("element count %d does not match %d indices", elements, len(indices))
	}

	b := &glBuffer{owner: u, count: int32(elements)}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*meshing.VertexSize, gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	// position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, meshing.VertexSize, 0)
	// atlas uv
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, meshing.VertexSize, 3*4)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		b.free()
		if code == gl.OUT_OF_MEMORY {
			return nil, ErrOutOfMemory
		}
		return nil, fmt.Errorf("upload chunk buffer: gl error 0x%x", code)
	}

	u.live++
	return b, nil
}

type glBuffer struct {
	owner         *GLUploader
	vao, vbo, ebo uint32
	count         int32
	released      bool
}

func (b *glBuffer) IndexCount() int32 {
	return b.count
}

func (b *glBuffer) Draw() {
	if b.released {
		panic("blocks: draw of released chunk buffer")
	}
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, nil)
}

func (b *glBuffer) Release() {
	if b.released {
		panic("blocks: chunk buffer released twice")
	}
	b.released = true
	b.owner.live--
	b.free()
}

func (b *glBuffer) free() {
	gl.DeleteBuffers(1, &b.ebo)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}
