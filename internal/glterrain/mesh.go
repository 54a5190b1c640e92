package glterrain

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is the GPU-resident form of a terrain's shared vertex grid and its
// one shared index catalog. Every block in a terrain draws from the same
// VAO/EBO, choosing its slice of Indices by LOD and border configuration.
type Mesh struct {
	VAO, VBO, EBO uint32
}

// UploadGrid uploads the flat (x, z) vertex grid shared by every block.
// Position is attribute 0, two floats, tightly packed.
func UploadGrid(positions []float32) *Mesh {
	m := &Mesh{}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return m
}

// UploadIndices uploads the shared index catalog into m's EBO.
func (m *Mesh) UploadIndices(indices []uint32) {
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*int(unsafe.Sizeof(indices[0])), gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
}

// Bind makes m's VAO and EBO current for a draw call sequence.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.VAO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
}

// DrawStrip issues one triangle-strip draw call reading `count` indices
// starting at index offset `first` within the shared catalog.
func DrawStrip(first, count int) {
	if count == 0 {
		return
	}
	gl.DrawElements(gl.TRIANGLE_STRIP, int32(count), gl.UNSIGNED_INT, gl.PtrOffset(first*4))
}

// Release frees every GPU handle m owns. Safe to call once.
func (m *Mesh) Release() {
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(1, &m.VBO)
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
	}
}
