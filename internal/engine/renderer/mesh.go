package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shadergrid/internal/engine/geometry"
	"github.com/Faultbox/shadergrid/internal/engine/material"
	"github.com/Faultbox/shadergrid/internal/engine/shader"
)

// gpuMesh is a renderable's geometry on the GPU.
type gpuMesh struct {
	vao     uint32
	vbo     uint32
	ebo     uint32
	aux     []uint32
	count   int32
	program *shader.Program
}

// uploadMesh creates the VAO for g, enabling only the inputs prog declares.
func uploadMesh(g *geometry.Mesh, prog *shader.Program) *gpuMesh {
	gm := &gpuMesh{count: int32(len(g.Indices)), program: prog}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	stride := int32(unsafe.Sizeof(geometry.Vertex{}))
	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*int(stride), gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	vertexAttrib(prog, material.AttribPosition, 3, stride, unsafe.Offsetof(geometry.Vertex{}.Position))
	vertexAttrib(prog, material.AttribNormal, 3, stride, unsafe.Offsetof(geometry.Vertex{}.Normal))
	vertexAttrib(prog, material.AttribUV, 2, stride, unsafe.Offsetof(geometry.Vertex{}.UV))

	for _, a := range g.Attributes {
		loc := prog.Attrib(a.Name)
		if loc < 0 {
			continue
		}
		var buf uint32
		gl.GenBuffers(1, &buf)
		gl.BindBuffer(gl.ARRAY_BUFFER, buf)
		gl.BufferData(gl.ARRAY_BUFFER, len(a.Data)*4, gl.Ptr(a.Data), gl.STATIC_DRAW)
		gl.VertexAttribPointerWithOffset(uint32(loc), int32(a.Size), gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(uint32(loc))
		gm.aux = append(gm.aux, buf)
	}

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return gm
}

func vertexAttrib(prog *shader.Program, name string, size, stride int32, offset uintptr) {
	loc := prog.Attrib(name)
	if loc < 0 {
		return
	}
	gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, stride, offset)
	gl.EnableVertexAttribArray(uint32(loc))
}

func (gm *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &gm.vao)
	gl.DeleteBuffers(1, &gm.vbo)
	gl.DeleteBuffers(1, &gm.ebo)
	if len(gm.aux) > 0 {
		gl.DeleteBuffers(int32(len(gm.aux)), &gm.aux[0])
	}
}
