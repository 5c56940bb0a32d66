package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Drawer issues draw calls for the primitive shapes. The scene composer only
// depends on this interface; Library is the GL implementation.
type Drawer interface {
	DrawPlane()
	DrawBox()
	DrawCylinder(topCap, bottomCap, sides bool)
	DrawTaperedCylinder(topCap, bottomCap, sides bool)
	DrawSphere()
	DrawTorus()
}

type glMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Library owns the GL buffers for every primitive mesh.
// Must be created after the GL context exists.
type Library struct {
	plane  glMesh
	box    glMesh
	sphere glMesh
	torus  glMesh

	cylinder      glMesh
	cylinderParts cylinderData
	tapered       glMesh
	taperedParts  cylinderData
}

// NewLibrary generates and uploads all primitive meshes.
func NewLibrary() *Library {
	l := &Library{}

	l.plane = upload(buildPlane())
	l.box = upload(buildBox())
	l.sphere = upload(buildSphere())
	l.torus = upload(buildTorus())

	l.cylinderParts = buildCylinder(1.0)
	l.cylinder = upload(l.cylinderParts.data)
	l.taperedParts = buildCylinder(0.5)
	l.tapered = upload(l.taperedParts.data)

	return l
}

func upload(d data) glMesh {
	var m glMesh
	m.indexCount = int32(len(d.idx))

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.verts)*4, unsafe.Pointer(&d.verts[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// UV
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.idx)*4, unsafe.Pointer(&d.idx[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

func (m *glMesh) drawAll() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *glMesh) drawRange(start, count int32) {
	if count == 0 {
		return
	}
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, uintptr(start*4))
}

// DrawPlane draws the unit XZ plane.
func (l *Library) DrawPlane() { l.plane.drawAll() }

// DrawBox draws the unit cube.
func (l *Library) DrawBox() { l.box.drawAll() }

// DrawSphere draws the unit sphere.
func (l *Library) DrawSphere() { l.sphere.drawAll() }

// DrawTorus draws the torus.
func (l *Library) DrawTorus() { l.torus.drawAll() }

// DrawCylinder draws the straight cylinder with the selected parts.
func (l *Library) DrawCylinder(topCap, bottomCap, sides bool) {
	drawCylinderParts(&l.cylinder, &l.cylinderParts, topCap, bottomCap, sides)
}

// DrawTaperedCylinder draws the tapered cylinder with the selected parts.
func (l *Library) DrawTaperedCylinder(topCap, bottomCap, sides bool) {
	drawCylinderParts(&l.tapered, &l.taperedParts, topCap, bottomCap, sides)
}

func drawCylinderParts(m *glMesh, parts *cylinderData, topCap, bottomCap, sides bool) {
	gl.BindVertexArray(m.vao)
	if sides {
		m.drawRange(parts.sideStart, parts.sideCount)
	}
	if topCap {
		m.drawRange(parts.topStart, parts.topCount)
	}
	if bottomCap {
		m.drawRange(parts.bottomStart, parts.bottomCount)
	}
	gl.BindVertexArray(0)
}

// Destroy releases every GL buffer the library owns.
func (l *Library) Destroy() {
	for _, m := range []*glMesh{&l.plane, &l.box, &l.sphere, &l.torus, &l.cylinder, &l.tapered} {
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
			gl.DeleteBuffers(1, &m.vbo)
			gl.DeleteBuffers(1, &m.ebo)
		}
	}
}
