// Package mesh provides the primitive meshes the scene composer draws:
// plane, box, cylinder, tapered cylinder, sphere, and torus. Generation is
// pure; the Library uploads the results to GL and issues the draw calls.
package mesh

import (
	"github.com/chewxy/math32"
)

// Vertex layout: position (3), normal (3), uv (2).
const floatsPerVertex = 8

const (
	cylinderSegments = 36
	sphereRings      = 24
	sphereSectors    = 36
	torusSegments    = 36
	torusSides       = 18
	torusTubeRadius  = 0.25
)

// data is a generated mesh: interleaved vertices plus triangle indices.
type data struct {
	verts []float32
	idx   []uint32
}

// cylinderData keeps separate index ranges so the caps and sides can be
// drawn independently.
type cylinderData struct {
	data
	sideStart, sideCount     int32
	topStart, topCount       int32
	bottomStart, bottomCount int32
}

func (d *data) vertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	i := uint32(len(d.verts) / floatsPerVertex)
	d.verts = append(d.verts, px, py, pz, nx, ny, nz, u, v)
	return i
}

func (d *data) tri(a, b, c uint32) {
	d.idx = append(d.idx, a, b, c)
}

// buildPlane generates a 2x2 plane on the XZ axes centered at the origin,
// facing +Y.
func buildPlane() data {
	var d data
	a := d.vertex(-1, 0, -1, 0, 1, 0, 0, 1)
	b := d.vertex(1, 0, -1, 0, 1, 0, 1, 1)
	c := d.vertex(1, 0, 1, 0, 1, 0, 1, 0)
	e := d.vertex(-1, 0, 1, 0, 1, 0, 0, 0)
	d.tri(a, c, b)
	d.tri(a, e, c)
	return d
}

// buildBox generates a unit cube centered at the origin with per-face
// normals and UVs.
func buildBox() data {
	var d data

	faces := []struct {
		n       [3]float32 // face normal
		o       [3]float32 // face origin (corner)
		u, v    [3]float32 // edge vectors spanning the face
	}{
		{n: [3]float32{0, 0, 1}, o: [3]float32{-0.5, -0.5, 0.5}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},   // front
		{n: [3]float32{0, 0, -1}, o: [3]float32{0.5, -0.5, -0.5}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}}, // back
		{n: [3]float32{1, 0, 0}, o: [3]float32{0.5, -0.5, 0.5}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},   // right
		{n: [3]float32{-1, 0, 0}, o: [3]float32{-0.5, -0.5, -0.5}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}}, // left
		{n: [3]float32{0, 1, 0}, o: [3]float32{-0.5, 0.5, 0.5}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},   // top
		{n: [3]float32{0, -1, 0}, o: [3]float32{-0.5, -0.5, -0.5}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}}, // bottom
	}

	for _, f := range faces {
		var corner [4]uint32
		for i := 0; i < 4; i++ {
			var du, dv float32
			if i == 1 || i == 2 {
				du = 1
			}
			if i == 2 || i == 3 {
				dv = 1
			}
			corner[i] = d.vertex(
				f.o[0]+f.u[0]*du+f.v[0]*dv,
				f.o[1]+f.u[1]*du+f.v[1]*dv,
				f.o[2]+f.u[2]*du+f.v[2]*dv,
				f.n[0], f.n[1], f.n[2],
				du, dv,
			)
		}
		d.tri(corner[0], corner[1], corner[2])
		d.tri(corner[0], corner[2], corner[3])
	}
	return d
}

// buildCylinder generates a cylinder with the given top and bottom radii,
// base at y=0 extending to y=1. topRadius 1 gives a straight cylinder,
// smaller values a tapered one.
func buildCylinder(topRadius float32) cylinderData {
	var c cylinderData
	d := &c.data

	// Slant term for the side normals: for a taper the normal leans upward.
	slant := 1 - topRadius

	// Side wall
	c.sideStart = 0
	for s := 0; s <= cylinderSegments; s++ {
		t := float32(s) / cylinderSegments
		ang := t * 2 * math32.Pi
		cos, sin := math32.Cos(ang), math32.Sin(ang)

		nx, ny, nz := cos, slant, sin
		inv := 1 / math32.Sqrt(nx*nx+ny*ny+nz*nz)

		d.vertex(cos, 0, sin, nx*inv, ny*inv, nz*inv, t, 0)
		d.vertex(cos*topRadius, 1, sin*topRadius, nx*inv, ny*inv, nz*inv, t, 1)
	}
	for s := 0; s < cylinderSegments; s++ {
		base := uint32(s * 2)
		d.tri(base, base+1, base+2)
		d.tri(base+2, base+1, base+3)
	}
	c.sideCount = int32(len(d.idx))

	// Top cap
	c.topStart = c.sideCount
	topCenter := d.vertex(0, 1, 0, 0, 1, 0, 0.5, 0.5)
	for s := 0; s <= cylinderSegments; s++ {
		ang := float32(s) / cylinderSegments * 2 * math32.Pi
		cos, sin := math32.Cos(ang), math32.Sin(ang)
		d.vertex(cos*topRadius, 1, sin*topRadius, 0, 1, 0, 0.5+cos*0.5, 0.5+sin*0.5)
	}
	for s := 0; s < cylinderSegments; s++ {
		d.tri(topCenter, topCenter+1+uint32(s), topCenter+2+uint32(s))
	}
	c.topCount = int32(len(d.idx)) - c.topStart

	// Bottom cap
	c.bottomStart = c.topStart + c.topCount
	botCenter := d.vertex(0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for s := 0; s <= cylinderSegments; s++ {
		ang := float32(s) / cylinderSegments * 2 * math32.Pi
		cos, sin := math32.Cos(ang), math32.Sin(ang)
		d.vertex(cos, 0, sin, 0, -1, 0, 0.5+cos*0.5, 0.5+sin*0.5)
	}
	for s := 0; s < cylinderSegments; s++ {
		d.tri(botCenter, botCenter+2+uint32(s), botCenter+1+uint32(s))
	}
	c.bottomCount = int32(len(d.idx)) - c.bottomStart

	return c
}

// buildSphere generates a unit sphere centered at the origin.
func buildSphere() data {
	var d data

	for r := 0; r <= sphereRings; r++ {
		phi := float32(r) / sphereRings * math32.Pi // 0 at north pole
		y := math32.Cos(phi)
		ringRadius := math32.Sin(phi)

		for s := 0; s <= sphereSectors; s++ {
			theta := float32(s) / sphereSectors * 2 * math32.Pi
			x := ringRadius * math32.Cos(theta)
			z := ringRadius * math32.Sin(theta)
			d.vertex(x, y, z, x, y, z,
				float32(s)/sphereSectors, 1-float32(r)/sphereRings)
		}
	}

	stride := uint32(sphereSectors + 1)
	for r := 0; r < sphereRings; r++ {
		for s := 0; s < sphereSectors; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			d.tri(a, a+1, b)
			d.tri(a+1, b+1, b)
		}
	}
	return d
}

// buildTorus generates a torus in the XZ plane centered at the origin with
// main radius 1 and tube radius torusTubeRadius.
func buildTorus() data {
	var d data

	for i := 0; i <= torusSegments; i++ {
		u := float32(i) / torusSegments * 2 * math32.Pi
		cu, su := math32.Cos(u), math32.Sin(u)

		for j := 0; j <= torusSides; j++ {
			v := float32(j) / torusSides * 2 * math32.Pi
			cv, sv := math32.Cos(v), math32.Sin(v)

			x := (1 + torusTubeRadius*cv) * cu
			z := (1 + torusTubeRadius*cv) * su
			y := torusTubeRadius * sv

			d.vertex(x, y, z, cv*cu, sv, cv*su,
				float32(i)/torusSegments, float32(j)/torusSides)
		}
	}

	stride := uint32(torusSides + 1)
	for i := 0; i < torusSegments; i++ {
		for j := 0; j < torusSides; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			d.tri(a, b, a+1)
			d.tri(a+1, b, b+1)
		}
	}
	return d
}
