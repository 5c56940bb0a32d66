package mesh

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestBuildPlane(t *testing.T) {
	d := buildPlane()
	if len(d.idx) != 6 {
		t.Errorf("plane index count: got %d, want 6", len(d.idx))
	}
	// Every normal points straight up
	for v := 0; v < len(d.verts); v += floatsPerVertex {
		if d.verts[v+3] != 0 || d.verts[v+4] != 1 || d.verts[v+5] != 0 {
			t.Fatalf("plane normal at vertex %d: got (%f,%f,%f), want (0,1,0)",
				v/floatsPerVertex, d.verts[v+3], d.verts[v+4], d.verts[v+5])
		}
	}
}

func TestBuildBox(t *testing.T) {
	d := buildBox()
	if len(d.verts)/floatsPerVertex != 24 {
		t.Errorf("box vertex count: got %d, want 24", len(d.verts)/floatsPerVertex)
	}
	if len(d.idx) != 36 {
		t.Errorf("box index count: got %d, want 36", len(d.idx))
	}
	// Unit cube: every coordinate is ±0.5
	for v := 0; v < len(d.verts); v += floatsPerVertex {
		for c := 0; c < 3; c++ {
			if a := math32.Abs(d.verts[v+c]); a != 0.5 {
				t.Fatalf("box coordinate magnitude: got %f, want 0.5", a)
			}
		}
	}
}

func TestBuildCylinderRanges(t *testing.T) {
	c := buildCylinder(1.0)

	if c.sideCount == 0 || c.topCount == 0 || c.bottomCount == 0 {
		t.Fatal("cylinder must have side, top and bottom index ranges")
	}
	total := c.sideCount + c.topCount + c.bottomCount
	if int(total) != len(c.idx) {
		t.Errorf("cylinder ranges must cover all indices: got %d, want %d", total, len(c.idx))
	}
	if c.topStart != c.sideCount || c.bottomStart != c.topStart+c.topCount {
		t.Error("cylinder index ranges must be contiguous")
	}

	// Base ring sits at y=0, radius 1; top ring at y=1
	minY, maxY := float32(1), float32(0)
	for v := 0; v < len(c.verts); v += floatsPerVertex {
		y := c.verts[v+1]
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	if minY != 0 || maxY != 1 {
		t.Errorf("cylinder extent: got y in [%f, %f], want [0, 1]", minY, maxY)
	}
}

func TestBuildTaperedCylinder(t *testing.T) {
	c := buildCylinder(0.5)

	// Top ring radius is half the base radius
	for v := 0; v < len(c.verts); v += floatsPerVertex {
		x, y, z := c.verts[v], c.verts[v+1], c.verts[v+2]
		r := math32.Hypot(x, z)
		if y == 1 && r > 0.51 {
			t.Fatalf("tapered top radius: got %f, want <= 0.5", r)
		}
	}
}

func TestBuildSphereRadius(t *testing.T) {
	d := buildSphere()
	for v := 0; v < len(d.verts); v += floatsPerVertex {
		x, y, z := d.verts[v], d.verts[v+1], d.verts[v+2]
		r := math32.Sqrt(x*x + y*y + z*z)
		if math32.Abs(r-1) > 0.001 {
			t.Fatalf("sphere vertex radius: got %f, want 1", r)
		}
	}
	if len(d.idx)%3 != 0 {
		t.Error("sphere indices must form whole triangles")
	}
}

func TestBuildTorusExtent(t *testing.T) {
	d := buildTorus()
	var maxR float32
	for v := 0; v < len(d.verts); v += floatsPerVertex {
		x, z := d.verts[v], d.verts[v+2]
		if r := math32.Hypot(x, z); r > maxR {
			maxR = r
		}
	}
	want := float32(1 + torusTubeRadius)
	if math32.Abs(maxR-want) > 0.001 {
		t.Errorf("torus outer radius: got %f, want %f", maxR, want)
	}
}
