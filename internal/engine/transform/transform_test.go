package transform

import (
	"testing"

	"github.com/Faultbox/stillscene/pkg/math"
)

const eps = 1e-5

func near(got, want float32) bool {
	d := got - want
	return d > -eps && d < eps
}

func nearPoint(got, want [3]float32) bool {
	return near(got[0], want[0]) && near(got[1], want[1]) && near(got[2], want[2])
}

func TestModelIdentity(t *testing.T) {
	m := Model(math.Vec3{X: 1, Y: 1, Z: 1}, 0, 0, 0, math.Vec3{})
	want := math.Identity()
	for i := range m {
		if !near(m[i], want[i]) {
			t.Fatalf("element %d: got %v, want %v", i, m[i], want[i])
		}
	}
}

func TestModelOrder(t *testing.T) {
	// Scale by 2, rotate 90 degrees around Z, then move to (5, 0, 0).
	// The x unit vector must scale to (2,0,0), rotate to (0,2,0), then
	// translate, landing at (5, 2, 0). Scaling after rotation would land
	// at (5+2cos90, ...) instead.
	m := Model(math.Vec3{X: 2, Y: 2, Z: 2}, 0, 0, 90, math.Vec3{X: 5})
	got := m.TransformPoint([3]float32{1, 0, 0})
	if !nearPoint(got, [3]float32{5, 2, 0}) {
		t.Errorf("got %v, want (5, 2, 0)", got)
	}
}

func TestModelRotationAxes(t *testing.T) {
	tests := []struct {
		name        string
		rx, ry, rz  float32
		point, want [3]float32
	}{
		{"X90 sends +Y to +Z", 90, 0, 0, [3]float32{0, 1, 0}, [3]float32{0, 0, 1}},
		{"Y90 sends +Z to +X", 0, 90, 0, [3]float32{0, 0, 1}, [3]float32{1, 0, 0}},
		{"Z90 sends +X to +Y", 0, 0, 90, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model(math.Vec3{X: 1, Y: 1, Z: 1}, tt.rx, tt.ry, tt.rz, math.Vec3{})
			got := m.TransformPoint(tt.point)
			if !nearPoint(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
