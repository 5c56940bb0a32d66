package math

import "testing"

func TestVec3AddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	sum := a.Add(b)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v, want {5 7 9}", sum)
	}
	diff := b.Sub(a)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v, want {3 3 3}", diff)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	if abs(n.Length()-1) > 0.001 {
		t.Errorf("Normalize length: got %f, want 1", n.Length())
	}

	// Zero vector stays zero instead of producing NaN
	z := Vec3{}.Normalize()
	if z != (Vec3{}) {
		t.Errorf("Normalize zero: got %v, want zero", z)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("X cross Y: got %v, want {0 0 1}", got)
	}
}
