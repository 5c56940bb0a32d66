package scene

import (
	"testing"

	"github.com/Faultbox/stillscene/pkg/math"
)

func within(got, want, tol float32) bool {
	d := got - want
	return d > -tol && d < tol
}

func TestNextJoint(t *testing.T) {
	tests := []struct {
		name   string
		length float32
		angle  float32
		wantX  float32
		wantY  float32
	}{
		{"straight up", 1, 0, 0, 1},
		{"lean right at -20", 0.45, -20, 0.1539, 0.4229},
		{"lean left at +55", 1.4, 55, -1.1468, 0.8030},
		{"lean right at -50", 1.2, -50, 0.9193, 0.7713},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextJoint(math.Vec3{}, tt.length, tt.angle)
			if !within(got.X, tt.wantX, 1e-3) || !within(got.Y, tt.wantY, 1e-3) {
				t.Errorf("got (%v, %v), want (%v, %v)", got.X, got.Y, tt.wantX, tt.wantY)
			}
			if got.Z != 0 {
				t.Errorf("Z must stay fixed, got %v", got.Z)
			}
		})
	}
}

// The S-curve chain from the rim anchor, checked against the hand-derived
// joint coordinates (accurate to two decimals).
func TestTrunkJointChain(t *testing.T) {
	b := BuildBonsai(math.Vec3{Y: 0.05})

	wantJoints := [][2]float32{
		{0.15, 0.47},
		{0.34, 1.19},
		{0.24, 1.93},
	}
	for i, want := range wantJoints {
		got := b.Joints[i].Center
		if !within(got.X, want[0], 0.015) || !within(got.Y, want[1], 0.015) {
			t.Errorf("joint %d: got (%v, %v), want about (%v, %v)", i, got.X, got.Y, want[0], want[1])
		}
	}
	if !within(b.Apex.X, -0.04, 0.015) || !within(b.Apex.Y, 2.63, 0.015) {
		t.Errorf("apex: got (%v, %v), want about (-0.04, 2.63)", b.Apex.X, b.Apex.Y)
	}

	// each segment roots at the previous tip
	for i := 1; i < 4; i++ {
		if b.Trunk[i].Base != b.Joints[i-1].Center {
			t.Errorf("segment %d base %v != joint %d center %v",
				i, b.Trunk[i].Base, i-1, b.Joints[i-1].Center)
		}
	}
}

func TestBranchTips(t *testing.T) {
	b := BuildBonsai(math.Vec3{Y: 0.05})

	if b.LowBranch.Base != b.Joints[0].Center {
		t.Error("low branch must exit the first joint")
	}
	if b.HighBranch.Base != b.Joints[1].Center {
		t.Error("high branch must exit the second joint")
	}

	if !within(b.LowBranch.Tip.X, -1.00, 0.015) || !within(b.LowBranch.Tip.Y, 1.27, 0.015) {
		t.Errorf("low branch tip: got (%v, %v), want about (-1.00, 1.27)",
			b.LowBranch.Tip.X, b.LowBranch.Tip.Y)
	}
	if !within(b.HighBranch.Tip.X, 1.26, 0.015) || !within(b.HighBranch.Tip.Y, 1.96, 0.015) {
		t.Errorf("high branch tip: got (%v, %v), want about (1.26, 1.96)",
			b.HighBranch.Tip.X, b.HighBranch.Tip.Y)
	}
}

func TestTwigsForkAtSixtyPercent(t *testing.T) {
	b := BuildBonsai(math.Vec3{Y: 0.05})

	wantLow := forkPoint(b.LowBranch, 0.6)
	if b.LowTwig.Base != wantLow {
		t.Errorf("low twig base: got %v, want %v", b.LowTwig.Base, wantLow)
	}
	if !within(b.LowTwig.Base.X, -0.54, 0.015) || !within(b.LowTwig.Base.Y, 0.95, 0.015) {
		t.Errorf("low twig base: got (%v, %v), want about (-0.54, 0.95)",
			b.LowTwig.Base.X, b.LowTwig.Base.Y)
	}

	wantHigh := forkPoint(b.HighBranch, 0.6)
	if b.HighTwig.Base != wantHigh {
		t.Errorf("high twig base: got %v, want %v", b.HighTwig.Base, wantHigh)
	}
	if !within(b.HighTwig.Base.X, 0.90, 0.015) || !within(b.HighTwig.Base.Y, 1.66, 0.015) {
		t.Errorf("high twig base: got (%v, %v), want about (0.90, 1.66)",
			b.HighTwig.Base.X, b.HighTwig.Base.Y)
	}
}

func TestFoliageComposition(t *testing.T) {
	b := BuildBonsai(math.Vec3{Y: 0.05})

	// 8-sphere crown plus two 7-sphere branch clusters
	if got := len(b.Foliage); got != 22 {
		t.Fatalf("foliage spheres: got %d, want 22", got)
	}

	// crown core sits on the anchor derived from the apex
	crownAnchor := b.Apex.Add(math.Vec3{Y: crownLift})
	if b.Foliage[0].Center != crownAnchor {
		t.Errorf("crown core: got %v, want %v", b.Foliage[0].Center, crownAnchor)
	}
	if b.Foliage[0].Color != tintMid {
		t.Errorf("crown core color: got %v, want mid tone %v", b.Foliage[0].Color, tintMid)
	}

	// the seventh sphere of each branch cluster sits on its twig tip
	if b.Foliage[8+6].Center != b.LowTwig.Tip {
		t.Errorf("left twig sphere: got %v, want %v", b.Foliage[8+6].Center, b.LowTwig.Tip)
	}
	if b.Foliage[8+7+6].Center != b.HighTwig.Tip {
		t.Errorf("right twig sphere: got %v, want %v", b.Foliage[8+7+6].Center, b.HighTwig.Tip)
	}
}

// Moving the anchor must relocate every derived point rigidly; nothing in
// the tree is hand-typed in world coordinates.
func TestAnchorRelocation(t *testing.T) {
	delta := math.Vec3{X: 2, Y: -1, Z: 3}
	a := BuildBonsai(math.Vec3{Y: 0.05})
	b := BuildBonsai(math.Vec3{Y: 0.05}.Add(delta))

	shifted := func(p, q math.Vec3) bool {
		d := q.Sub(p)
		return within(d.X, delta.X, 1e-4) && within(d.Y, delta.Y, 1e-4) && within(d.Z, delta.Z, 1e-4)
	}

	for i := range a.Joints {
		if !shifted(a.Joints[i].Center, b.Joints[i].Center) {
			t.Errorf("joint %d did not move with the anchor", i)
		}
	}
	if !shifted(a.Apex, b.Apex) {
		t.Error("apex did not move with the anchor")
	}
	for _, pair := range [][2]Limb{
		{a.LowBranch, b.LowBranch},
		{a.LowTwig, b.LowTwig},
		{a.HighBranch, b.HighBranch},
		{a.HighTwig, b.HighTwig},
	} {
		if !shifted(pair[0].Tip, pair[1].Tip) {
			t.Error("limb tip did not move with the anchor")
		}
	}
	for i := range a.Foliage {
		if !shifted(a.Foliage[i].Center, b.Foliage[i].Center) {
			t.Errorf("foliage sphere %d did not move with the anchor", i)
		}
	}
}
