package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/stillscene/pkg/math"
)

// The bonsai is a 2D S-curve in the XY plane at a fixed Z depth. Every
// joint, branch tip and foliage anchor is derived from the segment table
// below, so changing one angle or length relocates everything downstream.

// TrunkSegment is one tapered section of the S-curve trunk.
type TrunkSegment struct {
	Base     math.Vec3
	Length   float32
	AngleDeg float32
	Radius   float32
}

// Joint is the sphere that hides the seam between two trunk segments.
type Joint struct {
	Center math.Vec3
	Radius float32
}

// Limb is a side branch or sub-twig, with its tip precomputed.
type Limb struct {
	Base     math.Vec3
	Length   float32
	AngleDeg float32
	Radius   float32
	Tip      math.Vec3
}

// FoliageSphere is one leaf blob: anchor-relative placement already
// resolved to a world center, with a non-uniform scale and a tonal tint.
type FoliageSphere struct {
	Center math.Vec3
	Scale  math.Vec3
	Color  math.Vec3
}

// Bonsai is the fully derived tree, ready to draw.
type Bonsai struct {
	Trunk  [4]TrunkSegment
	Joints [3]Joint
	Apex   math.Vec3

	LowBranch  Limb
	LowTwig    Limb
	HighBranch Limb
	HighTwig   Limb

	Foliage []FoliageSphere
}

// Trunk segment table. Angles are absolute rotations about Z in degrees;
// radii shrink toward the apex.
var (
	trunkLengths = [4]float32{0.45, 0.75, 0.75, 0.75}
	trunkAngles  = [4]float32{-20, -15, 8, 22}
	trunkRadii   = [4]float32{0.22, 0.19, 0.16, 0.12}
	jointRadii   = [3]float32{0.21, 0.19, 0.16}
)

// Branch parameters. The low branch leaves the first joint, the high
// branch the second; each forks a thinner twig at 60% of its length.
const (
	lowBranchAngle  = 55.0
	lowBranchLen    = 1.4
	lowBranchRadius = 0.11
	lowTwigAngle    = 42.0
	lowTwigLen      = 0.65
	lowTwigRadius   = 0.07

	highBranchAngle  = -50.0
	highBranchLen    = 1.2
	highBranchRadius = 0.10
	highTwigAngle    = -35.0
	highTwigLen      = 0.6
	highTwigRadius   = 0.06

	twigForkAt = 0.6

	crownLift = 0.49
)

// Foliage tonal tiers. Three fixed greens fake the light falloff across a
// leaf mass without any real occlusion computation.
var (
	tintHighlight = math.Vec3{X: 0.19, Y: 0.50, Z: 0.15}
	tintMid       = math.Vec3{X: 0.14, Y: 0.40, Z: 0.11}
	tintShadow    = math.Vec3{X: 0.09, Y: 0.28, Z: 0.08}
)

// foliageSpec is one declarative sphere inside a cluster, placed relative
// to the cluster anchor.
type foliageSpec struct {
	offset math.Vec3
	scale  math.Vec3
	color  math.Vec3
}

func tinted(base math.Vec3, dr, dg, db float32) math.Vec3 {
	return math.Vec3{X: base.X + dr, Y: base.Y + dg, Z: base.Z + db}
}

// crownSpec is the 8-sphere top crown, the largest cluster.
var crownSpec = []foliageSpec{
	{math.Vec3{}, math.Vec3{X: 0.65, Y: 0.55, Z: 0.62}, tintMid},
	{math.Vec3{X: -0.08, Y: 0.52}, math.Vec3{X: 0.48, Y: 0.42, Z: 0.46}, tintHighlight},
	{math.Vec3{X: 0.58, Y: 0.12}, math.Vec3{X: 0.52, Y: 0.44, Z: 0.48}, tinted(tintHighlight, 0, 0.02, 0)},
	{math.Vec3{X: -0.55, Y: 0.08}, math.Vec3{X: 0.50, Y: 0.42, Z: 0.46}, tinted(tintMid, 0, 0.02, 0)},
	{math.Vec3{X: 0.10, Y: -0.06, Z: 0.50}, math.Vec3{X: 0.46, Y: 0.40, Z: 0.44}, tinted(tintHighlight, 0.01, 0.03, 0)},
	{math.Vec3{X: 0.05, Y: 0.04, Z: -0.48}, math.Vec3{X: 0.44, Y: 0.38, Z: 0.42}, tintShadow},
	{math.Vec3{X: 0.06, Y: -0.42}, math.Vec3{X: 0.55, Y: 0.38, Z: 0.52}, tinted(tintShadow, 0, 0.02, 0)},
	{math.Vec3{X: 0.44, Y: 0.48, Z: 0.16}, math.Vec3{X: 0.38, Y: 0.33, Z: 0.36}, tinted(tintHighlight, 0.02, 0.04, 0.01)},
}

// leftSpec and rightSpec are the 6 declarative spheres of each branch-tip
// cluster; the seventh sphere of each sits on the derived twig tip.
var leftSpec = []foliageSpec{
	{math.Vec3{}, math.Vec3{X: 0.40, Y: 0.34, Z: 0.38}, tintMid},
	{math.Vec3{X: -0.05, Y: 0.36}, math.Vec3{X: 0.30, Y: 0.26, Z: 0.28}, tinted(tintHighlight, 0.01, 0.03, 0)},
	{math.Vec3{X: -0.40, Y: 0.05}, math.Vec3{X: 0.28, Y: 0.24, Z: 0.26}, tinted(tintHighlight, 0, 0.02, 0)},
	{math.Vec3{X: 0.36, Y: 0.08}, math.Vec3{X: 0.26, Y: 0.22, Z: 0.24}, tinted(tintShadow, 0, 0.02, 0)},
	{math.Vec3{X: -0.08, Y: 0.02, Z: 0.36}, math.Vec3{X: 0.30, Y: 0.25, Z: 0.28}, tinted(tintHighlight, 0, 0.01, 0)},
	{math.Vec3{X: -0.04, Y: -0.28}, math.Vec3{X: 0.34, Y: 0.24, Z: 0.32}, tintShadow},
}

var rightSpec = []foliageSpec{
	{math.Vec3{}, math.Vec3{X: 0.40, Y: 0.34, Z: 0.38}, tintMid},
	{math.Vec3{X: 0.04, Y: 0.36}, math.Vec3{X: 0.30, Y: 0.26, Z: 0.28}, tinted(tintHighlight, 0.01, 0.03, 0)},
	{math.Vec3{X: 0.40, Y: 0.05}, math.Vec3{X: 0.28, Y: 0.24, Z: 0.26}, tinted(tintHighlight, 0, 0.02, 0)},
	{math.Vec3{X: -0.36, Y: 0.08}, math.Vec3{X: 0.26, Y: 0.22, Z: 0.24}, tinted(tintShadow, 0, 0.02, 0)},
	{math.Vec3{X: 0.06, Y: 0.02, Z: 0.36}, math.Vec3{X: 0.30, Y: 0.25, Z: 0.28}, tinted(tintHighlight, 0, 0.01, 0)},
	{math.Vec3{X: 0.04, Y: -0.28}, math.Vec3{X: 0.34, Y: 0.24, Z: 0.32}, tintShadow},
}

var twigSphereScale = math.Vec3{X: 0.24, Y: 0.20, Z: 0.22}

// nextJoint returns the tip of a segment rooted at origin with the given
// length and absolute Z rotation in degrees:
// tip = origin + length * (-sin a, cos a, 0).
func nextJoint(origin math.Vec3, length, angleDeg float32) math.Vec3 {
	rad := angleDeg * math32.Pi / 180
	return origin.Add(math.Vec3{
		X: -length * math32.Sin(rad),
		Y: length * math32.Cos(rad),
	})
}

// newLimb builds a branch or twig with its tip resolved.
func newLimb(base math.Vec3, length, angleDeg, radius float32) Limb {
	return Limb{
		Base:     base,
		Length:   length,
		AngleDeg: angleDeg,
		Radius:   radius,
		Tip:      nextJoint(base, length, angleDeg),
	}
}

// forkPoint returns the point at fraction t along a limb.
func forkPoint(l Limb, t float32) math.Vec3 {
	return nextJoint(l.Base, l.Length*t, l.AngleDeg)
}

// BuildBonsai derives the whole tree from the anchor point on the pot rim.
func BuildBonsai(base math.Vec3) Bonsai {
	var b Bonsai

	tip := base
	for i := 0; i < 4; i++ {
		b.Trunk[i] = TrunkSegment{
			Base:     tip,
			Length:   trunkLengths[i],
			AngleDeg: trunkAngles[i],
			Radius:   trunkRadii[i],
		}
		tip = nextJoint(tip, trunkLengths[i], trunkAngles[i])
		if i < 3 {
			b.Joints[i] = Joint{Center: tip, Radius: jointRadii[i]}
		}
	}
	b.Apex = tip

	b.LowBranch = newLimb(b.Joints[0].Center, lowBranchLen, lowBranchAngle, lowBranchRadius)
	b.LowTwig = newLimb(forkPoint(b.LowBranch, twigForkAt), lowTwigLen, lowTwigAngle, lowTwigRadius)
	b.HighBranch = newLimb(b.Joints[1].Center, highBranchLen, highBranchAngle, highBranchRadius)
	b.HighTwig = newLimb(forkPoint(b.HighBranch, twigForkAt), highTwigLen, highTwigAngle, highTwigRadius)

	crownAnchor := b.Apex.Add(math.Vec3{Y: crownLift})
	b.Foliage = append(b.Foliage, cluster(crownAnchor, crownSpec)...)

	b.Foliage = append(b.Foliage, cluster(b.LowBranch.Tip, leftSpec)...)
	b.Foliage = append(b.Foliage, FoliageSphere{
		Center: b.LowTwig.Tip,
		Scale:  twigSphereScale,
		Color:  tinted(tintHighlight, 0.01, 0.04, 0.01),
	})

	b.Foliage = append(b.Foliage, cluster(b.HighBranch.Tip, rightSpec)...)
	b.Foliage = append(b.Foliage, FoliageSphere{
		Center: b.HighTwig.Tip,
		Scale:  twigSphereScale,
		Color:  tinted(tintHighlight, 0.01, 0.04, 0.01),
	})

	return b
}

// cluster resolves a declarative sphere list against its anchor.
func cluster(anchor math.Vec3, specs []foliageSpec) []FoliageSphere {
	out := make([]FoliageSphere, 0, len(specs))
	for _, s := range specs {
		out = append(out, FoliageSphere{
			Center: anchor.Add(s.offset),
			Scale:  s.scale,
			Color:  s.color,
		})
	}
	return out
}
