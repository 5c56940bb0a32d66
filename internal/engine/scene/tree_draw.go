package scene

import "github.com/Faultbox/stillscene/pkg/math"

// drawBonsai renders the derived tree: tapered trunk segments with joint
// spheres hiding the seams, the two branches with their sub-twigs, and
// the leaf clusters.
func (c *Composer) drawBonsai() {
	b := &c.bonsai

	c.setColor(0.20, 0.17, 0.14, 1)
	c.setMaterial("bark")

	for i, seg := range b.Trunk {
		c.setTransform(
			math.Vec3{X: seg.Radius, Y: seg.Length, Z: seg.Radius},
			0, 0, seg.AngleDeg, seg.Base)
		c.meshes.DrawTaperedCylinder(false, false, true)

		if i < len(b.Joints) {
			j := b.Joints[i]
			c.setTransform(
				math.Vec3{X: j.Radius, Y: j.Radius, Z: j.Radius},
				0, 0, 0, j.Center)
			c.meshes.DrawSphere()
		}
	}

	for _, limb := range []Limb{b.LowBranch, b.LowTwig, b.HighBranch, b.HighTwig} {
		c.setTransform(
			math.Vec3{X: limb.Radius, Y: limb.Length, Z: limb.Radius},
			0, 0, limb.AngleDeg, limb.Base)
		c.meshes.DrawCylinder(false, false, true)
	}

	c.setMaterial("foliage")
	for _, leaf := range b.Foliage {
		c.setTransform(leaf.Scale, 0, 0, 0, leaf.Center)
		c.setColor(leaf.Color.X, leaf.Color.Y, leaf.Color.Z, 1)
		c.meshes.DrawSphere()
	}
}
