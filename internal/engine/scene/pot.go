package scene

import "github.com/Faultbox/stillscene/pkg/math"

// Flower pot geometry on the upper counter. The rim height anchors the
// bonsai, so the tree follows if the pot is moved or resized.
const (
	potRadius  = 1.6
	potCenterX = 0.0
	potCenterZ = -3.0
	potBaseH   = 1.0
	potUpperH  = 1.8

	// the trunk roots slightly above the soil line
	rimLift = 0.05
)

func potBaseY() float32 { return upperTableY + topThickness }

func potTopY() float32 { return potBaseY() + potBaseH + potUpperH }

// bonsaiAnchor is the trunk root point on the pot rim.
func bonsaiAnchor() math.Vec3 {
	return math.Vec3{X: potCenterX, Y: potTopY() + rimLift, Z: potCenterZ}
}

// drawPot renders the two-cylinder pot and the soil disk inside its rim.
func (c *Composer) drawPot() {
	baseY := potBaseY()

	// narrower bottom cylinder
	baseR := float32(potRadius * 0.92)
	c.setTransform(math.Vec3{X: baseR, Y: potBaseH, Z: baseR}, 0, 0, 0,
		math.Vec3{X: potCenterX, Y: baseY, Z: potCenterZ})
	c.setTexture("pot")
	c.setUVScale(1, 1)
	c.setMaterial("grayMatte")
	c.meshes.DrawCylinder(true, true, true)

	// full-width upper cylinder
	c.setTransform(math.Vec3{X: potRadius, Y: potUpperH, Z: potRadius}, 0, 0, 0,
		math.Vec3{X: potCenterX, Y: baseY + potBaseH, Z: potCenterZ})
	c.setTexture("pot")
	c.setUVScale(1, 1)
	c.setMaterial("grayMatte")
	c.meshes.DrawCylinder(true, true, true)

	// soil disk
	soilR := float32(potRadius * 0.90)
	c.setTransform(math.Vec3{X: soilR, Y: 0.05, Z: soilR}, 0, 0, 0,
		math.Vec3{X: potCenterX, Y: potTopY(), Z: potCenterZ})
	c.setColor(0.25, 0.18, 0.10, 1)
	c.setMaterial("soil")
	c.meshes.DrawCylinder(true, true, true)
}
