package scene

import "github.com/Faultbox/stillscene/pkg/math"

// topThickness is the height of the upper counter slab.
const topThickness = 1.0

// drawCounter renders the two shelf levels: the raised slab the pot sits
// on, the vertical face panel between the levels, and the lower shelf
// plane holding the mug, coasters and napkin holder.
func (c *Composer) drawCounter() {
	// upper slab
	c.setTransform(math.Vec3{X: 20, Y: topThickness, Z: 8}, 0, 0, 0,
		math.Vec3{Y: upperTableY + topThickness*0.5, Z: -3})
	c.setTexture("toptable")
	c.setUVScale(1, 1)
	c.setMaterial("tableTop")
	c.meshes.DrawBox()

	// front face panel between the levels
	c.setTransform(math.Vec3{X: 20, Y: upperTableY - lowerShelfY, Z: 0.8}, 0, 0, 0,
		math.Vec3{Y: (upperTableY + lowerShelfY) / 2})
	c.setColor(0.72, 0.72, 0.70, 1)
	c.setMaterial("counter")
	c.meshes.DrawBox()

	// lower shelf
	c.setTransform(math.Vec3{X: 20, Y: 1, Z: 6}, 0, 0, 0,
		math.Vec3{Y: lowerShelfY, Z: 3})
	c.setColor(0.55, 0.53, 0.50, 1)
	c.setTexture("bottomtable")
	c.setUVScale(1, 1)
	c.setMaterial("counter")
	c.meshes.DrawPlane()
}
