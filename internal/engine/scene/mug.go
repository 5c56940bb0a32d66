package scene

import "github.com/Faultbox/stillscene/pkg/math"

// drawMug renders the candle mug on the lower shelf: ceramic body, wax
// disk just inside the rim, a torus handle flush against the wall, and a
// thin label band around the lower section.
func (c *Composer) drawMug() {
	const (
		mugRadius = 0.65
		mugHeight = 1.275
		mugX      = -4.0
		mugZ      = 4.0
	)
	baseY := float32(lowerShelfY)

	// body
	c.setTransform(math.Vec3{X: mugRadius, Y: mugHeight, Z: mugRadius}, 0, 0, 0,
		math.Vec3{X: mugX, Y: baseY, Z: mugZ})
	c.setColor(0.95, 0.93, 0.90, 1)
	c.setMaterial("ceramic")
	c.meshes.DrawCylinder(true, true, true)

	// wax surface just inside the rim
	waxR := float32(mugRadius * 0.88)
	c.setTransform(math.Vec3{X: waxR, Y: 0.055, Z: waxR}, 0, 0, 0,
		math.Vec3{X: mugX, Y: baseY + mugHeight - 0.05, Z: mugZ})
	c.setColor(0.88, 0.84, 0.72, 1)
	c.setMaterial("ceramic")
	c.meshes.DrawCylinder(true, true, true)

	// handle, centered on the wall so only the outer half shows
	c.setTransform(math.Vec3{X: 0.42, Y: 0.3, Z: 0.42}, 90, 0, 0,
		math.Vec3{X: mugX - mugRadius, Y: baseY + mugHeight*0.50, Z: mugZ})
	c.setColor(0.95, 0.93, 0.90, 1)
	c.setMaterial("ceramic")
	c.meshes.DrawTorus()

	// label band around the lower portion
	bandR := float32(mugRadius + 0.01)
	c.setTransform(math.Vec3{X: bandR, Y: mugHeight * 0.25, Z: bandR}, 0, 0, 0,
		math.Vec3{X: mugX, Y: baseY + mugHeight*0.15, Z: mugZ})
	c.setColor(0.88, 0.86, 0.82, 1)
	c.setMaterial("ceramic")
	c.meshes.DrawCylinder(false, false, true)
}
