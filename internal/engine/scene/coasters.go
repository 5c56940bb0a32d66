package scene

import "github.com/Faultbox/stillscene/pkg/math"

// drawCoasters renders the coaster stack and its wire holder on the lower
// shelf. The holder is four U-shaped arches (front, back, left, right),
// each two thin legs plus a foot bar per leg and a stretched sphere
// capping the top of the U.
func (c *Composer) drawCoasters() {
	const (
		coasterRadius    = 1.1
		coasterThickness = 0.15
		coasterGap       = 0.06
		numCoasters      = 8
		coasterX         = -1.5
		coasterZ         = 4.5
	)
	baseY := float32(lowerShelfY)

	// the wire height matches the stack height
	stackBaseY := baseY + 0.10
	stackHeight := float32(numCoasters * (coasterThickness + coasterGap))

	const (
		wireR      = 0.045
		legSpacing = 0.30
		edgeDist   = coasterRadius + 0.03
	)
	footY := baseY + wireR

	// Each arch: legs spread along the spread axis at an offset just
	// outside the coaster edge on the facing axis. The foot bars rotate
	// so they run inward toward the stack center.
	type arch struct {
		alongX         bool // legs spread along X (front/back) or Z (left/right)
		offset         float32
		footRX, footRZ float32
	}
	arches := []arch{
		{alongX: true, offset: edgeDist, footRX: -90},   // front
		{alongX: true, offset: -edgeDist, footRX: 90},   // back
		{alongX: false, offset: -edgeDist, footRZ: -90}, // left
		{alongX: false, offset: edgeDist, footRZ: 90},   // right
	}

	for _, a := range arches {
		c.setColor(0.08, 0.08, 0.08, 1)
		c.setMaterial("darkMetal")

		for _, leg := range []float32{-legSpacing, legSpacing} {
			var legPos, footPos math.Vec3
			if a.alongX {
				legPos = math.Vec3{X: coasterX + leg, Y: baseY, Z: coasterZ + a.offset}
				footPos = math.Vec3{X: coasterX + leg, Y: footY, Z: coasterZ + a.offset}
			} else {
				legPos = math.Vec3{X: coasterX + a.offset, Y: baseY, Z: coasterZ + leg}
				footPos = math.Vec3{X: coasterX + a.offset, Y: footY, Z: coasterZ + leg}
			}

			c.setTransform(math.Vec3{X: wireR, Y: stackHeight, Z: wireR}, 0, 0, 0, legPos)
			c.meshes.DrawCylinder(false, false, true)

			c.setTransform(math.Vec3{X: wireR, Y: edgeDist, Z: wireR}, a.footRX, 0, a.footRZ, footPos)
			c.meshes.DrawCylinder(false, false, true)
		}

		// stretched sphere bridging the legs at the top of the U
		var capScale math.Vec3
		var capPos math.Vec3
		if a.alongX {
			capScale = math.Vec3{X: legSpacing + wireR, Y: wireR * 1.5, Z: wireR}
			capPos = math.Vec3{X: coasterX, Y: baseY + stackHeight, Z: coasterZ + a.offset}
		} else {
			capScale = math.Vec3{X: wireR, Y: wireR * 1.5, Z: legSpacing + wireR}
			capPos = math.Vec3{X: coasterX + a.offset, Y: baseY + stackHeight, Z: coasterZ}
		}
		c.setTransform(capScale, 0, 0, 0, capPos)
		c.meshes.DrawSphere()
	}

	// coaster disks, alternating shade so each reads as a separate piece
	for i := 0; i < numCoasters; i++ {
		c.setTransform(
			math.Vec3{X: coasterRadius, Y: coasterThickness, Z: coasterRadius},
			0, 0, 0,
			math.Vec3{
				X: coasterX,
				Y: stackBaseY + float32(i)*(coasterThickness+coasterGap),
				Z: coasterZ,
			})
		shade := float32(0.90)
		if i%2 == 1 {
			shade = 0.87
		}
		c.setColor(shade, shade-0.01, shade-0.04, 1)
		c.setTexture("coaster")
		c.setUVScale(1, 1)
		c.setMaterial("lightWood")
		c.meshes.DrawCylinder(true, true, true)
	}
}
