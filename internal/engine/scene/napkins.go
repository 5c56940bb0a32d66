package scene

import "github.com/Faultbox/stillscene/pkg/math"

// drawNapkinHolder renders the wooden holder on the right of the lower
// shelf: two arch-topped panels facing each other over a base slab, with
// twelve napkins standing in the slot between them.
//
// The arch is a full cylinder placed at the top edge of the rectangular
// panel; its lower half hides inside the box, leaving only the arch.
func (c *Composer) drawNapkinHolder() {
	const (
		nhX        = 2.0
		nhZ        = 4.5
		panelWidth = 3.4
		panelRectH = 2.0
		archRadius = panelWidth / 2
		panelThk   = 0.2
		slotGap    = 0.75
	)
	baseY := float32(lowerShelfY)

	frontZ := float32(nhZ + slotGap/2 + panelThk/2)
	backZ := float32(nhZ - slotGap/2 - panelThk/2)

	// front panel
	c.setTransform(math.Vec3{X: panelWidth, Y: panelRectH, Z: panelThk}, 0, 0, 0,
		math.Vec3{X: nhX, Y: baseY + panelRectH/2, Z: frontZ})
	c.setColor(0.55, 0.35, 0.15, 1)
	c.setTexture("wood")
	c.setUVScale(1, 1)
	c.setMaterial("wood")
	c.meshes.DrawBox()

	// front arch, rotated so the cylinder axis points inward
	c.setTransform(math.Vec3{X: archRadius, Y: panelThk, Z: archRadius}, -90, 0, 0,
		math.Vec3{X: nhX, Y: baseY + panelRectH, Z: frontZ + panelThk/2})
	c.setColor(0.55, 0.35, 0.15, 1)
	c.setTexture("woodie")
	c.setUVScale(1, 1)
	c.setMaterial("woodie")
	c.meshes.DrawCylinder(true, true, true)

	// back panel
	c.setTransform(math.Vec3{X: panelWidth, Y: panelRectH, Z: panelThk}, 0, 0, 0,
		math.Vec3{X: nhX, Y: baseY + panelRectH/2, Z: backZ})
	c.setColor(0.55, 0.35, 0.15, 1)
	c.setTexture("wood")
	c.setUVScale(1, 1)
	c.setMaterial("wood")
	c.meshes.DrawBox()

	// back arch
	c.setTransform(math.Vec3{X: archRadius, Y: panelThk, Z: archRadius}, 90, 0, 0,
		math.Vec3{X: nhX, Y: baseY + panelRectH, Z: backZ - panelThk/2})
	c.setColor(0.55, 0.35, 0.15, 1)
	c.setTexture("wood")
	c.setUVScale(1, 1)
	c.setMaterial("wood")
	c.meshes.DrawCylinder(true, true, true)

	// base slab spanning both panels
	const totalDepth = slotGap + panelThk*2
	c.setTransform(math.Vec3{X: panelWidth, Y: panelThk, Z: totalDepth}, 0, 0, 0,
		math.Vec3{X: nhX, Y: baseY + panelThk/2, Z: nhZ})
	c.setColor(0.52, 0.32, 0.13, 1)
	c.setMaterial("wood")
	c.meshes.DrawBox()

	// napkins fill most of the slot, with small height and shade
	// variation so they read as individual sheets
	const (
		napkinCount = 12
		napkinH     = panelRectH + archRadius
		totalSlotZ  = slotGap * 0.88
		napkinThk   = totalSlotZ / napkinCount
	)
	startZ := float32(nhZ - totalSlotZ/2 + napkinThk/2)

	for i := 0; i < napkinCount; i++ {
		heightVar := float32(1.0)
		if i%2 == 1 {
			heightVar = 0.97
		}
		shade := 0.94 + float32(i%3)*0.01

		c.setTransform(
			math.Vec3{X: panelWidth * 1.17, Y: napkinH * heightVar, Z: napkinThk * 0.92},
			0, 0, 0,
			math.Vec3{
				X: nhX,
				Y: baseY + napkinH*heightVar/2 + panelThk,
				Z: startZ + float32(i)*napkinThk,
			})
		c.setColor(shade, shade, shade*0.98, 1)
		c.setTexture("napkin")
		c.setUVScale(1, 1)
		c.setMaterial("napkin")
		c.meshes.DrawBox()
	}
}
