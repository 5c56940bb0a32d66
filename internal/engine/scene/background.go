package scene

import "github.com/Faultbox/stillscene/pkg/math"

// drawBackground renders the kitchen wall behind the counter: cream back
// wall with a dark floor strip, a pantry cabinet column on the left, a
// stainless fridge under an upper cabinet in the center, and a plain wall
// section with a switch plate on the right. Drawn first so everything
// else renders over it.
func (c *Composer) drawBackground() {
	const (
		bgZ    = -11.0
		floorY = -4.0
		ceilY  = 16.0
		wallH  = ceilY - floorY
		wallW  = 60.0
		cabZ   = bgZ + 0.35
	)

	// back wall
	c.setTransform(math.Vec3{X: wallW, Y: wallH, Z: 0.3}, 0, 0, 0,
		math.Vec3{Y: floorY + wallH*0.5, Z: bgZ})
	c.setTexture("wall")
	c.setUVScale(1, 1)
	c.setMaterial("wall")
	c.meshes.DrawBox()

	// hardwood floor strip
	c.setTransform(math.Vec3{X: wallW, Y: 0.3, Z: 6}, 0, 0, 0,
		math.Vec3{Y: floorY + 0.15, Z: bgZ + 3})
	c.setColor(0.16, 0.11, 0.07, 1)
	c.setMaterial("bark")
	c.meshes.DrawBox()

	// ceiling strip
	c.setTransform(math.Vec3{X: wallW, Y: 1.5, Z: 4}, 0, 0, 0,
		math.Vec3{Y: ceilY - 0.75, Z: bgZ + 2})
	c.setTexture("wall")
	c.setUVScale(1, 1)
	c.setMaterial("wall")
	c.meshes.DrawBox()

	c.drawPantry(cabZ)
	c.drawFridge(floorY, cabZ)

	// right wall section
	c.setTransform(math.Vec3{X: 8, Y: wallH, Z: 0.3}, 0, 0, 0,
		math.Vec3{X: 8, Y: floorY + wallH*0.5, Z: bgZ})
	c.setTexture("wall")
	c.setUVScale(1, 1)
	c.setMaterial("wall")
	c.meshes.DrawBox()

	// light-switch plate
	c.setTransform(math.Vec3{X: 0.55, Y: 0.85, Z: 0.12}, 0, 0, 0,
		math.Vec3{X: 6.8, Y: 2.8, Z: bgZ + 0.22})
	c.setColor(0.80, 0.80, 0.79, 1)
	c.setMaterial("cabinetWhite")
	c.meshes.DrawBox()
}

// drawPantry renders the tall cabinet column on the left: two stacked door
// bodies with inset panels, a mid-rail, and a bar handle on each door.
func (c *Composer) drawPantry(cabZ float32) {
	const (
		cabW = 5.5
		cabX = -9.5
	)

	// upper and lower pantry bodies
	c.setTransform(math.Vec3{X: cabW, Y: 7.5, Z: 0.7}, 0, 0, 0,
		math.Vec3{X: cabX, Y: 8.5, Z: cabZ})
	c.setColor(0.78, 0.78, 0.77, 1)
	c.setMaterial("cabinetWhite")
	c.meshes.DrawBox()

	c.setTransform(math.Vec3{X: cabW, Y: 7.0, Z: 0.7}, 0, 0, 0,
		math.Vec3{X: cabX, Y: 0.5, Z: cabZ})
	c.setColor(0.78, 0.78, 0.77, 1)
	c.setMaterial("cabinetWhite")
	c.meshes.DrawBox()

	// door inset panels
	c.setTransform(math.Vec3{X: cabW * 0.80, Y: 6.8, Z: 0.12}, 0, 0, 0,
		math.Vec3{X: cabX, Y: 8.5, Z: cabZ + 0.41})
	c.setColor(0.72, 0.72, 0.71, 1)
	c.setMaterial("cabinetWhite")
	c.meshes.DrawBox()

	c.setTransform(math.Vec3{X: cabW * 0.80, Y: 6.3, Z: 0.12}, 0, 0, 0,
		math.Vec3{X: cabX, Y: 0.5, Z: cabZ + 0.41})
	c.setColor(0.72, 0.72, 0.71, 1)
	c.setMaterial("cabinetWhite")
	c.meshes.DrawBox()

	// mid-rail between the doors
	c.setTransform(math.Vec3{X: cabW, Y: 0.25, Z: 0.75}, 0, 0, 0,
		math.Vec3{X: cabX, Y: 4.2, Z: cabZ + 0.05})
	c.setColor(0.78, 0.78, 0.77, 1)
	c.setMaterial("cabinetWhite")
	c.meshes.DrawBox()

	// door handles
	for _, handleY := range []float32{8.5, 0.5} {
		c.setTransform(math.Vec3{X: 0.12, Y: 1.2, Z: 0.12}, 0, 0, 0,
			math.Vec3{X: cabX + 1.8, Y: handleY, Z: cabZ + 0.54})
		c.setColor(0.55, 0.55, 0.55, 1)
		c.setMaterial("metal")
		c.meshes.DrawCylinder(false, false, true)
	}
}

// drawFridge renders the french-door fridge, its surround pilasters, the
// upper cabinet above it, and the door hardware.
func (c *Composer) drawFridge(floorY, cabZ float32) {
	const (
		fridgeW = 5.2
		fridgeX = -1.0
		fridgeH = 13.5
	)
	fridgeBotY := floorY + 0.3
	fridgeTopY := fridgeBotY + fridgeH

	// surround pilasters, tall enough to meet the upper cabinet
	for _, side := range []float32{-1, 1} {
		c.setTransform(math.Vec3{X: 1.2, Y: fridgeH + 2.3, Z: 0.9}, 0, 0, 0,
			math.Vec3{
				X: fridgeX + side*(fridgeW*0.5+0.6),
				Y: fridgeBotY + (fridgeH+2.3)*0.5,
				Z: cabZ - 0.05,
			})
		c.setColor(0.78, 0.78, 0.77, 1)
		c.setMaterial("cabinetWhite")
		c.meshes.DrawBox()
	}

	// upper cabinet above the fridge
	const upCabH = 2.3
	upCabY := fridgeTopY + upCabH*0.5
	c.setTransform(math.Vec3{X: fridgeW + 2.4, Y: upCabH, Z: 0.85}, 0, 0, 0,
		math.Vec3{X: fridgeX, Y: upCabY, Z: cabZ})
	c.setColor(0.78, 0.78, 0.77, 1)
	c.setMaterial("cabinetWhite")
	c.meshes.DrawBox()

	// upper cabinet door insets
	for _, side := range []float32{-1, 1} {
		c.setTransform(math.Vec3{X: (fridgeW + 2.4) * 0.46, Y: upCabH * 0.82, Z: 0.12}, 0, 0, 0,
			math.Vec3{X: fridgeX + side*(fridgeW+2.4)*0.25, Y: upCabY, Z: cabZ + 0.48})
		c.setColor(0.72, 0.72, 0.71, 1)
		c.setMaterial("cabinetWhite")
		c.meshes.DrawBox()
	}

	// upper cabinet handles
	for _, side := range []float32{-1, 1} {
		c.setTransform(math.Vec3{X: 0.1, Y: 0.9, Z: 0.1}, 0, 0, 0,
			math.Vec3{X: fridgeX + side*0.3, Y: upCabY - 0.5, Z: cabZ + 0.61})
		c.setColor(0.55, 0.55, 0.55, 1)
		c.setMaterial("metal")
		c.meshes.DrawCylinder(false, false, true)
	}

	fridgeFaceZ := cabZ + 0.55
	const fridgeDepth = 1.2

	// stainless body
	c.setTransform(math.Vec3{X: fridgeW, Y: fridgeH, Z: fridgeDepth}, 0, 0, 0,
		math.Vec3{X: fridgeX, Y: fridgeBotY + fridgeH*0.5, Z: fridgeFaceZ - fridgeDepth*0.5})
	c.setColor(0.40, 0.40, 0.41, 1)
	c.setMaterial("stainless")
	c.meshes.DrawBox()

	// vertical door seam
	c.setTransform(math.Vec3{X: 0.06, Y: fridgeH * 0.72, Z: fridgeDepth + 0.02}, 0, 0, 0,
		math.Vec3{
			X: fridgeX,
			Y: fridgeBotY + fridgeH*0.26 + fridgeH*0.72*0.5,
			Z: fridgeFaceZ,
		})
	c.setColor(0.22, 0.22, 0.23, 1)
	c.setMaterial("darkMetal")
	c.meshes.DrawBox()

	// horizontal seam above the freezer drawer
	c.setTransform(math.Vec3{X: fridgeW + 0.05, Y: 0.08, Z: fridgeDepth + 0.02}, 0, 0, 0,
		math.Vec3{X: fridgeX, Y: fridgeBotY + fridgeH*0.26, Z: fridgeFaceZ})
	c.setColor(0.20, 0.20, 0.21, 1)
	c.setMaterial("darkMetal")
	c.meshes.DrawBox()

	// door handles
	for _, side := range []float32{-1, 1} {
		c.setTransform(math.Vec3{X: 0.14, Y: 3.8, Z: 0.14}, 0, 0, 0,
			math.Vec3{X: fridgeX + side*0.55, Y: fridgeBotY + fridgeH*0.62, Z: fridgeFaceZ + 0.22})
		c.setColor(0.14, 0.14, 0.14, 1)
		c.setMaterial("fridgeHandle")
		c.meshes.DrawBox()
	}

	// freezer drawer bar
	c.setTransform(math.Vec3{X: fridgeW * 0.65, Y: 0.18, Z: 0.18}, 0, 0, 0,
		math.Vec3{X: fridgeX, Y: fridgeBotY + fridgeH*0.13, Z: fridgeFaceZ + 0.22})
	c.setColor(0.14, 0.14, 0.14, 1)
	c.setMaterial("fridgeHandle")
	c.meshes.DrawBox()

	// feet
	for _, side := range []float32{-1, 1} {
		c.setTransform(math.Vec3{X: 0.25, Y: 0.28, Z: 0.25}, 0, 0, 0,
			math.Vec3{X: fridgeX + side*(fridgeW*0.38), Y: fridgeBotY - 0.14, Z: fridgeFaceZ - 0.4})
		c.setColor(0.10, 0.10, 0.10, 1)
		c.setMaterial("darkMetal")
		c.meshes.DrawCylinder(true, true, true)
	}
}
