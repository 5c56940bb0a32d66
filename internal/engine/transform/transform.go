// Package transform builds model matrices from the scale/rotate/translate
// parameters every scene object is placed with.
package transform

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/stillscene/pkg/math"
)

// Model composes translate * rotateZ * rotateY * rotateX * scale, so the
// object is scaled in its own frame, rotated X then Y then Z, and finally
// moved to pos. Rotation angles are in degrees.
func Model(scale math.Vec3, rotXDeg, rotYDeg, rotZDeg float32, pos math.Vec3) math.Mat4 {
	s := math.Scale(scale.X, scale.Y, scale.Z)
	rx := math.RotateX(radians(rotXDeg))
	ry := math.RotateY(radians(rotYDeg))
	rz := math.RotateZ(radians(rotZDeg))
	t := math.Translate(pos.X, pos.Y, pos.Z)

	return t.Mul(rz).Mul(ry).Mul(rx).Mul(s)
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
