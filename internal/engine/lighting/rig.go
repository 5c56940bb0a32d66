// Package lighting owns the scene light rig and writes it into the
// shader's light uniform blocks.
package lighting

import (
	"fmt"

	"github.com/Faultbox/stillscene/internal/engine/shader"
	"github.com/Faultbox/stillscene/pkg/math"
)

// PointSlots is the number of point light slots the fragment shader declares.
const PointSlots = 5

// Light is one light source. Vector is a direction for the directional
// light and a world position for point lights.
type Light struct {
	Active   bool
	Vector   math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// Rig is the full set of lights the shader consumes per frame.
type Rig struct {
	Directional Light
	Points      [PointSlots]Light
}

// Daylight returns the calibrated kitchen rig: one soft window-direction
// sun plus four fill lights. The fifth point slot and the spot light stay
// off.
func Daylight() Rig {
	return Rig{
		Directional: Light{
			Active:   true,
			Vector:   math.Vec3{X: 1.0, Y: -0.55, Z: -0.40},
			Ambient:  math.Vec3{X: 0.07, Y: 0.06, Z: 0.06},
			Diffuse:  math.Vec3{X: 0.24, Y: 0.23, Z: 0.22},
			Specular: math.Vec3{X: 0.10, Y: 0.10, Z: 0.10},
		},
		Points: [PointSlots]Light{
			{
				// key, over the left shoulder
				Active:   true,
				Vector:   math.Vec3{X: -14, Y: 9, Z: 18},
				Ambient:  math.Vec3{X: 0.08, Y: 0.07, Z: 0.07},
				Diffuse:  math.Vec3{X: 0.50, Y: 0.48, Z: 0.46},
				Specular: math.Vec3{X: 0.14, Y: 0.13, Z: 0.12},
			},
			{
				// cool ceiling bounce
				Active:   true,
				Vector:   math.Vec3{X: -8, Y: 16, Z: 6},
				Ambient:  math.Vec3{X: 0.05, Y: 0.06, Z: 0.08},
				Diffuse:  math.Vec3{X: 0.18, Y: 0.21, Z: 0.26},
				Specular: math.Vec3{X: 0.05, Y: 0.06, Z: 0.08},
			},
			{
				// warm front fill
				Active:   true,
				Vector:   math.Vec3{X: 0, Y: 3, Z: 14},
				Ambient:  math.Vec3{X: 0.07, Y: 0.07, Z: 0.06},
				Diffuse:  math.Vec3{X: 0.38, Y: 0.37, Z: 0.35},
				Specular: math.Vec3{X: 0.12, Y: 0.12, Z: 0.11},
			},
			{
				// dim overhead
				Active:   true,
				Vector:   math.Vec3{X: -2, Y: 18, Z: 2},
				Ambient:  math.Vec3{X: 0.05, Y: 0.05, Z: 0.05},
				Diffuse:  math.Vec3{X: 0.18, Y: 0.18, Z: 0.18},
				Specular: math.Vec3{X: 0.04, Y: 0.04, Z: 0.04},
			},
			{},
		},
	}
}

// Apply writes the whole rig, including disabled slots, and turns shading
// on. Disabled slots must still write bActive so stale state from an
// earlier frame cannot leak through.
func (r Rig) Apply(sink shader.Sink) {
	sink.SetBool("bUseLighting", true)

	sink.SetBool("directionalLight.bActive", r.Directional.Active)
	setLightVectors(sink, "directionalLight.direction", "directionalLight", r.Directional)

	for i, p := range r.Points {
		prefix := fmt.Sprintf("pointLights[%d]", i)
		sink.SetBool(prefix+".bActive", p.Active)
		setLightVectors(sink, prefix+".position", prefix, p)
	}

	sink.SetBool("spotLight.bActive", false)
}

func setLightVectors(sink shader.Sink, vectorName, prefix string, l Light) {
	sink.SetVec3(vectorName, l.Vector.X, l.Vector.Y, l.Vector.Z)
	sink.SetVec3(prefix+".ambient", l.Ambient.X, l.Ambient.Y, l.Ambient.Z)
	sink.SetVec3(prefix+".diffuse", l.Diffuse.X, l.Diffuse.Y, l.Diffuse.Z)
	sink.SetVec3(prefix+".specular", l.Specular.X, l.Specular.Y, l.Specular.Z)
}
