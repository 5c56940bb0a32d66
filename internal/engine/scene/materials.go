package scene

import (
	"github.com/Faultbox/stillscene/internal/engine/material"
	"github.com/Faultbox/stillscene/pkg/math"
)

func preset(tag string, dr, dg, db, sr, sg, sb, shininess float32) material.Preset {
	return material.Preset{
		Tag:       tag,
		Diffuse:   math.Vec3{X: dr, Y: dg, Z: db},
		Specular:  math.Vec3{X: sr, Y: sg, Z: sb},
		Shininess: shininess,
	}
}

// defineMaterials registers every Phong surface the draw script refers to.
func defineMaterials(t *material.Table) {
	// flower pot, flat and matte
	t.Define(preset("grayMatte", 0.45, 0.45, 0.45, 0.1, 0.1, 0.1, 2))
	// glazed mug, soft sheen without harsh glare
	t.Define(preset("ceramic", 0.95, 0.93, 0.90, 0.20, 0.20, 0.19, 12))
	// napkin holder panels
	t.Define(preset("wood", 0.6, 0.4, 0.2, 0.15, 0.1, 0.05, 8))
	// richer wood for the arch tops
	t.Define(preset("woodie", 0.55, 0.35, 0.18, 0.2, 0.15, 0.08, 12))
	// pale coasters, low sheen
	t.Define(preset("lightWood", 0.75, 0.65, 0.50, 0.1, 0.1, 0.08, 4))
	// coaster wire frame
	t.Define(preset("darkMetal", 0.08, 0.08, 0.08, 0.6, 0.6, 0.6, 32))
	// lacquered counter surface
	t.Define(preset("counter", 0.82, 0.78, 0.72, 0.92, 0.90, 0.88, 128))
	// upper slab, tightest specular in the scene
	t.Define(preset("tableTop", 0.80, 0.76, 0.70, 0.98, 0.97, 0.95, 256))
	// generic metallic look for small hardware
	t.Define(preset("metal", 0.5, 0.5, 0.5, 0.6, 0.6, 0.6, 24))
	// bonsai leaves, vivid green with a waxy highlight
	t.Define(preset("foliage", 0.16, 0.46, 0.14, 0.12, 0.22, 0.10, 14))
	// trunk bark, rough and matte
	t.Define(preset("bark", 0.30, 0.24, 0.18, 0.05, 0.04, 0.03, 2))
	// soil disk, no shine at all
	t.Define(preset("soil", 0.25, 0.18, 0.10, 0.02, 0.02, 0.02, 1))
	// paper napkins
	t.Define(preset("napkin", 0.95, 0.95, 0.93, 0.10, 0.10, 0.10, 4))
	// back wall, kept flat so it reads as background
	t.Define(preset("wall", 0.95, 0.95, 0.90, 0.02, 0.02, 0.02, 1))
	// shaker cabinets, slight paint sheen
	t.Define(preset("cabinetWhite", 0.78, 0.78, 0.77, 0.12, 0.12, 0.11, 12))
	// fridge body
	t.Define(preset("stainless", 0.40, 0.40, 0.41, 0.55, 0.55, 0.56, 48))
	// fridge door handles
	t.Define(preset("fridgeHandle", 0.14, 0.14, 0.14, 0.35, 0.35, 0.35, 32))
}
