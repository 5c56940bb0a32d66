// Package material keeps the Phong surface presets used by the scene and
// pushes them into the shader's material block.
package material

import (
	"github.com/Faultbox/stillscene/internal/engine/shader"
	"github.com/Faultbox/stillscene/pkg/math"
)

// Preset is one named Phong surface.
type Preset struct {
	Tag       string
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// Table holds presets in definition order.
type Table struct {
	presets []Preset
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Define registers a preset under its tag.
func (t *Table) Define(p Preset) {
	t.presets = append(t.presets, p)
}

// Find returns the preset with the given tag.
func (t *Table) Find(tag string) (Preset, bool) {
	for _, p := range t.presets {
		if p.Tag == tag {
			return p, true
		}
	}
	return Preset{}, false
}

// Count returns the number of defined presets.
func (t *Table) Count() int {
	return len(t.presets)
}

// Apply writes the tagged preset into the shader's material uniforms.
// An unknown tag writes nothing, so the previous material stays active.
func (t *Table) Apply(sink shader.Sink, tag string) {
	p, ok := t.Find(tag)
	if !ok {
		return
	}
	sink.SetVec3("material.diffuseColor", p.Diffuse.X, p.Diffuse.Y, p.Diffuse.Z)
	sink.SetVec3("material.specularColor", p.Specular.X, p.Specular.Y, p.Specular.Z)
	sink.SetFloat("material.shininess", p.Shininess)
}
