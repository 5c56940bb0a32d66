// Package scene composes the kitchen counter still life: it prepares the
// materials and textures once, then replays a fixed draw script every
// frame against the mesh, texture and shader collaborators.
package scene

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/stillscene/internal/engine/lighting"
	"github.com/Faultbox/stillscene/internal/engine/material"
	"github.com/Faultbox/stillscene/internal/engine/mesh"
	"github.com/Faultbox/stillscene/internal/engine/shader"
	"github.com/Faultbox/stillscene/internal/engine/texture"
	"github.com/Faultbox/stillscene/internal/engine/transform"
	"github.com/Faultbox/stillscene/pkg/math"
)

// Shelf heights everything else on the counter derives from.
const (
	upperTableY = 1.0
	lowerShelfY = -0.5
)

// Culling state access behind function vars so the save/restore contract
// is testable without a GL context.
var (
	cullingEnabled = glCullingEnabled
	setCulling     = glSetCulling
)

func glCullingEnabled() bool { return gl.IsEnabled(gl.CULL_FACE) }

func glSetCulling(on bool) {
	if on {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

// Composer owns the draw order for every static element of the scene.
type Composer struct {
	sink      shader.Sink
	meshes    mesh.Drawer
	textures  *texture.Registry
	materials *material.Table
	rig       lighting.Rig
	bonsai    Bonsai
}

// NewComposer wires the composer to its collaborators. Call Prepare before
// the first Render.
func NewComposer(sink shader.Sink, meshes mesh.Drawer, textures *texture.Registry) *Composer {
	return &Composer{
		sink:      sink,
		meshes:    meshes,
		textures:  textures,
		materials: material.NewTable(),
		rig:       lighting.Daylight(),
	}
}

// Prepare runs the one-time scene setup: material presets, the texture
// manifest from dir, and the derived bonsai geometry. Texture failures are
// logged and skipped; the affected surfaces fall back to flat color.
func (c *Composer) Prepare(dir string) {
	defineMaterials(c.materials)

	for _, t := range sceneTextures {
		// Load logs its own failures; a missing texture degrades the
		// surface, it never aborts preparation.
		_ = c.textures.Load(filepath.Join(dir, t.file), t.tag)
	}
	c.textures.BindAll()

	c.bonsai = BuildBonsai(bonsaiAnchor())
}

// Render draws the full scene in fixed order. Back-face culling is
// disabled for the whole pass so open-ended cylinders show their inner
// walls, and restored to its prior state on every exit path.
func (c *Composer) Render() {
	c.rig.Apply(c.sink)

	restore := suspendCulling()
	defer restore()

	c.drawBackground()
	c.drawCounter()
	c.drawPot()
	c.drawBonsai()
	c.drawMug()
	c.drawCoasters()
	c.drawNapkinHolder()
}

// suspendCulling disables back-face culling and returns the restore
// function for the previous state.
func suspendCulling() func() {
	was := cullingEnabled()
	setCulling(false)
	return func() {
		if was {
			setCulling(true)
		}
	}
}

// setTransform pushes the model matrix for the next draw. Rotations are in
// degrees, applied X then Y then Z after scaling.
func (c *Composer) setTransform(scale math.Vec3, rx, ry, rz float32, pos math.Vec3) {
	c.sink.SetMat4("model", transform.Model(scale, rx, ry, rz, pos))
}

// setColor switches the next draw to flat-color mode.
func (c *Composer) setColor(r, g, b, a float32) {
	c.sink.SetBool("bUseTexture", false)
	c.sink.SetVec4("objectColor", r, g, b, a)
}

// setTexture switches the next draw to texture mode, sampling the tagged
// texture's unit. An unknown tag leaves the previous mode in place.
func (c *Composer) setTexture(tag string) {
	slot := c.textures.Slot(tag)
	if slot == texture.NotFound {
		return
	}
	c.sink.SetBool("bUseTexture", true)
	c.sink.SetInt("objectTexture", int32(slot))
}

// setUVScale sets how many times the texture tiles across the surface.
func (c *Composer) setUVScale(u, v float32) {
	c.sink.SetVec2("UVscale", u, v)
}

// setMaterial pushes the tagged Phong preset.
func (c *Composer) setMaterial(tag string) {
	c.materials.Apply(c.sink, tag)
}
