// Package texture maps string tags to GPU textures and the texture units
// they are bound on.
package texture

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/stillscene/internal/logger"
)

// NotFound is the sentinel returned when a tag is not registered. Callers
// treat it as "fall back to flat-color mode", never as a hard error.
const NotFound = -1

// GL calls behind function vars so registry bookkeeping is testable without
// a live context.
var (
	uploadTexture = glUploadTexture
	bindTexture   = glBindTexture
	deleteTexture = glDeleteTexture
)

type entry struct {
	tag string
	id  uint32
}

// Registry loads image files to GPU textures and tracks their tags.
// The slot index of a texture equals its registration order.
type Registry struct {
	entries []entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Load decodes an image file, uploads it as a 2D texture with repeat wrap,
// bilinear filtering and mipmaps, and records tag -> (handle, slot).
// On failure it logs and returns the error; the scene proceeds untextured.
func (r *Registry) Load(path, tag string) error {
	img, channels, err := decodeFile(path)
	if err != nil {
		logger.Error("could not load image",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Error(err),
		)
		return err
	}

	id := uploadTexture(img)
	r.entries = append(r.entries, entry{tag: tag, id: id})

	logger.Info("loaded image",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("width", img.Rect.Dx()),
		zap.Int("height", img.Rect.Dy()),
		zap.Int("channels", channels),
		zap.Int("slot", len(r.entries)-1),
	)
	return nil
}

// BindAll activates every registered texture on the texture unit matching
// its registration order, so the shader can sample any of them by slot.
// Must run after every Load and before the first textured draw.
func (r *Registry) BindAll() {
	for i, e := range r.entries {
		bindTexture(i, e.id)
	}
}

// Handle returns the GPU texture id for a tag, or NotFound.
func (r *Registry) Handle(tag string) int {
	for _, e := range r.entries {
		if e.tag == tag {
			return int(e.id)
		}
	}
	return NotFound
}

// Slot returns the texture unit index for a tag, or NotFound.
func (r *Registry) Slot(tag string) int {
	for i, e := range r.entries {
		if e.tag == tag {
			return i
		}
	}
	return NotFound
}

// Count returns the number of registered textures.
func (r *Registry) Count() int {
	return len(r.entries)
}

// ReleaseAll frees every GPU texture. All previously returned handles and
// slots are invalid afterwards.
func (r *Registry) ReleaseAll() {
	for _, e := range r.entries {
		deleteTexture(e.id)
	}
	r.entries = nil
}

func glUploadTexture(img *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

func glBindTexture(unit int, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func glDeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}
