package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/stillscene/pkg/math"
)

// Manager pushes uniforms to a linked shader program, caching uniform
// locations by name. Unknown uniform names resolve to -1 and the GL calls
// become no-ops, which matches the degrade-not-crash policy of the scene core.
type Manager struct {
	program   uint32
	locations map[string]int32
}

// NewManager wraps a linked program.
func NewManager(program uint32) *Manager {
	return &Manager{
		program:   program,
		locations: make(map[string]int32),
	}
}

// Use activates the program. Call once per frame before any Set calls.
func (m *Manager) Use() {
	gl.UseProgram(m.program)
}

// Program returns the underlying GL program ID.
func (m *Manager) Program() uint32 {
	return m.program
}

// Destroy deletes the GL program.
func (m *Manager) Destroy() {
	if m.program != 0 {
		gl.DeleteProgram(m.program)
		m.program = 0
	}
}

func (m *Manager) location(name string) int32 {
	if loc, ok := m.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(m.program, gl.Str(name+"\x00"))
	m.locations[name] = loc
	return loc
}

// SetMat4 sets a 4x4 matrix uniform.
func (m *Manager) SetMat4(name string, mat math.Mat4) {
	gl.UniformMatrix4fv(m.location(name), 1, false, mat.Ptr())
}

// SetVec2 sets a 2-component vector uniform.
func (m *Manager) SetVec2(name string, x, y float32) {
	gl.Uniform2f(m.location(name), x, y)
}

// SetVec3 sets a 3-component vector uniform.
func (m *Manager) SetVec3(name string, x, y, z float32) {
	gl.Uniform3f(m.location(name), x, y, z)
}

// SetVec4 sets a 4-component vector uniform.
func (m *Manager) SetVec4(name string, x, y, z, w float32) {
	gl.Uniform4f(m.location(name), x, y, z, w)
}

// SetFloat sets a scalar float uniform.
func (m *Manager) SetFloat(name string, v float32) {
	gl.Uniform1f(m.location(name), v)
}

// SetInt sets an integer (or sampler slot) uniform.
func (m *Manager) SetInt(name string, v int32) {
	gl.Uniform1i(m.location(name), v)
}

// SetBool sets a boolean uniform as 0/1.
func (m *Manager) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(m.location(name), i)
}
