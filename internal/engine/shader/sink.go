package shader

import "github.com/Faultbox/stillscene/pkg/math"

// Sink receives named shading parameters. The scene core writes every uniform
// through this interface; the GL-backed Manager is the production
// implementation, and tests substitute a recording fake.
type Sink interface {
	SetMat4(name string, m math.Mat4)
	SetVec2(name string, x, y float32)
	SetVec3(name string, x, y, z float32)
	SetVec4(name string, x, y, z, w float32)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetBool(name string, v bool)
}
