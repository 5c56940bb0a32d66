package lighting

import (
	"testing"

	"github.com/Faultbox/stillscene/pkg/math"
)

type recordSink struct {
	vec3s map[string][3]float32
	bools map[string]bool
}

func newRecordSink() *recordSink {
	return &recordSink{vec3s: make(map[string][3]float32), bools: make(map[string]bool)}
}

func (s *recordSink) SetMat4(name string, m math.Mat4)        {}
func (s *recordSink) SetVec2(name string, x, y float32)       {}
func (s *recordSink) SetVec4(name string, x, y, z, w float32) {}
func (s *recordSink) SetFloat(name string, v float32)         {}
func (s *recordSink) SetInt(name string, v int32)             {}
func (s *recordSink) SetVec3(name string, x, y, z float32)    { s.vec3s[name] = [3]float32{x, y, z} }
func (s *recordSink) SetBool(name string, v bool)             { s.bools[name] = v }

func TestDaylightCalibration(t *testing.T) {
	rig := Daylight()

	if !rig.Directional.Active {
		t.Error("directional light should be active")
	}
	if got := rig.Directional.Vector; got != (math.Vec3{X: 1.0, Y: -0.55, Z: -0.40}) {
		t.Errorf("sun direction: got %v", got)
	}

	for i := 0; i < 4; i++ {
		if !rig.Points[i].Active {
			t.Errorf("point light %d should be active", i)
		}
	}
	if rig.Points[4].Active {
		t.Error("point light 4 should stay off")
	}

	if got := rig.Points[0].Diffuse; got != (math.Vec3{X: 0.50, Y: 0.48, Z: 0.46}) {
		t.Errorf("key light diffuse: got %v", got)
	}
	if got := rig.Points[2].Vector; got != (math.Vec3{X: 0, Y: 3, Z: 14}) {
		t.Errorf("front fill position: got %v", got)
	}
}

func TestApplyWritesEverySlot(t *testing.T) {
	sink := newRecordSink()
	Daylight().Apply(sink)

	if !sink.bools["bUseLighting"] {
		t.Error("bUseLighting should be set")
	}
	if !sink.bools["directionalLight.bActive"] {
		t.Error("directionalLight.bActive should be true")
	}
	if got := sink.vec3s["directionalLight.direction"]; got != [3]float32{1.0, -0.55, -0.40} {
		t.Errorf("directionalLight.direction: got %v", got)
	}

	// Every declared slot gets bActive written, even the disabled one
	wantActive := map[string]bool{
		"pointLights[0].bActive": true,
		"pointLights[1].bActive": true,
		"pointLights[2].bActive": true,
		"pointLights[3].bActive": true,
		"pointLights[4].bActive": false,
		"spotLight.bActive":      false,
	}
	for name, want := range wantActive {
		got, ok := sink.bools[name]
		if !ok {
			t.Errorf("%s was never written", name)
			continue
		}
		if got != want {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}

	if got := sink.vec3s["pointLights[1].diffuse"]; got != [3]float32{0.18, 0.21, 0.26} {
		t.Errorf("pointLights[1].diffuse: got %v", got)
	}
	if got := sink.vec3s["pointLights[4].position"]; got != [3]float32{0, 0, 0} {
		t.Errorf("disabled slot position should still be written, got %v", got)
	}
}
