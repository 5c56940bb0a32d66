package scene

import (
	"testing"

	"github.com/Faultbox/stillscene/internal/engine/texture"
	"github.com/Faultbox/stillscene/pkg/math"
)

// recordSink keeps an ordered log of uniform writes plus last values.
type recordSink struct {
	order []string
	bools map[string]bool
	ints  map[string]int32
	vec4s map[string][4]float32
}

func newRecordSink() *recordSink {
	return &recordSink{
		bools: make(map[string]bool),
		ints:  make(map[string]int32),
		vec4s: make(map[string][4]float32),
	}
}

func (s *recordSink) SetMat4(name string, m math.Mat4)     { s.order = append(s.order, name) }
func (s *recordSink) SetVec2(name string, x, y float32)    { s.order = append(s.order, name) }
func (s *recordSink) SetVec3(name string, x, y, z float32) { s.order = append(s.order, name) }
func (s *recordSink) SetVec4(name string, x, y, z, w float32) {
	s.order = append(s.order, name)
	s.vec4s[name] = [4]float32{x, y, z, w}
}
func (s *recordSink) SetFloat(name string, v float32) { s.order = append(s.order, name) }
func (s *recordSink) SetInt(name string, v int32) {
	s.order = append(s.order, name)
	s.ints[name] = v
}
func (s *recordSink) SetBool(name string, v bool) {
	s.order = append(s.order, name)
	s.bools[name] = v
}

// countDrawer tallies draw calls per primitive kind, in order.
type countDrawer struct {
	calls []string
}

func (d *countDrawer) add(kind string) { d.calls = append(d.calls, kind) }

func (d *countDrawer) DrawPlane()                       { d.add("plane") }
func (d *countDrawer) DrawBox()                         { d.add("box") }
func (d *countDrawer) DrawCylinder(t, b, s bool)        { d.add("cylinder") }
func (d *countDrawer) DrawTaperedCylinder(t, b, s bool) { d.add("tapered") }
func (d *countDrawer) DrawSphere()                      { d.add("sphere") }
func (d *countDrawer) DrawTorus()                       { d.add("torus") }

func (d *countDrawer) count(kind string) int {
	n := 0
	for _, c := range d.calls {
		if c == kind {
			n++
		}
	}
	return n
}

// cullSpy substitutes the GL culling state vars for one test.
type cullSpy struct {
	enabled bool
	sets    []bool
}

func installCullSpy(t *testing.T, initiallyEnabled bool) *cullSpy {
	t.Helper()
	spy := &cullSpy{enabled: initiallyEnabled}

	origEnabled, origSet := cullingEnabled, setCulling
	cullingEnabled = func() bool { return spy.enabled }
	setCulling = func(on bool) {
		spy.enabled = on
		spy.sets = append(spy.sets, on)
	}
	t.Cleanup(func() {
		cullingEnabled, setCulling = origEnabled, origSet
	})
	return spy
}

func newTestComposer() (*Composer, *recordSink, *countDrawer) {
	sink := newRecordSink()
	drawer := &countDrawer{}
	c := NewComposer(sink, drawer, texture.NewRegistry())
	defineMaterials(c.materials)
	c.bonsai = BuildBonsai(bonsaiAnchor())
	return c, sink, drawer
}

func TestRenderDrawScript(t *testing.T) {
	installCullSpy(t, true)
	c, sink, drawer := newTestComposer()

	c.Render()

	// draw calls per primitive kind for the full script, background through napkins
	wantCounts := map[string]int{
		"plane":    1,
		"box":      38,
		"cylinder": 42,
		"tapered":  4,
		"sphere":   29,
		"torus":    1,
	}
	for kind, want := range wantCounts {
		if got := drawer.count(kind); got != want {
			t.Errorf("%s draws: got %d, want %d", kind, got, want)
		}
	}

	// lighting applies before the first draw
	if !sink.bools["bUseLighting"] {
		t.Error("bUseLighting must be on for the pass")
	}
	if len(sink.order) == 0 || sink.order[0] != "bUseLighting" {
		t.Errorf("first uniform write: got %q, want bUseLighting", sink.order[0])
	}

	// the background draws first, the napkins last
	if drawer.calls[0] != "box" {
		t.Errorf("first draw: got %s, want box (back wall)", drawer.calls[0])
	}
	if last := drawer.calls[len(drawer.calls)-1]; last != "box" {
		t.Errorf("last draw: got %s, want box (napkin)", last)
	}
}

func TestRenderRestoresCulling(t *testing.T) {
	spy := installCullSpy(t, true)
	c, _, _ := newTestComposer()

	c.Render()

	if len(spy.sets) < 2 {
		t.Fatalf("expected disable then restore, got %v", spy.sets)
	}
	if spy.sets[0] != false {
		t.Error("culling must be disabled at the start of the pass")
	}
	if !spy.enabled {
		t.Error("culling must be restored after the pass")
	}
}

func TestRenderLeavesCullingDisabled(t *testing.T) {
	spy := installCullSpy(t, false)
	c, _, _ := newTestComposer()

	c.Render()

	if spy.enabled {
		t.Error("culling was off before the pass and must stay off")
	}
}

// panicDrawer blows up on the first draw call to exercise the unwind path.
type panicDrawer struct{ countDrawer }

func (d *panicDrawer) DrawBox() { panic("lost context") }

func TestCullingRestoredOnPanic(t *testing.T) {
	spy := installCullSpy(t, true)
	sink := newRecordSink()
	c := NewComposer(sink, &panicDrawer{}, texture.NewRegistry())
	defineMaterials(c.materials)

	func() {
		defer func() { _ = recover() }()
		c.Render()
	}()

	if !spy.enabled {
		t.Error("culling must be restored even when the pass panics")
	}
}

func TestPrepareDefinesScene(t *testing.T) {
	installCullSpy(t, false)
	sink := newRecordSink()
	reg := texture.NewRegistry()
	c := NewComposer(sink, &countDrawer{}, reg)

	// empty dir: every texture load fails and is skipped
	c.Prepare(t.TempDir())

	if got := c.materials.Count(); got != 17 {
		t.Errorf("materials defined: got %d, want 17", got)
	}
	if reg.Count() != 0 {
		t.Errorf("no textures should register from an empty dir, got %d", reg.Count())
	}
	if len(c.bonsai.Foliage) == 0 {
		t.Error("Prepare must derive the bonsai")
	}

	// rendering still works fully untextured
	c.Render()
}

func TestSetTextureMissLeavesState(t *testing.T) {
	c, sink, _ := newTestComposer()

	c.setColor(1, 0, 0, 1)
	writes := len(sink.order)

	c.setTexture("missing")
	if len(sink.order) != writes {
		t.Error("a texture miss must not write any uniforms")
	}
	if sink.bools["bUseTexture"] {
		t.Error("flat-color mode must survive a texture miss")
	}
}

func TestSetColorDisablesTexture(t *testing.T) {
	c, sink, _ := newTestComposer()

	c.setColor(0.5, 0.4, 0.3, 1)

	if sink.bools["bUseTexture"] {
		t.Error("setColor must switch off texture mode")
	}
	if got := sink.vec4s["objectColor"]; got != [4]float32{0.5, 0.4, 0.3, 1} {
		t.Errorf("objectColor: got %v", got)
	}
}
