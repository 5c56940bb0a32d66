// Package input handles SDL2 input events and per-frame key state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// State tracks held keys across frames plus the deltas accumulated since
// the last Poll. Held keys drive continuous camera movement; Pressed
// reports one-shot edges for mode toggles.
type State struct {
	quit    bool
	held    map[sdl.Scancode]bool
	pressed map[sdl.Scancode]bool

	mouseDX float32
	mouseDY float32
	wheel   float32

	resized       bool
	width, height int
}

// New creates an input state tracker.
func New() *State {
	return &State{
		held:    make(map[sdl.Scancode]bool),
		pressed: make(map[sdl.Scancode]bool),
	}
}

// Poll drains pending SDL events. Returns true when the app should quit.
func (s *State) Poll() bool {
	s.pressed = make(map[sdl.Scancode]bool)
	s.mouseDX, s.mouseDY = 0, 0
	s.wheel = 0
	s.resized = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				s.resized = true
				s.width = int(e.Data1)
				s.height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if !s.held[e.Keysym.Scancode] {
					s.pressed[e.Keysym.Scancode] = true
				}
				s.held[e.Keysym.Scancode] = true
			} else if e.Type == sdl.KEYUP {
				s.held[e.Keysym.Scancode] = false
			}

		case *sdl.MouseMotionEvent:
			s.mouseDX += float32(e.XRel)
			s.mouseDY -= float32(e.YRel) // screen Y grows downward

		case *sdl.MouseWheelEvent:
			s.wheel += float32(e.Y)
		}
	}

	return s.quit
}

// Held reports whether a key is currently down.
func (s *State) Held(key sdl.Scancode) bool {
	return s.held[key]
}

// Pressed reports whether a key went down since the last Poll.
func (s *State) Pressed(key sdl.Scancode) bool {
	return s.pressed[key]
}

// MouseDelta returns the relative mouse motion since the last Poll, with
// Y positive upward.
func (s *State) MouseDelta() (float32, float32) {
	return s.mouseDX, s.mouseDY
}

// Wheel returns the scroll amount since the last Poll.
func (s *State) Wheel() float32 {
	return s.wheel
}

// Resized reports a window resize since the last Poll and the new size.
func (s *State) Resized() (bool, int, int) {
	return s.resized, s.width, s.height
}
