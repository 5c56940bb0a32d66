// Package app wires the window, input, shader, meshes and scene together
// and runs the frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/stillscene/internal/config"
	"github.com/Faultbox/stillscene/internal/engine/input"
	"github.com/Faultbox/stillscene/internal/engine/mesh"
	"github.com/Faultbox/stillscene/internal/engine/scene"
	"github.com/Faultbox/stillscene/internal/engine/shader"
	"github.com/Faultbox/stillscene/internal/engine/texture"
	"github.com/Faultbox/stillscene/internal/engine/view"
	"github.com/Faultbox/stillscene/internal/engine/window"
	"github.com/Faultbox/stillscene/internal/logger"
	"github.com/Faultbox/stillscene/pkg/math"
)

// App is the running viewer instance.
type App struct {
	cfg      *config.Config
	window   *window.Window
	input    *input.State
	manager  *shader.Manager
	meshes   *mesh.Library
	textures *texture.Registry
	composer *scene.Composer
	viewCtx  *view.Context
	running  bool
}

// New creates the window and GL context, compiles the shader, uploads the
// meshes and prepares the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Still Scene",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// GL function pointers need the live context from the window.
	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL ready", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	program, err := shader.CompileProgram(shader.VertexSource, shader.FragmentSource)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("compiling scene shader: %w", err)
	}
	a.manager = shader.NewManager(program)
	a.manager.Use()

	a.meshes = mesh.NewLibrary()
	a.textures = texture.NewRegistry()

	a.composer = scene.NewComposer(a.manager, a.meshes, a.textures)
	a.composer.Prepare(cfg.Scene.TextureDir)

	cam := view.NewCamera(
		vec3(cfg.Camera.Position),
		vec3(cfg.Camera.Front),
		cfg.Camera.FOV,
		cfg.Camera.Speed,
	)
	a.viewCtx = view.NewContext(cam, cfg.Graphics.Width, cfg.Graphics.Height)

	a.input = input.New()
	a.window.CaptureMouse(true)

	gl.Enable(gl.DEPTH_TEST)
	cc := cfg.Scene.ClearColor
	gl.ClearColor(cc[0], cc[1], cc[2], 1)

	return a, nil
}

// Run drives the frame loop until quit or Escape.
func (a *App) Run() error {
	a.running = true
	start := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		a.viewCtx.Tick(time.Since(start).Seconds())

		if a.input.Poll() {
			break
		}
		a.handleInput()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		a.manager.Use()
		a.viewCtx.Apply(a.manager)
		a.composer.Render()

		a.window.SwapBuffers()
	}

	return nil
}

// handleInput maps the per-frame input state onto the camera and the
// projection toggle.
func (a *App) handleInput() {
	if a.input.Pressed(sdl.SCANCODE_ESCAPE) {
		a.running = false
		return
	}

	// O switches to the fixed orthographic framing, P back to perspective.
	// Mouse capture follows the mode since ortho ignores mouse look.
	if a.input.Pressed(sdl.SCANCODE_O) && !a.viewCtx.Orthographic {
		a.viewCtx.Orthographic = true
		a.window.CaptureMouse(false)
	}
	if a.input.Pressed(sdl.SCANCODE_P) && a.viewCtx.Orthographic {
		a.viewCtx.Orthographic = false
		a.window.CaptureMouse(true)
	}

	if ok, w, h := a.input.Resized(); ok {
		a.viewCtx.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
	}

	dx, dy := a.input.MouseDelta()
	a.viewCtx.HandleMouse(dx, dy)

	if wheel := a.input.Wheel(); wheel != 0 {
		a.viewCtx.Camera.AdjustSpeed(wheel)
	}

	var forward, right, up float32
	if a.input.Held(sdl.SCANCODE_W) {
		forward++
	}
	if a.input.Held(sdl.SCANCODE_S) {
		forward--
	}
	if a.input.Held(sdl.SCANCODE_D) {
		right++
	}
	if a.input.Held(sdl.SCANCODE_A) {
		right--
	}
	if a.input.Held(sdl.SCANCODE_E) {
		up++
	}
	if a.input.Held(sdl.SCANCODE_Q) {
		up--
	}
	a.viewCtx.Camera.Move(forward, right, up, a.viewCtx.Delta())
}

// Close releases GPU resources and tears down the window.
func (a *App) Close() {
	logger.Info("shutting down")

	if a.textures != nil {
		a.textures.ReleaseAll()
	}
	if a.meshes != nil {
		a.meshes.Destroy()
	}
	if a.manager != nil {
		a.manager.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
