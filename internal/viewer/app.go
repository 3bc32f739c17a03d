package viewer

import (
	"time"

	"curve-viewer/internal/camera"
	"curve-viewer/internal/config"
	"curve-viewer/internal/graphics/renderables/curve"
	renderer "curve-viewer/internal/graphics/renderer"
	"curve-viewer/internal/input"
	"curve-viewer/internal/logging"
	"curve-viewer/internal/profiling"
	"curve-viewer/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// App runs the frame loop for one composed scene.
// The loop is single threaded: input callbacks and camera changes happen
// between traversals, never during one.
type App struct {
	window *glfw.Window
	input  *input.InputManager

	camera *camera.Camera
	orbit  *camera.Orbit

	scene    *scene.Scene
	sync     *scene.Synchronizer
	renderer *renderer.Renderer

	fpsLimiter    *FPSLimiter
	showProfiling bool
	frames        int
	lastFPSCheck  time.Time
}

// NewApp wires a window to a scene. The GL context must be current.
func NewApp(window *glfw.Window, s *config.Settings, sc *scene.Scene) *App {
	width, height := window.GetFramebufferSize()

	cam := camera.New(width, height)
	cam.FOV = s.Camera.FOV
	cam.NearPlane = s.Camera.Near
	cam.FarPlane = s.Camera.Far

	orbit := camera.NewOrbit()
	center, radius := sc.Bound()
	orbit.SetHome(center, radius, cam.FOV)
	orbit.Apply(cam)

	rs := make([]renderer.Renderable, 0, len(sc.Units()))
	for _, u := range sc.Units() {
		rs = append(rs, curve.New(u))
	}
	r := renderer.NewRenderer(sc, rs...)
	r.SetViewport(width, height)

	config.SetFPSLimit(s.Window.FPSLimit)

	a := &App{
		window:       window,
		input:        input.NewInputManager(),
		camera:       cam,
		orbit:        orbit,
		scene:        sc,
		sync:         scene.NewSynchronizer(cam),
		renderer:     r,
		fpsLimiter:   NewFPSLimiter(),
		lastFPSCheck: time.Now(),
	}
	a.setupCallbacks()
	return a
}

func (a *App) setupCallbacks() {
	a.input.SetCallbacks(a.window)

	a.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if a.input.IsActive(input.ActionRotate) {
			a.orbit.HandleMouseMovement(xpos, ypos)
		} else {
			a.orbit.FirstMouse = true
		}
	})

	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.camera.SetViewport(width, height)
		a.renderer.SetViewport(width, height)
	})
}

// Run loops until the window is closed.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()

	glfw.PollEvents()
	a.handleInput()
	a.orbit.Apply(a.camera)

	func() {
		defer profiling.Track("scene.Traverse")()
		a.scene.Traverse(a.sync)
	}()
	a.renderer.Render()

	a.window.SwapBuffers()
	a.input.PostUpdate()
	a.countFrame()

	a.fpsLimiter.Wait()
}

func (a *App) handleInput() {
	if a.input.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.input.JustPressed(input.ActionHome) {
		a.orbit.Home()
	}
	if a.input.JustPressed(input.ActionToggleProfiling) {
		a.showProfiling = !a.showProfiling
	}
	zoom := a.input.ConsumeScroll()
	if a.input.JustPressed(input.ActionZoomIn) {
		zoom++
	}
	if a.input.JustPressed(input.ActionZoomOut) {
		zoom--
	}
	if zoom != 0 {
		a.orbit.Zoom(zoom)
	}
}

func (a *App) countFrame() {
	a.frames++
	elapsed := time.Since(a.lastFPSCheck)
	if elapsed < time.Second {
		return
	}
	fps := int(float64(a.frames)/elapsed.Seconds() + 0.5)
	if a.showProfiling {
		logging.Logger().Info("frame", "fps", fps, "top", profiling.TopN(3))
	} else {
		logging.Logger().Debug("frame", "fps", fps)
	}
	a.frames = 0
	a.lastFPSCheck = time.Now()
}

// Dispose releases GL resources. The GL context must still be current.
func (a *App) Dispose() {
	a.renderer.Dispose()
}
