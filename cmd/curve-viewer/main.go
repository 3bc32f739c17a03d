package main

import (
	"log/slog"
	"os"
	"runtime"
	"sync"

	"curve-viewer/internal/config"
	"curve-viewer/internal/logging"
	"curve-viewer/internal/scene"
	"curve-viewer/internal/shader"
	"curve-viewer/internal/viewer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	settings, err := config.Default()
	if err != nil {
		panic(err)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}

	window, err := setupWindow(settings.Window)
	if err != nil {
		panic(err)
	}
	if err := gl.Init(); err != nil {
		panic(err)
	}
	logging.Logger().Info("window created",
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
		"width", settings.Window.Width, "height", settings.Window.Height)

	sc, err := scene.ComposeFromSettings(settings, shader.FSLoader{FS: os.DirFS(".")})
	if err != nil {
		panic(err)
	}

	app := viewer.NewApp(window, settings, sc)

	// An interrupt asks the loop to stop and waits for GL teardown, which has
	// to happen on this thread.
	var (
		mu         sync.Mutex
		terminated bool
		done       = make(chan struct{})
	)
	closer.Bind(func() {
		mu.Lock()
		if !terminated {
			window.SetShouldClose(true)
		}
		mu.Unlock()
		<-done
	})

	app.Run()

	app.Dispose()
	mu.Lock()
	glfw.Terminate()
	terminated = true
	mu.Unlock()
	close(done)

	closer.Close()
}

func setupWindow(w config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, w.Samples)

	window, err := glfw.CreateWindow(w.Width, w.Height, w.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.SetPos(w.X, w.Y)
	window.MakeContextCurrent()

	glfw.SwapInterval(1)

	return window, nil
}
