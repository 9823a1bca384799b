// Package platform backs the camgizmo input and window surfaces with GLFW.
package platform

import (
	"fmt"
	"runtime"

	"github.com/gekko3d/camgizmo"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the GLFW window resource. Callbacks feed the frame's event
// channels while glfw.PollEvents runs.
type Window struct {
	windowGlfw *glfw.Window
	id         camgizmo.WindowId
	title      string

	motion  *camgizmo.Events[camgizmo.MouseMotion]
	resized *camgizmo.Events[camgizmo.WindowResized]

	cursorX, cursorY float64
	hasCursor        bool
	captured         bool
}

// WindowModule creates the primary window and polls it in PreUpdate.
// Install is idempotent: an existing Window resource is reused.
type WindowModule struct {
	Width  int
	Height int
	Title  string
}

// NewWindowModule fills in defaults for zero values.
func NewWindowModule(width, height int, title string) WindowModule {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "camgizmo"
	}
	return WindowModule{Width: width, Height: height, Title: title}
}

func (m WindowModule) Install(app *camgizmo.App, cmd *camgizmo.Commands) {
	if camgizmo.Resource[Window](app) != nil {
		return
	}

	camgizmo.InputModule{}.Install(app, cmd)
	camgizmo.WindowModule{}.Install(app, cmd)

	w, err := createWindow(m.Width, m.Height, m.Title,
		camgizmo.Resource[camgizmo.Events[camgizmo.MouseMotion]](app),
		camgizmo.Resource[camgizmo.Events[camgizmo.WindowResized]](app),
	)
	if err != nil {
		panic(err)
	}
	cmd.AddResources(w)
	app.Logger().Infof("opened window %q", m.Title)

	app.UseSystem(
		camgizmo.System(pollSystem).
			InStage(camgizmo.PreUpdate),
	)
}

func createWindow(width, height int, title string,
	motion *camgizmo.Events[camgizmo.MouseMotion],
	resized *camgizmo.Events[camgizmo.WindowResized],
) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// Rendering is done by an external backend, not OpenGL.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw create window: %w", err)
	}

	w := &Window{
		windowGlfw: win,
		id:         camgizmo.PrimaryWindow,
		title:      title,
		motion:     motion,
		resized:    resized,
	}

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.sendResize(width, height)
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.cursorMoved(x, y)
	})

	// Viewports are laid out from the first resize, so report the initial size.
	w.sendResize(win.GetFramebufferSize())

	return w, nil
}

func (w *Window) sendResize(width, height int) {
	if width < 0 || height < 0 {
		return
	}
	w.resized.Send(camgizmo.WindowResized{
		Window: w.id,
		Width:  uint32(width),
		Height: uint32(height),
	})
}

func (w *Window) cursorMoved(x, y float64) {
	if w.hasCursor {
		w.motion.Send(camgizmo.MouseMotion{Delta: [2]float32{float32(x - w.cursorX), float32(y - w.cursorY)}})
	}
	w.cursorX, w.cursorY = x, y
	w.hasCursor = true
}

func (w *Window) setCaptured(captured bool) {
	if captured == w.captured {
		return
	}
	w.captured = captured
	// Switching cursor modes warps the cursor; drop the jump.
	w.hasCursor = false
	if captured {
		w.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (w *Window) Close() {
	w.windowGlfw.Destroy()
	glfw.Terminate()
}

func pollSystem(cmd *camgizmo.Commands, w *Window, input *camgizmo.Input) {
	input.BeginFrame()

	glfw.PollEvents()

	for _, b := range keyBindings {
		input.SetKey(b.key, w.windowGlfw.GetKey(b.glfw) == glfw.Press)
	}

	w.setCaptured(input.MouseCaptured)

	if w.windowGlfw.ShouldClose() {
		cmd.Logger().Infof("window %q closed", w.title)
		cmd.Exit()
	}
}
