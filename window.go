package camgizmo

type WindowId uint32

// PrimaryWindow identifies the main application window.
const PrimaryWindow WindowId = 0

// WindowResized reports a window's new framebuffer size in physical pixels.
type WindowResized struct {
	Window WindowId
	Width  uint32
	Height uint32
}

// WindowModule provides the WindowResized channel. Platform modules send to
// it; the viewport compositor reads from it.
type WindowModule struct{}

func (WindowModule) Install(app *App, cmd *Commands) {
	addEventChannel[WindowResized](app)
}
