package camgizmo

import (
	"fmt"
)

// Viewport is the framebuffer sub-rectangle a camera renders into.
type Viewport struct {
	PhysicalPosition [2]uint32
	PhysicalSize     [2]uint32
	Depth            [2]float32
}

func (v Viewport) String() string {
	return fmt.Sprintf("pos=(%d,%d) size=(%d,%d)",
		v.PhysicalPosition[0], v.PhysicalPosition[1], v.PhysicalSize[0], v.PhysicalSize[1])
}

// GizmoViewport places the gizmo at the top of the window, starting at 5/6 of
// its width, one fifth wide and one quarter high. The right edge ends at
// 31/30 of the width, so renderers that reject out-of-bounds viewports have
// to clip it.
func GizmoViewport(width, height uint32) Viewport {
	return Viewport{
		PhysicalPosition: [2]uint32{width/2 + width/3, 0},
		PhysicalSize:     [2]uint32{width / 5, height / 4},
		Depth:            [2]float32{0, 1},
	}
}

// MainViewport covers the whole framebuffer.
func MainViewport(width, height uint32) Viewport {
	return Viewport{
		PhysicalSize: [2]uint32{width, height},
		Depth:        [2]float32{0, 1},
	}
}

// latestPrimaryResize returns the last primary-window resize with a non-zero
// area. Minimized windows report 0x0 and are skipped.
func latestPrimaryResize(events *Events[WindowResized]) (WindowResized, bool) {
	var latest WindowResized
	found := false
	for ev := range events.Read() {
		if ev.Window != PrimaryWindow || ev.Width == 0 || ev.Height == 0 {
			continue
		}
		latest = ev
		found = true
	}
	return latest, found
}

func viewportCompositorSystem(cmd *Commands, resized *Events[WindowResized]) error {
	ev, ok := latestPrimaryResize(resized)
	if !ok {
		return nil
	}

	gizmo, err := findCamera[GizmoCamera](cmd, RoleGizmo)
	if err != nil {
		return err
	}
	main, err := findCamera[MainCamera](cmd, RoleMain)
	if err != nil {
		return err
	}

	gizmo.camera.Viewport = GizmoViewport(ev.Width, ev.Height)
	main.camera.Viewport = MainViewport(ev.Width, ev.Height)

	cmd.Logger().Debugf("window resized to %dx%d, gizmo viewport %v", ev.Width, ev.Height, gizmo.camera.Viewport)
	return nil
}
