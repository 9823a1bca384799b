package camgizmo

import (
	"fmt"
)

// CameraOwner marks the module that spawned the gizmo and main cameras. The
// coordinator needs exactly one camera of each role, so only one owner may
// install into an App.
type CameraOwner struct {
	Name string
}

// claimCameras registers name as the camera owner. It reports false when name
// already owns the cameras, and panics when another owner does.
func claimCameras(app *App, name string) bool {
	if app == nil {
		panic("claimCameras: app is nil")
	}
	if owner := Resource[CameraOwner](app); owner != nil {
		if owner.Name != name {
			app.Logger().Errorf("cameras already owned by %s, refusing %s", owner.Name, name)
			panic(fmt.Sprintf("cameras already owned by %s, refusing %s", owner.Name, name))
		}
		return false
	}
	app.addResources(&CameraOwner{Name: name})
	return true
}
