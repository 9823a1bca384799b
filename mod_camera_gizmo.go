package camgizmo

import (
	"fmt"

	"github.com/gekko3d/camgizmo/rig"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	cameraNear = 0.1
	cameraFar  = 1000

	cameraGizmoOwner = "camera gizmo"
)

// CameraGizmoModule spawns the orientation gizmo and the two cameras, and
// schedules pan mode handling, the camera coordinator, the viewport
// compositor and render view extraction.
//
// Install panics on an invalid config, like any other build-time error.
// Installing it a second time is a no-op.
type CameraGizmoModule struct {
	// Config falls back to DefaultConfig when nil.
	Config *Config
}

// CameraEntities are the entities CameraGizmoModule spawned.
type CameraEntities struct {
	Gizmo     EntityId
	Main      EntityId
	GizmoRoot EntityId
}

func (m CameraGizmoModule) Install(app *App, cmd *Commands) {
	cfg := DefaultConfig()
	if m.Config != nil {
		cfg = *m.Config
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("camera gizmo: %v", err))
	}
	settings, err := cfg.ControlSettings()
	if err != nil {
		panic(fmt.Sprintf("camera gizmo: %v", err))
	}

	if !claimCameras(app, cameraGizmoOwner) {
		return
	}

	if Resource[Time](app) == nil {
		TimeModule{}.Install(app, cmd)
	}
	InputModule{}.Install(app, cmd)
	WindowModule{}.Install(app, cmd)
	AssetServerModule{}.Install(app, cmd)

	cmd.AddResources(&settings, &PanModeState{}, &RenderViews{})

	entities, err := spawnCameraGizmo(cmd, Resource[AssetServer](app), cfg, settings)
	if err != nil {
		panic(fmt.Sprintf("camera gizmo: %v", err))
	}
	cmd.AddResources(&entities)
	app.Logger().Debugf("spawned gizmo camera %v, main camera %v", entities.Gizmo, entities.Main)

	// A toggle must reach the coordinator in the same frame.
	app.UseSystem(System(panModeSystem).InStage(Update))
	app.UseSystem(System(cameraCoordinatorSystem).InStage(Update))
	app.UseSystem(System(viewportCompositorSystem).InStage(PostUpdate))
	HierarchyModule{}.Install(app, cmd)
	app.UseSystem(System(renderViewSystem).InStage(PreRender))
}

func spawnCameraGizmo(cmd *Commands, server *AssetServer, cfg Config, settings ControlSettings) (CameraEntities, error) {
	gizmoRig, err := rig.Builder().
		With(
			rig.NewPosition(settings.GizmoPivot),
			rig.NewYawPitch(),
			rig.NewSmoothing(cfg.Gizmo.RotationSmoothness),
			rig.NewArm(vec3(cfg.Gizmo.ArmOffset)),
		).
		Build()
	if err != nil {
		return CameraEntities{}, fmt.Errorf("gizmo rig: %w", err)
	}

	mainRig, err := rig.Builder().
		With(
			rig.NewPosition(vec3(cfg.Main.Position)),
			rig.NewRotation(mgl32.QuatIdent()),
			rig.NewArm(vec3(cfg.Main.ArmOffset)),
		).
		Build()
	if err != nil {
		return CameraEntities{}, fmt.Errorf("main rig: %w", err)
	}

	root, err := SpawnGizmo(cmd, server, settings.GizmoPivot)
	if err != nil {
		return CameraEntities{}, fmt.Errorf("gizmo: %w", err)
	}

	width, height := uint32(cfg.Window.Width), uint32(cfg.Window.Height)

	gizmo := cmd.AddEntity(
		GizmoCamera{},
		CameraComponent{
			Projection: Projection{FovYDegrees: cfg.Gizmo.FovYDegrees, Near: cameraNear, Far: cameraFar},
			Viewport:   GizmoViewport(width, height),
			Clear:      ClearNone,
			Priority:   1,
			Layers:     GizmoLayer,
		},
		NewTransform(gizmoRig.Final.Position, gizmoRig.Final.Rotation),
		RigComponent{Rig: gizmoRig},
	)

	main := cmd.AddEntity(
		MainCamera{},
		CameraComponent{
			Projection: Projection{FovYDegrees: cfg.Main.FovYDegrees, Near: cameraNear, Far: cameraFar},
			Viewport:   MainViewport(width, height),
			Clear:      ClearDefault,
			Priority:   0,
			Layers:     SceneLayer,
		},
		NewTransform(mainRig.Final.Position, mainRig.Final.Rotation),
		RigComponent{Rig: mainRig},
	)

	cmd.Logger().Debugf("gizmo rig drivers %v, main rig drivers %v", gizmoRig.Kinds(), mainRig.Kinds())
	return CameraEntities{Gizmo: gizmo, Main: main, GizmoRoot: root}, nil
}
