package camgizmo

import (
	"cmp"
	"slices"

	"github.com/gekko3d/camgizmo/rig"
	"github.com/go-gl/mathgl/mgl32"
)

// RenderView is what an external renderer needs to draw one camera.
type RenderView struct {
	Camera     EntityId
	Position   mgl32.Vec3
	Rotation   mgl32.Quat
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Viewport   Viewport
	Clear      ClearBehavior
	Priority   int
	// Drawables lists the entities on this camera's layers.
	Drawables []Drawable
}

type Drawable struct {
	Entity    EntityId
	Mesh      AssetId
	Material  AssetId
	Transform TransformComponent
}

// RenderViews is rebuilt every frame, ordered by ascending camera priority.
type RenderViews struct {
	Views []RenderView
}

func renderViewSystem(cmd *Commands, out *RenderViews) {
	type layered struct {
		drawable Drawable
		layers   RenderLayers
	}
	var drawables []layered
	MakeQuery4[Mesh, Material, TransformComponent, RenderLayersComponent](cmd).Map(
		func(eid EntityId, mesh *Mesh, mat *Material, tr *TransformComponent, rl *RenderLayersComponent) bool {
			layers := SceneLayer
			if rl != nil {
				layers = rl.Layers
			}
			drawables = append(drawables, layered{
				drawable: Drawable{Entity: eid, Mesh: mesh.AssetId, Material: mat.AssetId, Transform: *tr},
				layers:   layers,
			})
			return true
		}, RenderLayersComponent{})

	out.Views = out.Views[:0]
	MakeQuery2[CameraComponent, TransformComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, tr *TransformComponent) bool {
		view := RenderView{
			Camera:     eid,
			Position:   tr.Position,
			Rotation:   tr.Rotation,
			View:       rig.Transform{Position: tr.Position, Rotation: tr.Rotation}.ViewMatrix(),
			Projection: cam.Projection.Matrix(cam.Viewport),
			Viewport:   cam.Viewport,
			Clear:      cam.Clear,
			Priority:   cam.Priority,
		}
		for _, d := range drawables {
			if cam.Layers.Intersects(d.layers) {
				view.Drawables = append(view.Drawables, d.drawable)
			}
		}
		out.Views = append(out.Views, view)
		return true
	})

	slices.SortFunc(out.Views, func(a, b RenderView) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Camera, b.Camera)
	})
	for i := range out.Views {
		slices.SortFunc(out.Views[i].Drawables, func(a, b Drawable) int {
			return cmp.Compare(a.Entity, b.Entity)
		})
	}
}
