package camgizmo

import (
	"github.com/gekko3d/camgizmo/rig"
	"github.com/go-gl/mathgl/mgl32"
)

// TransformComponent is an entity's world pose.
type TransformComponent struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform(position mgl32.Vec3, rotation mgl32.Quat) TransformComponent {
	return TransformComponent{
		Position: position,
		Rotation: rotation,
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

type Projection struct {
	FovYDegrees float32
	Near        float32
	Far         float32
}

// Matrix builds a perspective projection for the given viewport. A zero-area
// viewport falls back to a square aspect ratio.
func (p Projection) Matrix(vp Viewport) mgl32.Mat4 {
	aspect := float32(1)
	if vp.PhysicalSize[0] > 0 && vp.PhysicalSize[1] > 0 {
		aspect = float32(vp.PhysicalSize[0]) / float32(vp.PhysicalSize[1])
	}
	return mgl32.Perspective(mgl32.DegToRad(p.FovYDegrees), aspect, p.Near, p.Far)
}

type ClearBehavior int

const (
	ClearDefault ClearBehavior = iota
	ClearNone
)

// RenderLayers is a bitmask; a camera draws entities sharing at least one layer.
type RenderLayers uint32

const (
	SceneLayer RenderLayers = 1 << 0
	GizmoLayer RenderLayers = 1 << 1
)

func (l RenderLayers) Intersects(other RenderLayers) bool {
	return l&other != 0
}

type CameraComponent struct {
	Projection Projection
	Viewport   Viewport
	Clear      ClearBehavior
	// Cameras draw in ascending priority order.
	Priority int
	Layers   RenderLayers
}

// GizmoCamera tags the camera that renders the orientation gizmo.
type GizmoCamera struct{}

// MainCamera tags the scene camera.
type MainCamera struct{}

// RigComponent gives an entity exclusive ownership of a camera rig.
type RigComponent struct {
	Rig *rig.Rig
}

// CameraRole names which camera tag an entity carries.
type CameraRole int

const (
	RoleMain CameraRole = iota
	RoleGizmo
)

func (r CameraRole) String() string {
	if r == RoleGizmo {
		return "GizmoCamera"
	}
	return "MainCamera"
}
