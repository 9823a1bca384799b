package camgizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	gizmoConeHeight       = 0.3
	gizmoConeRadius       = 0.1
	gizmoConeSubdivisions = 32
	gizmoConeOffset       = 0.3
)

// GizmoRoot tags the parent entity of the gizmo cones.
type GizmoRoot struct{}

// GizmoAxis tags a cone with the axis direction it marks.
type GizmoAxis struct {
	Direction mgl32.Vec3
}

// RenderLayersComponent puts a drawable on one or more render layers.
type RenderLayersComponent struct {
	Layers RenderLayers
}

type gizmoCone struct {
	direction mgl32.Vec3
	color     [4]float32
	rotation  mgl32.Quat
}

// Cones are built along +Y and rotated onto their axis. Negative axes use a
// lighter shade of the positive axis color.
var gizmoCones = []gizmoCone{
	{mgl32.Vec3{1, 0, 0}, [4]float32{1.0, 0.0, 0.0, 0.5}, mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1})},
	{mgl32.Vec3{-1, 0, 0}, [4]float32{1.0, 0.4, 0.4, 0.5}, mgl32.QuatRotate(-math.Pi/2, mgl32.Vec3{0, 0, 1})},
	{mgl32.Vec3{0, 1, 0}, [4]float32{0.0, 1.0, 0.0, 0.5}, mgl32.QuatRotate(math.Pi, mgl32.Vec3{0, 0, 1})},
	{mgl32.Vec3{0, -1, 0}, [4]float32{0.4, 1.0, 0.4, 0.5}, mgl32.QuatIdent()},
	{mgl32.Vec3{0, 0, 1}, [4]float32{0.0, 0.0, 1.0, 0.5}, mgl32.QuatRotate(-math.Pi/2, mgl32.Vec3{1, 0, 0})},
	{mgl32.Vec3{0, 0, -1}, [4]float32{0.4, 0.4, 1.0, 0.5}, mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0})},
}

// SpawnGizmo queues the gizmo root at center and its six cones on the gizmo
// render layer. It returns the root entity.
func SpawnGizmo(cmd *Commands, server *AssetServer, center mgl32.Vec3) (EntityId, error) {
	cone, err := server.CreateConeMesh(gizmoConeRadius, gizmoConeHeight, gizmoConeSubdivisions)
	if err != nil {
		return 0, err
	}

	root := cmd.AddEntity(
		GizmoRoot{},
		NewTransform(center, mgl32.QuatIdent()),
	)

	for _, c := range gizmoCones {
		material := server.AddMaterial(MaterialAsset{BaseColor: c.color, Unlit: true})
		local := LocalTransformComponent(NewTransform(c.direction.Mul(gizmoConeOffset), c.rotation))
		cmd.AddEntity(
			GizmoAxis{Direction: c.direction},
			Parent{Entity: root},
			local,
			TransformComponent{},
			cone,
			material,
			RenderLayersComponent{Layers: GizmoLayer},
		)
	}
	return root, nil
}
