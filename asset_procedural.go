package camgizmo

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CreateConeMesh builds a cone along +Y centered on the origin: the base ring
// sits at -height/2 and the apex at +height/2.
func (server *AssetServer) CreateConeMesh(radius, height float32, subdivisions int) (Mesh, error) {
	if subdivisions < 3 {
		return Mesh{}, fmt.Errorf("cone needs at least 3 subdivisions, got %d", subdivisions)
	}
	// apex + ring + base center must fit uint16 indices
	if subdivisions+2 > math.MaxUint16 {
		return Mesh{}, fmt.Errorf("cone subdivisions %d exceed index range", subdivisions)
	}

	half := height / 2
	positions := make([]mgl32.Vec3, 0, subdivisions+2)
	positions = append(positions, mgl32.Vec3{0, half, 0})
	for i := 0; i < subdivisions; i++ {
		angle := 2 * math.Pi * float64(i) / float64(subdivisions)
		positions = append(positions, mgl32.Vec3{
			radius * float32(math.Cos(angle)),
			-half,
			radius * float32(math.Sin(angle)),
		})
	}
	positions = append(positions, mgl32.Vec3{0, -half, 0})

	apex := uint16(0)
	center := uint16(subdivisions + 1)
	indices := make([]uint16, 0, subdivisions*6)
	for i := 0; i < subdivisions; i++ {
		curr := uint16(1 + i)
		next := uint16(1 + (i+1)%subdivisions)
		// side faces wind counter-clockwise seen from outside
		indices = append(indices, apex, next, curr)
		indices = append(indices, center, curr, next)
	}

	return server.AddMesh(MeshAsset{Positions: positions, Indices: indices})
}
