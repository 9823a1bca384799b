package camgizmo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type AssetId string

type AssetServer struct {
	meshes    map[AssetId]MeshAsset
	materials map[AssetId]MaterialAsset
}

type AssetServerModule struct{}

// Mesh references a MeshAsset from an entity.
type Mesh struct {
	AssetId AssetId
}

// Material references a MaterialAsset from an entity.
type Material struct {
	AssetId AssetId
}

type MeshAsset struct {
	Positions []mgl32.Vec3
	Indices   []uint16
}

type MaterialAsset struct {
	BaseColor [4]float32
	Unlit     bool
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes:    make(map[AssetId]MeshAsset),
		materials: make(map[AssetId]MaterialAsset),
	}
}

func (server *AssetServer) AddMesh(mesh MeshAsset) (Mesh, error) {
	if len(mesh.Indices)%3 != 0 {
		return Mesh{}, fmt.Errorf("mesh index count %d is not a multiple of 3", len(mesh.Indices))
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Positions) {
			return Mesh{}, fmt.Errorf("mesh index %d out of range (%d vertices)", idx, len(mesh.Positions))
		}
	}

	id := makeAssetId()
	server.meshes[id] = mesh
	return Mesh{AssetId: id}, nil
}

func (server *AssetServer) AddMaterial(material MaterialAsset) Material {
	id := makeAssetId()
	server.materials[id] = material
	return Material{AssetId: id}
}

func (server *AssetServer) Mesh(id AssetId) (MeshAsset, bool) {
	m, ok := server.meshes[id]
	return m, ok
}

func (server *AssetServer) Material(id AssetId) (MaterialAsset, bool) {
	m, ok := server.materials[id]
	return m, ok
}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	if Resource[AssetServer](app) != nil {
		return
	}
	cmd.AddResources(NewAssetServer())
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
