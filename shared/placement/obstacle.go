package placement

import (
	"fmt"

	"github.com/automoto/parkour-gen/rng"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform places something in the world: a position and a heading about
// the vertical axis.
type Transform struct {
	Position r3.Vec
	Yaw      float64
}

// ObstacleKind names the supporting geometry the host should instantiate.
type ObstacleKind int

const (
	WallRun ObstacleKind = iota
	MantleWall
	MantleBlock
	Vault
	MantlePoint
	Building
)

var obstacleNames = [...]string{
	WallRun:     "WallRun",
	MantleWall:  "MantleWall",
	MantleBlock: "MantleBlock",
	Vault:       "Vault",
	MantlePoint: "MantlePoint",
	Building:    "Building",
}

func (k ObstacleKind) String() string {
	if k < 0 || int(k) >= len(obstacleNames) {
		return fmt.Sprintf("ObstacleKind(%d)", int(k))
	}
	return obstacleNames[k]
}

// Obstacle is a piece of supporting geometry: wall-run slabs, mantle walls
// and blocks, vault bars and background buildings. Size is the full extent in
// the obstacle's own frame.
type Obstacle struct {
	Kind      ObstacleKind
	Transform Transform
	Size      r3.Vec
	Material  string `json:",omitempty"`
}

// MeshChoice is the host asset picked for a platform.
type MeshChoice struct {
	Mesh     string
	Material string `json:",omitempty"`
}

// Registry lists the assets the host can instantiate.
type Registry struct {
	PlatformMeshes   []string
	StartMaterial    string
	FinishMaterial   string
	ObstacleMaterial string
}

// Pick chooses a mesh for the platform at index out of total. The first
// platform carries the start material and the last the finish material.
func (r Registry) Pick(src rng.Source, index, total int) MeshChoice {
	var mc MeshChoice
	if i := rng.Pick(src, len(r.PlatformMeshes)); i >= 0 {
		mc.Mesh = r.PlatformMeshes[i]
	}
	switch {
	case index == 0:
		mc.Material = r.StartMaterial
	case index == total-1:
		mc.Material = r.FinishMaterial
	}
	return mc
}

// Handle is whatever the host returns for a spawned platform.
type Handle any

// Spawner is the host's creation capability. The generators never call it
// directly; a finished plan is applied through it.
type Spawner interface {
	SpawnPlatform(t Transform, scale r3.Vec, mesh MeshChoice) Handle
	SpawnObstacle(kind ObstacleKind, t Transform, scale r3.Vec, material string)
}
