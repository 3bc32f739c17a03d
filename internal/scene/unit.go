package scene

import (
	"curve-viewer/internal/shader"

	"github.com/go-gl/mathgl/mgl32"
)

// Topology is the primitive type a unit is drawn with
type Topology int

const (
	// TopologyPolygon draws one filled convex outline.
	TopologyPolygon Topology = iota
	// TopologyLinesAdjacency consumes four vertices per segment.
	TopologyLinesAdjacency
)

func (t Topology) String() string {
	if t == TopologyLinesAdjacency {
		return "lines_adjacency"
	}
	return "polygon"
}

// Geometry holds index-parallel vertex positions and colors.
type Geometry struct {
	Topology  Topology
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec4
}

// Count is the number of vertices drawn.
func (g *Geometry) Count() int {
	return len(g.Positions)
}

// Unit is one renderable curve: geometry plus the state it is drawn with.
// It owns its geometry and uniforms; the scene only references it.
type Unit struct {
	Variant  Variant
	Geometry *Geometry
	State    *StateSet
	// Transform is the unit's local transform, identity unless moved.
	Transform mgl32.Mat4
}

// Program is shorthand for the unit's shader program.
func (u *Unit) Program() *shader.Program {
	return u.State.Program
}
