package scene

import (
	"curve-viewer/internal/logging"

	"github.com/go-gl/mathgl/mgl32"
)

// ClearMask selects the buffers cleared before each frame
type ClearMask uint8

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
)

// Scene is the root of the graph. Units are added during setup only; the
// render loop never changes the tree.
type Scene struct {
	ClearColor mgl32.Vec4
	ClearMask  ClearMask
	State      *StateSet
	Transform  mgl32.Mat4

	units []*Unit
}

// Composer builds scene roots with the global render state.
type Composer struct {
	FogColor mgl32.Vec4
}

func NewComposer(fogColor mgl32.Vec4) *Composer {
	return &Composer{FogColor: fogColor}
}

// Compose places units under a new root in the given order, enables depth
// testing and clears color and depth to the fog color.
func (c *Composer) Compose(units ...*Unit) *Scene {
	state := NewStateSet()
	state.SetMode(ModeDepthTest, true)

	s := &Scene{
		ClearColor: c.FogColor,
		ClearMask:  ClearColor | ClearDepth,
		State:      state,
		Transform:  mgl32.Ident4(),
		units:      make([]*Unit, 0, len(units)),
	}
	for _, u := range units {
		s.Add(u)
	}

	logging.Logger().Info("scene composed", "units", len(s.units))
	return s
}

// Add appends a unit. Nil units are ignored.
func (s *Scene) Add(u *Unit) {
	if u == nil {
		return
	}
	s.units = append(s.units, u)
}

// Units returns the children in draw order.
func (s *Scene) Units() []*Unit {
	return s.units[:len(s.units):len(s.units)]
}

// WorldTransform returns the accumulated transform of a child.
func (s *Scene) WorldTransform(u *Unit) mgl32.Mat4 {
	return s.Transform.Mul4(u.Transform)
}

// Traverse visits the root and then every unit in order, recomputing each
// dynamic uniform once against the visited node's world transform.
func (s *Scene) Traverse(sync *Synchronizer) {
	for _, u := range s.State.Uniforms() {
		sync.Update(u, s.Transform)
	}
	for _, unit := range s.units {
		world := s.WorldTransform(unit)
		for _, u := range unit.State.Uniforms() {
			sync.Update(u, world)
		}
	}
}

// Bound returns a sphere enclosing every unit's world-space positions.
func (s *Scene) Bound() (center mgl32.Vec3, radius float32) {
	var (
		lo, hi mgl32.Vec3
		found  bool
	)
	for _, unit := range s.units {
		world := s.WorldTransform(unit)
		for _, p := range unit.Geometry.Positions {
			wp := mgl32.TransformCoordinate(p, world)
			if !found {
				lo, hi, found = wp, wp, true
				continue
			}
			for i := range 3 {
				lo[i] = min(lo[i], wp[i])
				hi[i] = max(hi[i], wp[i])
			}
		}
	}
	if !found {
		return mgl32.Vec3{}, 0
	}
	center = lo.Add(hi).Mul(0.5)
	for _, unit := range s.units {
		world := s.WorldTransform(unit)
		for _, p := range unit.Geometry.Positions {
			radius = max(radius, mgl32.TransformCoordinate(p, world).Sub(center).Len())
		}
	}
	return center, radius
}
