package body

import "github.com/go-gl/mathgl/mgl64"

// Primitive3 is the capability the core requires from any concrete 3D
// shape it is asked to collide. The core never inspects geometry
// beyond these two methods.
type Primitive3 interface {
	// Support returns the point on the primitive, in its own local
	// frame, that is furthest along direction.
	Support(direction mgl64.Vec3) mgl64.Vec3
	// LocalAABB returns the primitive's bounding box in its own local
	// frame.
	LocalAABB() AABB3
}

// Primitive2 is the 2D counterpart of Primitive3.
type Primitive2 interface {
	Support(direction mgl64.Vec2) mgl64.Vec2
	LocalAABB() AABB2
}

// Strategy selects how a NarrowPhase treats a CollisionShape.
type Strategy int

const (
	// FullResolution shapes produce a complete contact manifold
	// (normal, depth, point) usable by the resolver.
	FullResolution Strategy = iota
	// CollisionOnly shapes only report overlap; manifold fields on
	// the resulting Contact are unspecified and must not be read.
	CollisionOnly
)
