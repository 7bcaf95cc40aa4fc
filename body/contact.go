package body

import "github.com/go-gl/mathgl/mgl64"

// Contact3 is the manifold data produced by the 3D narrow phase. For
// Strategy == CollisionOnly, Normal/PenetrationDepth/Point are
// unspecified and must not be read.
type Contact3 struct {
	Strategy         Strategy
	Normal           mgl64.Vec3
	PenetrationDepth float64
	Point            mgl64.Vec3
}

// Contact2 is the 2D counterpart of Contact3.
type Contact2 struct {
	Strategy         Strategy
	Normal           mgl64.Vec2
	PenetrationDepth float64
	Point            mgl64.Vec2
}
