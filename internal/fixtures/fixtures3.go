// Package fixtures provides concrete convex primitives implementing
// body.Primitive3/body.Primitive2, adapted from the original source's
// primitive2d/primitive3d support-function traits (Sphere, Cuboid,
// Plane in 3D; Circle, Rectangle in 2D) and from the teacher's own
// shape support-function style. These exist to exercise and test the
// core; an embedder is free to supply its own primitives instead.
package fixtures

import (
	"github.com/akmonengine/rigidcore/body"
	"github.com/go-gl/mathgl/mgl64"
)

// Sphere is a convex primitive centered on its local origin.
type Sphere struct {
	Radius float64
}

func (s Sphere) Support(direction mgl64.Vec3) mgl64.Vec3 {
	if direction.LenSqr() < 1e-16 {
		return mgl64.Vec3{}
	}
	return direction.Normalize().Mul(s.Radius)
}

func (s Sphere) LocalAABB() body.AABB3 {
	r := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	return body.AABB3{Min: r.Mul(-1), Max: r}
}

// Box is a convex primitive centered on its local origin, axis-aligned
// to its own local frame.
type Box struct {
	HalfExtents mgl64.Vec3
}

func (b Box) Support(direction mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		signExtent(direction.X(), b.HalfExtents.X()),
		signExtent(direction.Y(), b.HalfExtents.Y()),
		signExtent(direction.Z(), b.HalfExtents.Z()),
	}
}

func (b Box) LocalAABB() body.AABB3 {
	return body.AABB3{Min: b.HalfExtents.Mul(-1), Max: b.HalfExtents}
}

func signExtent(component, halfExtent float64) float64 {
	if component < 0 {
		return -halfExtent
	}
	return halfExtent
}

// Plane is an infinite half-space boundary. Its support function is
// degenerate (any point on the plane is a valid support in a
// direction parallel to it) so Plane should only be used with EPA
// disabled (Strategy == body.CollisionOnly) or paired through a large
// finite Box standing in for a floor slab.
type Plane struct {
	Normal mgl64.Vec3
	Extent float64
}

func (p Plane) Support(direction mgl64.Vec3) mgl64.Vec3 {
	tangent := direction.Sub(p.Normal.Mul(direction.Dot(p.Normal)))
	if tangent.LenSqr() < 1e-16 {
		return mgl64.Vec3{}
	}
	return tangent.Normalize().Mul(p.Extent)
}

func (p Plane) LocalAABB() body.AABB3 {
	e := mgl64.Vec3{p.Extent, p.Extent, p.Extent}
	return body.AABB3{Min: e.Mul(-1), Max: e}
}

// Particle is a single point, useful for the GJK/EPA edge case of a
// degenerate zero-volume primitive.
type Particle struct{}

func (Particle) Support(mgl64.Vec3) mgl64.Vec3 { return mgl64.Vec3{} }
func (Particle) LocalAABB() body.AABB3         { return body.AABB3{} }
