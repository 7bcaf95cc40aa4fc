package fixtures

import (
	"github.com/akmonengine/rigidcore/body"
	"github.com/go-gl/mathgl/mgl64"
)

// Circle is the 2D counterpart of Sphere.
type Circle struct {
	Radius float64
}

func (c Circle) Support(direction mgl64.Vec2) mgl64.Vec2 {
	if direction.LenSqr() < 1e-16 {
		return mgl64.Vec2{}
	}
	return direction.Normalize().Mul(c.Radius)
}

func (c Circle) LocalAABB() body.AABB2 {
	r := mgl64.Vec2{c.Radius, c.Radius}
	return body.AABB2{Min: r.Mul(-1), Max: r}
}

// Rectangle is the 2D counterpart of Box, adapted from the original
// source's epa2d.rs test fixture of the same name.
type Rectangle struct {
	HalfExtents mgl64.Vec2
}

func (r Rectangle) Support(direction mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		signExtent(direction.X(), r.HalfExtents.X()),
		signExtent(direction.Y(), r.HalfExtents.Y()),
	}
}

func (r Rectangle) LocalAABB() body.AABB2 {
	return body.AABB2{Min: r.HalfExtents.Mul(-1), Max: r.HalfExtents}
}

// Particle2 is the 2D counterpart of Particle.
type Particle2 struct{}

func (Particle2) Support(mgl64.Vec2) mgl64.Vec2 { return mgl64.Vec2{} }
func (Particle2) LocalAABB() body.AABB2         { return body.AABB2{} }
