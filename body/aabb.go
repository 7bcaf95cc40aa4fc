package body

import "github.com/go-gl/mathgl/mgl64"

// AABB3 is an axis-aligned bounding box in 3D.
type AABB3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint reports whether point lies within the box, inclusive.
func (a AABB3) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps reports whether a and other intersect on every axis.
func (a AABB3) Overlaps(other AABB3) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Union returns the smallest AABB3 enclosing both a and other.
func (a AABB3) Union(other AABB3) AABB3 {
	return AABB3{
		Min: mgl64.Vec3{min(a.Min.X(), other.Min.X()), min(a.Min.Y(), other.Min.Y()), min(a.Min.Z(), other.Min.Z())},
		Max: mgl64.Vec3{max(a.Max.X(), other.Max.X()), max(a.Max.Y(), other.Max.Y()), max(a.Max.Z(), other.Max.Z())},
	}
}

// SurfaceArea returns the surface area of the box, used by the DBVT's
// surface-area heuristic.
func (a AABB3) SurfaceArea() float64 {
	d := a.Max.Sub(a.Min)
	return 2 * (d.X()*d.Y() + d.Y()*d.Z() + d.Z()*d.X())
}

// Expand returns a with margin added on every side (a "fat" AABB).
func (a AABB3) Expand(margin float64) AABB3 {
	m := mgl64.Vec3{margin, margin, margin}
	return AABB3{Min: a.Min.Sub(m), Max: a.Max.Add(m)}
}

// Contains reports whether other is fully enclosed by a.
func (a AABB3) Contains(other AABB3) bool {
	return a.Min.X() <= other.Min.X() && a.Min.Y() <= other.Min.Y() && a.Min.Z() <= other.Min.Z() &&
		a.Max.X() >= other.Max.X() && a.Max.Y() >= other.Max.Y() && a.Max.Z() >= other.Max.Z()
}

// TransformBy returns the world AABB of a local-space AABB after
// applying pose. Rotation is handled conservatively: every corner of
// the local box is rotated and the result re-enclosed.
func (a AABB3) TransformBy(pose Pose3) AABB3 {
	corners := [8]mgl64.Vec3{
		{a.Min.X(), a.Min.Y(), a.Min.Z()}, {a.Max.X(), a.Min.Y(), a.Min.Z()},
		{a.Min.X(), a.Max.Y(), a.Min.Z()}, {a.Max.X(), a.Max.Y(), a.Min.Z()},
		{a.Min.X(), a.Min.Y(), a.Max.Z()}, {a.Max.X(), a.Min.Y(), a.Max.Z()},
		{a.Min.X(), a.Max.Y(), a.Max.Z()}, {a.Max.X(), a.Max.Y(), a.Max.Z()},
	}

	world := pose.Rotation.Rotate(corners[0]).Add(pose.Position)
	result := AABB3{Min: world, Max: world}
	for _, c := range corners[1:] {
		w := pose.Rotation.Rotate(c).Add(pose.Position)
		result.Min = mgl64.Vec3{min(result.Min.X(), w.X()), min(result.Min.Y(), w.Y()), min(result.Min.Z(), w.Z())}
		result.Max = mgl64.Vec3{max(result.Max.X(), w.X()), max(result.Max.Y(), w.Y()), max(result.Max.Z(), w.Z())}
	}
	return result
}

// ZeroAABB3 is the degenerate bound used for disabled/empty shapes.
var ZeroAABB3 = AABB3{}

// AABB2 is an axis-aligned bounding box in 2D.
type AABB2 struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

func (a AABB2) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

func (a AABB2) Overlaps(other AABB2) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}

func (a AABB2) Union(other AABB2) AABB2 {
	return AABB2{
		Min: mgl64.Vec2{min(a.Min.X(), other.Min.X()), min(a.Min.Y(), other.Min.Y())},
		Max: mgl64.Vec2{max(a.Max.X(), other.Max.X()), max(a.Max.Y(), other.Max.Y())},
	}
}

func (a AABB2) SurfaceArea() float64 {
	d := a.Max.Sub(a.Min)
	// "surface area" in 2D is the perimeter, the natural SAH proxy for a rectangle tree.
	return 2 * (d.X() + d.Y())
}

func (a AABB2) Expand(margin float64) AABB2 {
	m := mgl64.Vec2{margin, margin}
	return AABB2{Min: a.Min.Sub(m), Max: a.Max.Add(m)}
}

func (a AABB2) Contains(other AABB2) bool {
	return a.Min.X() <= other.Min.X() && a.Min.Y() <= other.Min.Y() &&
		a.Max.X() >= other.Max.X() && a.Max.Y() >= other.Max.Y()
}

func (a AABB2) TransformBy(pose Pose2) AABB2 {
	corners := [4]mgl64.Vec2{
		{a.Min.X(), a.Min.Y()}, {a.Max.X(), a.Min.Y()},
		{a.Min.X(), a.Max.Y()}, {a.Max.X(), a.Max.Y()},
	}

	world := pose.Rotate(corners[0]).Add(pose.Position)
	result := AABB2{Min: world, Max: world}
	for _, c := range corners[1:] {
		w := pose.Rotate(c).Add(pose.Position)
		result.Min = mgl64.Vec2{min(result.Min.X(), w.X()), min(result.Min.Y(), w.Y())}
		result.Max = mgl64.Vec2{max(result.Max.X(), w.X()), max(result.Max.Y(), w.Y())}
	}
	return result
}

var ZeroAABB2 = AABB2{}
