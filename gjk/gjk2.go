package gjk

import (
	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/config"
	"github.com/go-gl/mathgl/mgl64"
)

// SupportPoint2 is the 2D counterpart of SupportPoint3.
type SupportPoint2 struct {
	SupA, SupB mgl64.Vec2
	V          mgl64.Vec2
}

// Simplex2 holds 1-3 points of a 2D Minkowski difference (a line, then
// a triangle — there is no tetrahedron case in 2D).
type Simplex2 struct {
	Points [3]SupportPoint2
	Count  int
}

func SupportWorld2(prim body.Primitive2, pose body.Pose2, direction mgl64.Vec2) mgl64.Vec2 {
	local := pose.InverseTransformVector(direction)
	return pose.TransformPoint(prim.Support(local))
}

func MinkowskiSupport2(primA body.Primitive2, poseA body.Pose2, primB body.Primitive2, poseB body.Pose2, direction mgl64.Vec2) SupportPoint2 {
	supA := SupportWorld2(primA, poseA, direction)
	supB := SupportWorld2(primB, poseB, direction.Mul(-1))
	return SupportPoint2{SupA: supA, SupB: supB, V: supA.Sub(supB)}
}

// cross2 is the 2D scalar "cross product" x1*y2 - y1*x2.
func cross2(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// tripleCross2 computes (a x b) x c in 2D: c rotated a quarter turn and
// scaled by the scalar a x b, so the result is perpendicular to c. It
// is used the same way the 3D code uses ab.Cross(ao).Cross(ab) to get
// a direction perpendicular to an edge pointing toward a third point.
func tripleCross2(a, b, c mgl64.Vec2) mgl64.Vec2 {
	z := cross2(a, b)
	return mgl64.Vec2{-z * c.Y(), z * c.X()}
}

// Overlap2 is the 2D counterpart of Overlap3: line then triangle
// simplex reduction, since a 2D simplex enclosing the origin never
// needs a 4th point. cfg.GJKMaxIterations bounds the reduction loop.
func Overlap2(primA body.Primitive2, poseA body.Pose2, primB body.Primitive2, poseB body.Pose2, simplex *Simplex2, cfg config.Config) bool {
	direction := poseB.Position.Sub(poseA.Position)
	if direction.LenSqr() < 1e-8 {
		direction = mgl64.Vec2{1, 0}
	}

	simplex.Points[0] = MinkowskiSupport2(primA, poseA, primB, poseB, direction)
	simplex.Count = 1

	direction = simplex.Points[0].V.Mul(-1)
	if direction.LenSqr() < 1e-16 {
		return true
	}

	for i := 0; i < cfg.GJKMaxIterations; i++ {
		newPoint := MinkowskiSupport2(primA, poseA, primB, poseB, direction)

		if newPoint.V.Dot(direction) <= 0 {
			return false
		}

		simplex.Points[simplex.Count] = newPoint
		simplex.Count++

		if containsOrigin2(simplex, &direction) {
			return true
		}
	}

	return false
}

func containsOrigin2(simplex *Simplex2, direction *mgl64.Vec2) bool {
	switch simplex.Count {
	case 2:
		return line2(simplex, direction)
	case 3:
		return triangle2(simplex, direction)
	}
	return false
}

func line2(simplex *Simplex2, direction *mgl64.Vec2) bool {
	a := simplex.Points[1]
	b := simplex.Points[0]
	ab := b.V.Sub(a.V)
	ao := a.V.Mul(-1)

	if ab.LenSqr() < 1e-8 {
		if ao.LenSqr() < 1e-8 {
			return true
		}
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	if ab.Dot(ao) <= 0 {
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	perp := tripleCross2(ab, ao, ab)
	if perp.LenSqr() < 1e-8 {
		return true
	}

	*direction = perp
	return false
}

// triangle2 tests whether the origin lies inside the 2D simplex
// triangle. Unlike the 3D case a triangle CAN enclose the origin here
// (2D has no 4th point), so this returns true in that region.
func triangle2(simplex *Simplex2, direction *mgl64.Vec2) bool {
	a := simplex.Points[2]
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.V.Sub(a.V)
	ac := c.V.Sub(a.V)
	ao := a.V.Mul(-1)

	abPerp := tripleCross2(ac, ab, ab)
	if abPerp.Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = tripleCross2(ab, ao, ab)
		return false
	}

	acPerp := tripleCross2(ab, ac, ac)
	if acPerp.Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = tripleCross2(ac, ao, ac)
		return false
	}

	return true
}

// TimeOfImpact2 is the 2D counterpart of TimeOfImpact3.
func TimeOfImpact2(primA body.Primitive2, poseA body.Pose2, primB body.Primitive2, poseB body.Pose2, relVel mgl64.Vec2, dt float64, cfg config.Config) (float64, bool) {
	advance := func(t float64) body.Pose2 {
		p := poseA
		p.Position = poseA.Position.Add(relVel.Mul(t))
		return p
	}

	var simplex Simplex2
	if Overlap2(primA, advance(0), primB, poseB, &simplex, cfg) {
		return 0, true
	}

	lo, hi := 0.0, dt
	hit := false
	for i := 0; i < cfg.TOIMaxIterations && hi-lo > cfg.TOITolerance; i++ {
		mid := (lo + hi) / 2
		if Overlap2(primA, advance(mid), primB, poseB, &simplex, cfg) {
			hi = mid
			hit = true
		} else {
			lo = mid
		}
	}
	if !hit && !Overlap2(primA, advance(dt), primB, poseB, &simplex, cfg) {
		return dt, false
	}
	return hi, true
}
