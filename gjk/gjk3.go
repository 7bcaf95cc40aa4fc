// Package gjk implements the Gilbert-Johnson-Keerthi algorithm (overlap
// test) and a time-of-impact bisection built on top of it, for both 2D
// and 3D convex primitives.
//
// GJK detects whether two convex shapes overlap by testing if their
// Minkowski difference contains the origin. The algorithm builds a
// simplex incrementally, converging toward the origin in typically
// 3-6 iterations.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the
//     Distance Between Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/config"
	"github.com/go-gl/mathgl/mgl64"
)

// SupportPoint3 is one vertex of a Minkowski-difference simplex. SupA
// and SupB are the witness points on each shape whose difference
// produced V; EPA needs them to recover a contact point on the
// surviving feature, which is why this tracks more than the teacher's
// Simplex (which keeps only V).
type SupportPoint3 struct {
	SupA, SupB mgl64.Vec3
	V          mgl64.Vec3
}

// Simplex3 holds 1-4 points of the Minkowski difference, most recent
// last, same convention as the teacher's Simplex.
type Simplex3 struct {
	Points [4]SupportPoint3
	Count  int
}

// SupportWorld3 returns prim's support point in world space: the
// primitive is queried in its local frame (direction rotated into that
// frame) and the result transformed back out.
func SupportWorld3(prim body.Primitive3, pose body.Pose3, direction mgl64.Vec3) mgl64.Vec3 {
	local := pose.InverseTransformVector(direction)
	return pose.TransformPoint(prim.Support(local))
}

// MinkowskiSupport3 computes a support point of (A - B) along
// direction, keeping both witnesses.
func MinkowskiSupport3(primA body.Primitive3, poseA body.Pose3, primB body.Primitive3, poseB body.Pose3, direction mgl64.Vec3) SupportPoint3 {
	supA := SupportWorld3(primA, poseA, direction)
	supB := SupportWorld3(primB, poseB, direction.Mul(-1))
	return SupportPoint3{SupA: supA, SupB: supB, V: supA.Sub(supB)}
}

// Overlap3 runs GJK between two convex primitives in world space.
// simplex is modified in place and, on a true result, holds the
// tetrahedron enclosing the origin that EPA uses as its starting
// polytope. cfg.GJKMaxIterations bounds the simplex-reduction loop.
func Overlap3(primA body.Primitive3, poseA body.Pose3, primB body.Primitive3, poseB body.Pose3, simplex *Simplex3, cfg config.Config) bool {
	direction := poseB.Position.Sub(poseA.Position)
	if direction.LenSqr() < 1e-8 {
		direction = mgl64.Vec3{1, 0, 0}
	}

	simplex.Points[0] = MinkowskiSupport3(primA, poseA, primB, poseB, direction)
	simplex.Count = 1

	direction = simplex.Points[0].V.Mul(-1)
	if direction.LenSqr() < 1e-16 {
		return true
	}

	for i := 0; i < cfg.GJKMaxIterations; i++ {
		newPoint := MinkowskiSupport3(primA, poseA, primB, poseB, direction)

		if newPoint.V.Dot(direction) <= 0 {
			return false
		}

		simplex.Points[simplex.Count] = newPoint
		simplex.Count++

		if containsOrigin3(simplex, &direction) {
			return true
		}
	}

	return false
}

func containsOrigin3(simplex *Simplex3, direction *mgl64.Vec3) bool {
	switch simplex.Count {
	case 2:
		return line3(simplex, direction)
	case 3:
		return triangle3(simplex, direction)
	case 4:
		return tetrahedron3(simplex, direction)
	}
	return false
}

func line3(simplex *Simplex3, direction *mgl64.Vec3) bool {
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

	abPerp := ab.Cross(ao).Cross(ab)
	if abPerp.LenSqr() < 1e-8 {
		return true
	}

	*direction = abPerp
	return false
}

func triangle3(simplex *Simplex3, direction *mgl64.Vec3) bool {
	a := simplex.Points[2]
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.V.Sub(a.V)
	ac := c.V.Sub(a.V)
	ao := a.V.Mul(-1)

	abc := ab.Cross(ac)

	if abc.LenSqr() < 1e-10 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		return line3(simplex, direction)
	}

	abPerp := ab.Cross(abc)
	if abPerp.Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = ab.Cross(ao).Cross(ab)
		return false
	}

	acPerp := abc.Cross(ac)
	if acPerp.Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = ac.Cross(ao).Cross(ac)
		return false
	}

	if abc.Dot(ao) > 0 {
		*direction = abc
	} else {
		simplex.Points[0] = a
		simplex.Points[1] = c
		simplex.Points[2] = b
		simplex.Count = 3
		*direction = abc.Mul(-1)
	}

	return false
}

func tetrahedron3(simplex *Simplex3, direction *mgl64.Vec3) bool {
	a := simplex.Points[3]
	b := simplex.Points[2]
	c := simplex.Points[1]
	d := simplex.Points[0]

	ab := b.V.Sub(a.V)
	ac := c.V.Sub(a.V)
	ad := d.V.Sub(a.V)
	ao := a.V.Mul(-1)

	abc := ab.Cross(ac)
	if abc.Dot(ad) > 0 {
		abc = abc.Mul(-1)
	}

	acd := ac.Cross(ad)
	if acd.Dot(ab) > 0 {
		acd = acd.Mul(-1)
	}

	adb := ad.Cross(ab)
	if adb.Dot(ac) > 0 {
		adb = adb.Mul(-1)
	}

	if abc.LenSqr() < 1e-10 || acd.LenSqr() < 1e-10 || adb.LenSqr() < 1e-10 {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle3(simplex, direction)
	}

	if abc.Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle3(simplex, direction)
	}

	if acd.Dot(ao) > 0 {
		simplex.Points[0] = d
		simplex.Points[1] = c
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle3(simplex, direction)
	}

	if adb.Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = d
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle3(simplex, direction)
	}

	return true
}

// TimeOfImpact3 bisects [0, dt] to find the first time at which primA
// (moving along relative velocity relVel) touches primB, per spec
// §4.2.1. poseA/poseB are the poses at t=0. Each step keeps the
// earlier half when its midpoint overlaps and the later half
// otherwise; it returns (toi, true) with the earliest overlapping time
// reached, or (dt, false) when neither a sampled midpoint nor the pose
// at dt overlaps. A contact window lying wholly between sampled
// midpoints is not found. cfg.TOIMaxIterations and cfg.TOITolerance
// bound the bisection.
func TimeOfImpact3(primA body.Primitive3, poseA body.Pose3, primB body.Primitive3, poseB body.Pose3, relVel mgl64.Vec3, dt float64, cfg config.Config) (float64, bool) {
	advance := func(t float64) body.Pose3 {
		p := poseA
		p.Position = poseA.Position.Add(relVel.Mul(t))
		return p
	}

	var simplex Simplex3
	if Overlap3(primA, advance(0), primB, poseB, &simplex, cfg) {
		return 0, true
	}

	lo, hi := 0.0, dt
	hit := false
	for i := 0; i < cfg.TOIMaxIterations && hi-lo > cfg.TOITolerance; i++ {
		mid := (lo + hi) / 2
		if Overlap3(primA, advance(mid), primB, poseB, &simplex, cfg) {
			hi = mid
			hit = true
		} else {
			lo = mid
		}
	}
	if !hit && !Overlap3(primA, advance(dt), primB, poseB, &simplex, cfg) {
		return dt, false
	}
	return hi, true
}
