// Package epa implements the Expanding Polytope Algorithm for 3D and
// 2D, used to recover a contact manifold (normal, penetration depth,
// contact point) once GJK has proven two convex shapes overlap.
package epa

import (
	"errors"
	"math"

	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/config"
	"github.com/akmonengine/rigidcore/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

// MinFaceDistance is a numerical floor, not a tunable: faces thinner
// than this are treated as touching rather than iterated on.
const MinFaceDistance = 0.0001

// ErrDegenerateSimplex is returned when the GJK simplex handed to EPA
// has too few points to expand: fewer than 4 in 3D (Run3) or fewer
// than 3 in 2D (Run2). The point count is the only check; a flat
// tetrahedron is not rejected.
var ErrDegenerateSimplex = errors.New("epa: degenerate simplex")

// face3 is one triangular face of the expanding polytope. Unlike the
// teacher's Face (which stores plain Vec3 vertices), each vertex here
// is a full gjk.SupportPoint3 so the closest face's witnesses can be
// barycentrically interpolated into a single contact point once EPA
// converges.
type face3 struct {
	Points   [3]gjk.SupportPoint3
	Normal   mgl64.Vec3
	Distance float64
}

func makeFace3(p0, p1, p2, opposite gjk.SupportPoint3) face3 {
	var f face3
	f.Points = [3]gjk.SupportPoint3{p0, p1, p2}

	edge1 := p1.V.Sub(p0.V)
	edge2 := p2.V.Sub(p0.V)
	normal := edge1.Cross(edge2)

	length := normal.Len()
	if length < 1e-8 {
		f.Normal = mgl64.Vec3{0, 1, 0}
		f.Distance = MinFaceDistance
		return f
	}
	normal = normal.Mul(1 / length)

	toOpposite := opposite.V.Sub(p0.V)
	if normal.Dot(toOpposite) > 0 {
		normal = normal.Mul(-1)
	}

	distance := p0.V.Dot(normal)
	if distance < 0 {
		normal = normal.Mul(-1)
		distance = -distance
	}
	if distance < MinFaceDistance {
		distance = MinFaceDistance
	}

	f.Normal = snapNormalToAxis(normal)
	f.Distance = distance
	return f
}

// snapNormalToAxis zeroes components that are already near zero, so a
// face aligned with an axis reports an exact axis normal instead of a
// value off by float error.
func snapNormalToAxis(n mgl64.Vec3) mgl64.Vec3 {
	const eps = 1e-8
	if math.Abs(n.X()) < eps {
		n[0] = 0
	}
	if math.Abs(n.Y()) < eps {
		n[1] = 0
	}
	if math.Abs(n.Z()) < eps {
		n[2] = 0
	}
	if l := n.Len(); l > 1e-12 {
		return n.Mul(1 / l)
	}
	return n
}

type edgeKey3 struct{ a, b mgl64.Vec3 }

func normalizedEdge3(a, b mgl64.Vec3) edgeKey3 {
	if compareVec3(a, b) > 0 {
		a, b = b, a
	}
	return edgeKey3{a, b}
}

func compareVec3(a, b mgl64.Vec3) int {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Result3 is the contact manifold EPA recovers from a converged
// polytope.
type Result3 struct {
	Normal           mgl64.Vec3
	PenetrationDepth float64
	Point            mgl64.Vec3
}

// Run3 expands simplex (a GJK tetrahedron enclosing the origin) until
// the closest polytope face converges to the true Minkowski-surface
// distance, then barycentrically interpolates that face's SupA
// witnesses at the closest point to recover a single contact point.
// This single-point recovery is deliberately simpler than the
// teacher's separate Sutherland-Hodgman manifold-clipping pass.
// cfg.EPAMaxIterations and cfg.EPATolerance bound convergence.
func Run3(simplex *gjk.Simplex3, primA body.Primitive3, poseA body.Pose3, primB body.Primitive3, poseB body.Pose3, cfg config.Config) (Result3, error) {
	if simplex.Count != 4 {
		return Result3{}, ErrDegenerateSimplex
	}

	p := simplex.Points
	faces := make([]face3, 0, 8)
	candidates := [4]face3{
		makeFace3(p[0], p[1], p[2], p[3]),
		makeFace3(p[0], p[2], p[3], p[1]),
		makeFace3(p[0], p[3], p[1], p[2]),
		makeFace3(p[1], p[3], p[2], p[0]),
	}
	for _, f := range candidates {
		if f.Distance >= MinFaceDistance {
			faces = append(faces, f)
		}
	}
	if len(faces) < 3 {
		faces = candidates[:]
	}

	var closest face3
	for iter := 0; iter < cfg.EPAMaxIterations; iter++ {
		closestIdx := 0
		for i := 1; i < len(faces); i++ {
			if faces[i].Distance < faces[closestIdx].Distance {
				closestIdx = i
			}
		}
		closest = faces[closestIdx]

		support := gjk.MinkowskiSupport3(primA, poseA, primB, poseB, closest.Normal)
		distAlongNormal := support.V.Dot(closest.Normal)

		if distAlongNormal-closest.Distance < cfg.EPATolerance {
			break
		}

		expandPolytope3(&faces, support, closestIdx)
	}

	point := barycentricPoint3(closest)
	return Result3{
		Normal:           closest.Normal,
		PenetrationDepth: closest.Distance,
		Point:            point,
	}, nil
}

func expandPolytope3(faces *[]face3, support gjk.SupportPoint3, closestIdx int) {
	visible := make([]int, 0, 4)
	for i, f := range *faces {
		if support.V.Sub(f.Points[0].V).Dot(f.Normal) > 0 {
			visible = append(visible, i)
		}
	}
	if len(visible) >= len(*faces) {
		visible = visible[:0]
		visible = append(visible, closestIdx)
	}

	edgeCount := make(map[edgeKey3]int)
	edgeVerts := make(map[edgeKey3][2]gjk.SupportPoint3)
	for _, idx := range visible {
		f := (*faces)[idx]
		pairs := [3][2]gjk.SupportPoint3{
			{f.Points[0], f.Points[1]},
			{f.Points[1], f.Points[2]},
			{f.Points[2], f.Points[0]},
		}
		for _, pr := range pairs {
			k := normalizedEdge3(pr[0].V, pr[1].V)
			edgeCount[k]++
			edgeVerts[k] = pr
		}
	}

	centroid := centroid3(*faces)

	visibleSet := make(map[int]bool, len(visible))
	for _, idx := range visible {
		visibleSet[idx] = true
	}
	kept := (*faces)[:0]
	for i, f := range *faces {
		if !visibleSet[i] {
			kept = append(kept, f)
		}
	}
	*faces = kept

	for k, count := range edgeCount {
		if count != 1 {
			continue
		}
		pr := edgeVerts[k]
		*faces = append(*faces, makeFace3(pr[0], pr[1], support, centroidSupport3(centroid)))
	}
}

func centroid3(faces []face3) mgl64.Vec3 {
	seen := make(map[[3]float64]bool)
	sum := mgl64.Vec3{}
	count := 0
	for _, f := range faces {
		for _, p := range f.Points {
			key := [3]float64{p.V.X(), p.V.Y(), p.V.Z()}
			if seen[key] {
				continue
			}
			seen[key] = true
			sum = sum.Add(p.V)
			count++
		}
	}
	if count == 0 {
		return mgl64.Vec3{}
	}
	return sum.Mul(1 / float64(count))
}

func centroidSupport3(v mgl64.Vec3) gjk.SupportPoint3 {
	return gjk.SupportPoint3{SupA: v, SupB: v, V: v}
}

// barycentricPoint3 recovers a single contact point by projecting the
// origin onto the closest face's plane, expressing it in barycentric
// coordinates over the face's three vertices, and applying those same
// weights to the vertices' SupA witnesses (the point on shape A that
// produced the Minkowski vertex).
func barycentricPoint3(f face3) mgl64.Vec3 {
	originOnPlane := f.Normal.Mul(f.Distance)

	a, b, c := f.Points[0].V, f.Points[1].V, f.Points[2].V
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := originOnPlane.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if math.Abs(denom) < 1e-12 {
		return f.Points[0].SupA
	}

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w

	// Clamp to the triangle: a negative barycentric weight means the
	// projection landed outside the face, fall back to the nearest
	// vertex's witness rather than extrapolating.
	if u < 0 || v < 0 || w < 0 {
		best, bestDist := 0, math.Inf(1)
		for i, p := range f.Points {
			d := p.V.Sub(originOnPlane).LenSqr()
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		return f.Points[best].SupA
	}

	return f.Points[0].SupA.Mul(u).Add(f.Points[1].SupA.Mul(v)).Add(f.Points[2].SupA.Mul(w))
}
