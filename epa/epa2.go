package epa

import (
	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/config"
	"github.com/akmonengine/rigidcore/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

// Result2 is the 2D counterpart of Result3.
type Result2 struct {
	Normal           mgl64.Vec2
	PenetrationDepth float64
	Point            mgl64.Vec2
}

// tripleCross2 computes (a x b) x c in 2D, mirroring gjk's internal
// helper of the same purpose (perpendicular-within-plane direction).
func tripleCross2(a, b, c mgl64.Vec2) mgl64.Vec2 {
	z := a.X()*b.Y() - a.Y()*b.X()
	return mgl64.Vec2{-z * c.Y(), z * c.X()}
}

type edge2 struct {
	normal   mgl64.Vec2
	distance float64
	index    int
}

// closestEdge2 walks the simplex polygon's edges and returns the one
// closest to the origin, with an outward normal and the distance from
// the origin to that edge's line. Faithful port of original_source's
// closest_edge, which needs at least 3 simplex points (2D has no
// tetrahedron expansion stage, only this polygon-edge walk).
func closestEdge2(simplex []gjk.SupportPoint2) (edge2, bool) {
	if len(simplex) < 3 {
		return edge2{}, false
	}

	best := edge2{distance: mgl64InfDist}
	for i := range simplex {
		j := i + 1
		if j == len(simplex) {
			j = 0
		}
		a := simplex[i].V
		b := simplex[j].V
		e := b.Sub(a)
		n := tripleCross2(e, a, e)
		if l := n.Len(); l > 1e-12 {
			n = n.Mul(1 / l)
		}
		d := n.Dot(a)
		if d < best.distance {
			best = edge2{normal: n, distance: d, index: j}
		}
	}
	return best, true
}

const mgl64InfDist = 1e300

// point2 recovers the contact point by projecting the origin onto the
// closest edge and interpolating the edge endpoints' sup_a witnesses,
// faithfully following original_source's point() including its
// t-outside-[0,1] fallback to a vertex witness.
func point2(simplex []gjk.SupportPoint2, e edge2) mgl64.Vec2 {
	b := simplex[e.index]
	var a gjk.SupportPoint2
	if e.index == 0 {
		a = simplex[len(simplex)-1]
	} else {
		a = simplex[e.index-1]
	}

	oa := a.V.Mul(-1)
	ab := b.V.Sub(a.V)
	denom := ab.Dot(ab)
	if denom < 1e-12 {
		return a.SupA
	}
	t := oa.Dot(ab) / denom

	switch {
	case t < 0:
		return a.SupA
	case t > 1:
		return b.SupA
	default:
		return a.SupA.Add(b.SupA.Sub(a.SupA).Mul(t))
	}
}

// Run2 expands a 2D simplex polygon (at least a triangle) toward the
// Minkowski surface, inserting a new support point at the closest
// edge each iteration until it converges or cfg.EPAMaxIterations is
// reached.
func Run2(simplex []gjk.SupportPoint2, primA body.Primitive2, poseA body.Pose2, primB body.Primitive2, poseB body.Pose2, cfg config.Config) (Result2, error) {
	if _, ok := closestEdge2(simplex); !ok {
		return Result2{}, ErrDegenerateSimplex
	}

	for iter := 0; iter < cfg.EPAMaxIterations; iter++ {
		e, _ := closestEdge2(simplex)
		p := gjk.MinkowskiSupport2(primA, poseA, primB, poseB, e.normal)
		d := p.V.Dot(e.normal)

		if d-e.distance < cfg.EPATolerance {
			return Result2{Normal: e.normal, PenetrationDepth: e.distance, Point: point2(simplex, e)}, nil
		}

		simplex = insertAt2(simplex, e.index, p)
	}

	e, _ := closestEdge2(simplex)
	return Result2{Normal: e.normal, PenetrationDepth: e.distance, Point: point2(simplex, e)}, nil
}

func insertAt2(simplex []gjk.SupportPoint2, index int, p gjk.SupportPoint2) []gjk.SupportPoint2 {
	simplex = append(simplex, gjk.SupportPoint2{})
	copy(simplex[index+1:], simplex[index:])
	simplex[index] = p
	return simplex
}
