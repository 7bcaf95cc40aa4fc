package epa

import (
	"math"
	"testing"

	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/config"
	"github.com/akmonengine/rigidcore/gjk"
	"github.com/akmonengine/rigidcore/internal/fixtures"
	"github.com/go-gl/mathgl/mgl64"
)

func poseAt2(x, y float64) body.Pose2 {
	p := body.IdentityPose2()
	p.Position = mgl64.Vec2{x, y}
	return p
}

func TestRun2_OverlappingRectanglesAlongX(t *testing.T) {
	a, poseA := fixtures.Rectangle{HalfExtents: mgl64.Vec2{1, 1}}, body.IdentityPose2()
	b, poseB := fixtures.Rectangle{HalfExtents: mgl64.Vec2{1, 1}}, poseAt2(1.5, 0)

	var simplex gjk.Simplex2
	if !gjk.Overlap2(a, poseA, b, poseB, &simplex, config.Default()) {
		t.Fatalf("expected rectangles to overlap")
	}

	result, err := Run2(simplex.Points[:simplex.Count], a, poseA, b, poseB, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const expectedDepth = 0.5
	if math.Abs(result.PenetrationDepth-expectedDepth) > 1e-3 {
		t.Errorf("expected penetration depth ~%v, got %v", expectedDepth, result.PenetrationDepth)
	}
	if math.Abs(math.Abs(result.Normal.X())-1) > 1e-3 {
		t.Errorf("expected normal along X axis, got %v", result.Normal)
	}
}

// TestRun2_LiteralOverlappingRectangles reproduces epa2d.rs's S3
// scenario verbatim: two 10x10 rectangles centered at (15,0) and
// (7,2) overlap by 2 units along -X.
func TestRun2_LiteralOverlappingRectangles(t *testing.T) {
	a := fixtures.Rectangle{HalfExtents: mgl64.Vec2{5, 5}}
	poseA := poseAt2(15, 0)
	b := fixtures.Rectangle{HalfExtents: mgl64.Vec2{5, 5}}
	poseB := poseAt2(7, 2)

	var simplex gjk.Simplex2
	if !gjk.Overlap2(a, poseA, b, poseB, &simplex, config.Default()) {
		t.Fatalf("expected rectangles to overlap")
	}

	result, err := Run2(simplex.Points[:simplex.Count], a, poseA, b, poseB, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const expectedDepth = 2
	if math.Abs(result.PenetrationDepth-expectedDepth) > 1e-3 {
		t.Errorf("expected penetration depth %v, got %v", expectedDepth, result.PenetrationDepth)
	}
	if math.Abs(result.Normal.X()+1) > 1e-3 || math.Abs(result.Normal.Y()) > 1e-3 {
		t.Errorf("expected normal (-1, 0), got %v", result.Normal)
	}
}

// TestClosestEdge2_LiteralSimplex reproduces epa2d.rs's S6 scenario:
// the closest edge of simplex {(10,10), (-10,5), (2,-5)} is edge 2,
// at distance ≈2.5607374 with outward normal ≈(-0.6401844, -0.7682213).
func TestClosestEdge2_LiteralSimplex(t *testing.T) {
	simplex := []gjk.SupportPoint2{
		{V: mgl64.Vec2{10, 10}},
		{V: mgl64.Vec2{-10, 5}},
		{V: mgl64.Vec2{2, -5}},
	}

	e, ok := closestEdge2(simplex)
	if !ok {
		t.Fatalf("expected a closest edge")
	}
	if e.index != 2 {
		t.Errorf("expected edge index 2, got %d", e.index)
	}
	const expectedDistance = 2.5607374
	if math.Abs(e.distance-expectedDistance) > 1e-4 {
		t.Errorf("expected distance %v, got %v", expectedDistance, e.distance)
	}
	const wantNX, wantNY = -0.6401844, -0.7682213
	if math.Abs(e.normal.X()-wantNX) > 1e-4 || math.Abs(e.normal.Y()-wantNY) > 1e-4 {
		t.Errorf("expected normal (%v, %v), got %v", wantNX, wantNY, e.normal)
	}
}

func TestRun2_DegenerateSimplexRejected(t *testing.T) {
	simplex := []gjk.SupportPoint2{{}, {}}
	a, poseA := fixtures.Circle{Radius: 1}, body.IdentityPose2()
	b, poseB := fixtures.Circle{Radius: 1}, body.IdentityPose2()

	if _, err := Run2(simplex, a, poseA, b, poseB, config.Default()); err != ErrDegenerateSimplex {
		t.Errorf("expected ErrDegenerateSimplex, got %v", err)
	}
}
