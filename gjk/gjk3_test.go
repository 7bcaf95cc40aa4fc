package gjk

import (
	"testing"

	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/config"
	"github.com/akmonengine/rigidcore/internal/fixtures"
	"github.com/go-gl/mathgl/mgl64"
)

func identity() body.Pose3 { return body.IdentityPose3() }

func poseAt(x, y, z float64) body.Pose3 {
	p := body.IdentityPose3()
	p.Position = mgl64.Vec3{x, y, z}
	return p
}

func TestOverlap3_SeparatedSpheres(t *testing.T) {
	a, poseA := fixtures.Sphere{Radius: 1.0}, identity()
	b, poseB := fixtures.Sphere{Radius: 1.0}, poseAt(3, 0, 0)

	var simplex Simplex3
	if Overlap3(a, poseA, b, poseB, &simplex, config.Default()) {
		t.Errorf("expected no overlap between spheres 3 apart with radius 1 each")
	}
}

func TestOverlap3_OverlappingSpheres(t *testing.T) {
	a, poseA := fixtures.Sphere{Radius: 1.0}, identity()
	b, poseB := fixtures.Sphere{Radius: 1.0}, poseAt(1.5, 0, 0)

	var simplex Simplex3
	if !Overlap3(a, poseA, b, poseB, &simplex, config.Default()) {
		t.Errorf("expected overlap between spheres 1.5 apart with radius 1 each")
	}
}

func TestOverlap3_TouchingBoxes(t *testing.T) {
	a, poseA := fixtures.Box{HalfExtents: mgl64.Vec3{1, 1, 1}}, identity()
	b, poseB := fixtures.Box{HalfExtents: mgl64.Vec3{1, 1, 1}}, poseAt(2, 0, 0)

	var simplex Simplex3
	if !Overlap3(a, poseA, b, poseB, &simplex, config.Default()) {
		t.Errorf("expected touching boxes to report overlap (GJK treats touching as contained)")
	}
}

func TestOverlap3_StackedBoxesSeparated(t *testing.T) {
	a, poseA := fixtures.Box{HalfExtents: mgl64.Vec3{1, 1, 1}}, identity()
	b, poseB := fixtures.Box{HalfExtents: mgl64.Vec3{1, 1, 1}}, poseAt(0, 5, 0)

	var simplex Simplex3
	if Overlap3(a, poseA, b, poseB, &simplex, config.Default()) {
		t.Errorf("expected separated boxes not to overlap")
	}
}

func TestTimeOfImpact3_HeadOnApproach(t *testing.T) {
	a, poseA := fixtures.Sphere{Radius: 1.0}, identity()
	b, poseB := fixtures.Sphere{Radius: 1.0}, poseAt(10, 0, 0)

	relVel := mgl64.Vec3{10, 0, 0}
	toi, hit := TimeOfImpact3(a, poseA, b, poseB, relVel, 1.0, config.Default())
	if !hit {
		t.Fatalf("expected an impact within the time window")
	}
	if toi <= 0 || toi >= 1 {
		t.Errorf("expected toi in (0,1), got %v", toi)
	}
}

func TestTimeOfImpact3_NeverMeets(t *testing.T) {
	a, poseA := fixtures.Sphere{Radius: 1.0}, identity()
	b, poseB := fixtures.Sphere{Radius: 1.0}, poseAt(10, 0, 0)

	relVel := mgl64.Vec3{1, 0, 0}
	_, hit := TimeOfImpact3(a, poseA, b, poseB, relVel, 0.5, config.Default())
	if hit {
		t.Errorf("expected no impact: closing distance over the window is less than the gap")
	}
}
