package narrowphase

import (
	"testing"

	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/config"
	"github.com/akmonengine/rigidcore/internal/fixtures"
	"github.com/go-gl/mathgl/mgl64"
)

func boxShape3(half mgl64.Vec3) *body.CollisionShape3 {
	return body.NewCollisionShape3(body.FullResolution,
		body.NewCollisionPrimitive3(fixtures.Box{HalfExtents: half}, body.IdentityPose3()))
}

func poseAt(x, y, z float64) body.Pose3 {
	p := body.IdentityPose3()
	p.Position = mgl64.Vec3{x, y, z}
	return p
}

func TestCollide3_OverlappingBoxes(t *testing.T) {
	shapeL := boxShape3(mgl64.Vec3{1, 1, 1})
	shapeR := boxShape3(mgl64.Vec3{1, 1, 1})

	contact, err := Collide3(shapeL, poseAt(0, 0, 0), shapeR, poseAt(1.5, 0, 0), config.Default())
	if err != nil || contact == nil {
		t.Fatalf("expected overlapping boxes to collide, got contact=%v err=%v", contact, err)
	}
	if contact.PenetrationDepth <= 0 {
		t.Errorf("expected positive penetration depth, got %v", contact.PenetrationDepth)
	}
}

func TestCollide3_SeparatedBoxesNoContact(t *testing.T) {
	shapeL := boxShape3(mgl64.Vec3{1, 1, 1})
	shapeR := boxShape3(mgl64.Vec3{1, 1, 1})

	contact, _ := Collide3(shapeL, poseAt(0, 0, 0), shapeR, poseAt(10, 0, 0), config.Default())
	if contact != nil {
		t.Errorf("expected separated boxes not to collide")
	}
}

func TestCollide3_DisabledShapeNeverCollides(t *testing.T) {
	shapeL := body.NewCollisionShape3(body.FullResolution)
	shapeR := boxShape3(mgl64.Vec3{1, 1, 1})

	if shapeL.Enabled {
		t.Fatalf("shape with no primitives should be disabled")
	}
	contact, err := Collide3(shapeL, poseAt(0, 0, 0), shapeR, poseAt(0, 0, 0), config.Default())
	if contact != nil {
		t.Errorf("expected a disabled shape never to report a contact")
	}
	if err != ErrNoPrimitives {
		t.Errorf("expected ErrNoPrimitives, got %v", err)
	}
}

func TestCollideContinuous3_CatchesFastMover(t *testing.T) {
	shapeL := boxShape3(mgl64.Vec3{0.1, 0.1, 0.1})
	shapeR := boxShape3(mgl64.Vec3{1, 1, 1})

	poseL := poseAt(-10, 0, 0)
	nextPoseL := poseAt(10, 0, 0)
	poseR := poseAt(0, 0, 0)
	nextPoseR := poseAt(0, 0, 0)

	contact, err := CollideContinuous3(shapeL, poseL, nextPoseL, shapeR, poseR, nextPoseR, 1.0, config.Default())
	if err != nil || contact == nil {
		t.Errorf("expected a fast-moving small box to register a continuous hit against a stationary large box")
	}

	discreteContact, _ := Collide3(shapeL, poseL, shapeR, poseR, config.Default())
	if discreteContact != nil {
		t.Errorf("discrete test at t=0 should not already overlap, or the continuous test above is trivial")
	}
}
