package rigidcore

import (
	"testing"

	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/broadphase"
	"github.com/akmonengine/rigidcore/events"
	"github.com/akmonengine/rigidcore/internal/fixtures"
	"github.com/go-gl/mathgl/mgl64"
)

func floorBody3(t *testing.T) *body.RigidBody3[int] {
	t.Helper()
	shape := body.NewCollisionShape3(body.FullResolution,
		body.NewCollisionPrimitive3(fixtures.Box{HalfExtents: mgl64.Vec3{25, 0.5, 25}}, body.IdentityPose3()))
	pose := body.IdentityPose3()
	pose.Position = mgl64.Vec3{0, -0.5, 0}
	return body.NewRigidBody3(0, pose, body.Mass3{}, body.Material{Restitution: 0.1}, shape)
}

func fallingBoxBody3(t *testing.T, startY float64) *body.RigidBody3[int] {
	t.Helper()
	shape := body.NewCollisionShape3(body.FullResolution,
		body.NewCollisionPrimitive3(fixtures.Box{HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5}}, body.IdentityPose3()))
	pose := body.IdentityPose3()
	pose.Position = mgl64.Vec3{0, startY, 0}
	mass := body.Mass3{InverseMass: 1, InverseInertiaLocal: mgl64.Mat3{6, 0, 0, 0, 6, 0, 0, 0, 6}}
	return body.NewRigidBody3(1, pose, mass, body.Material{Restitution: 0.1}, shape)
}

func TestWorld3_BoxSettlesOnFloorAndSleeps(t *testing.T) {
	w := NewWorld3[int](broadphase.NewSweepAndPrune3[int]())
	w.Gravity = [3]float64{0, -9.8, 0}
	w.Substeps = 4

	floor := floorBody3(t)
	box := fallingBoxBody3(t, 2.0)
	w.AddBody(floor)
	w.AddBody(box)

	var entered bool
	w.Events.Subscribe(events.ContactEnter, func(events.Event[int]) { entered = true })

	for i := 0; i < 600; i++ {
		w.Step(1.0 / 60.0)
	}

	if !entered {
		t.Errorf("expected a ContactEnter event once the box reaches the floor")
	}
	if !box.IsSleeping {
		t.Errorf("expected the box to fall asleep once it settles on the floor")
	}
	if box.Pose.Position.Y() < 0 {
		t.Errorf("the box must not have tunneled through the floor, got Y=%v", box.Pose.Position.Y())
	}
	if floor.Pose.Position.Y() != -0.5 {
		t.Errorf("a static floor must never move, got Y=%v", floor.Pose.Position.Y())
	}
}

func TestWorld3_RemoveBodyStopsSimulatingIt(t *testing.T) {
	w := NewWorld3[int](broadphase.NewSweepAndPrune3[int]())
	w.Gravity = [3]float64{0, -9.8, 0}

	box := fallingBoxBody3(t, 10.0)
	w.AddBody(box)
	w.RemoveBody(box)

	w.Step(1.0 / 60.0)

	if len(w.Bodies) != 0 {
		t.Errorf("expected no bodies left in the world after RemoveBody, got %d", len(w.Bodies))
	}
	if box.Velocity.Linear.Y() != 0 {
		t.Errorf("a body removed before Step must not be integrated, got Vy=%v", box.Velocity.Linear.Y())
	}
}

func TestWorld3_SeparatedBodiesNeverContact(t *testing.T) {
	w := NewWorld3[int](broadphase.NewSweepAndPrune3[int]())

	a := fallingBoxBody3(t, 100.0)
	b := fallingBoxBody3(t, -100.0)
	w.AddBody(a)
	w.AddBody(b)

	var entered bool
	w.Events.Subscribe(events.ContactEnter, func(events.Event[int]) { entered = true })

	w.Step(1.0 / 60.0)

	if entered {
		t.Errorf("two bodies 200 units apart must never report a contact")
	}
}
