package main

import (
	"fmt"

	"github.com/akmonengine/rigidcore"
	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/broadphase"
	"github.com/akmonengine/rigidcore/events"
	"github.com/akmonengine/rigidcore/internal/fixtures"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// SetupScene builds a world with a static floor plane and a box
// dropped above it, demonstrating uuid.UUID as the body identifier.
func SetupScene() (*rigidcore.World3[uuid.UUID], *body.RigidBody3[uuid.UUID], *body.RigidBody3[uuid.UUID]) {
	world := rigidcore.NewWorld3[uuid.UUID](broadphase.NewSweepAndPrune3[uuid.UUID]())
	world.Gravity = [3]float64{0, -9.81, 0}
	world.Substeps = 1

	floorShape := body.NewCollisionShape3(body.FullResolution,
		body.NewCollisionPrimitive3(fixtures.Box{HalfExtents: mgl64.Vec3{25, 0.5, 25}}, body.IdentityPose3()),
	)
	floorPose := body.IdentityPose3()
	floorPose.Position = mgl64.Vec3{0, -0.5, 0}
	floor := body.NewRigidBody3(uuid.New(), floorPose, body.Mass3{}, body.Material{Restitution: 0.3}, floorShape)
	world.AddBody(floor)

	boxShape := body.NewCollisionShape3(body.FullResolution,
		body.NewCollisionPrimitive3(fixtures.Box{HalfExtents: mgl64.Vec3{1.5, 1.5, 1.5}}, body.IdentityPose3()),
	)
	boxPose := body.IdentityPose3()
	boxPose.Position = mgl64.Vec3{0, 5, 0}
	boxPose.Rotation = mgl64.QuatRotate(0.3, mgl64.Vec3{0, 0, 1}).Normalize()
	boxPose.InverseRotation = boxPose.Rotation.Inverse()

	density := 2.0
	volume := 3.0 * 3.0 * 3.0
	mass := density * volume
	boxMass := body.Mass3{
		InverseMass:         1.0 / mass,
		InverseInertiaLocal: boxInverseInertia(mass, mgl64.Vec3{3, 3, 3}),
	}
	box := body.NewRigidBody3(uuid.New(), boxPose, boxMass, body.Material{Restitution: 0.6}, boxShape)
	world.AddBody(box)

	return world, floor, box
}

// boxInverseInertia returns the inverse of the diagonal inertia tensor
// of a solid box with the given mass and full extents.
func boxInverseInertia(mass float64, extents mgl64.Vec3) mgl64.Mat3 {
	x, y, z := extents.X(), extents.Y(), extents.Z()
	ixx := mass * (y*y + z*z) / 12
	iyy := mass * (x*x + z*z) / 12
	izz := mass * (x*x + y*y) / 12
	return mgl64.Mat3{1 / ixx, 0, 0, 0, 1 / iyy, 0, 0, 0, 1 / izz}
}

func main() {
	world, _, box := SetupScene()

	world.Events.Subscribe(events.ContactEnter, func(e events.Event[uuid.UUID]) {
		ev := e.(events.ContactEnterEvent[uuid.UUID])
		fmt.Printf("contact enter: %s <-> %s\n", ev.A, ev.B)
	})
	world.Events.Subscribe(events.OnSleep, func(e events.Event[uuid.UUID]) {
		ev := e.(events.SleepEvent[uuid.UUID])
		fmt.Printf("body %s asleep\n", ev.Body)
	})

	const dt = 1.0 / 60.0
	const steps = 300

	for step := 0; step < steps; step++ {
		world.Step(dt)
		if step%30 == 0 {
			fmt.Printf("step %3d  box pos=%v  sleeping=%v\n", step, box.Pose.Position, box.IsSleeping)
		}
	}
}
