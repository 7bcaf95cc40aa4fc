package resolve

import (
	"math"
	"testing"

	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/internal/fixtures"
	"github.com/go-gl/mathgl/mgl64"
)

func sphereBody3(t *testing.T, mass float64, pos mgl64.Vec3, linear mgl64.Vec3, restitution float64) *body.RigidBody3[int] {
	t.Helper()
	shape := body.NewCollisionShape3(body.FullResolution,
		body.NewCollisionPrimitive3(fixtures.Sphere{Radius: 1}, body.IdentityPose3()))
	m := body.Mass3{InverseMass: 1 / mass, InverseInertiaLocal: mgl64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}}
	pose := body.IdentityPose3()
	pose.Position = pos
	b := body.NewRigidBody3(0, pose, m, body.Material{Restitution: restitution}, shape)
	b.Velocity.Linear = linear
	return b
}

func staticBody3(t *testing.T, pos mgl64.Vec3) *body.RigidBody3[int] {
	t.Helper()
	shape := body.NewCollisionShape3(body.FullResolution,
		body.NewCollisionPrimitive3(fixtures.Box{HalfExtents: mgl64.Vec3{10, 1, 10}}, body.IdentityPose3()))
	pose := body.IdentityPose3()
	pose.Position = pos
	return body.NewRigidBody3(1, pose, body.Mass3{}, body.Material{Restitution: 0.5}, shape)
}

func TestContact3_BouncesOffStaticFloor(t *testing.T) {
	floor := staticBody3(t, mgl64.Vec3{0, -1, 0})
	ball := sphereBody3(t, 1.0, mgl64.Vec3{0, 0.9, 0}, mgl64.Vec3{0, -5, 0}, 0.5)

	contact := body.Contact3{
		Strategy:         body.FullResolution,
		Normal:           mgl64.Vec3{0, 1, 0},
		PenetrationDepth: 0.1,
		Point:            mgl64.Vec3{0, 0, 0},
	}

	Contact3(floor, ball, contact)

	if ball.Velocity.Linear.Y() <= 0 {
		t.Fatalf("expected the ball to bounce upward, got Vy=%v", ball.Velocity.Linear.Y())
	}
	// Restitution 0.5 halves the approach speed on rebound.
	if math.Abs(ball.Velocity.Linear.Y()-2.5) > 1e-6 {
		t.Errorf("expected Vy = 0.5 * 5 = 2.5 after resolution, got %v", ball.Velocity.Linear.Y())
	}
	if floor.Velocity.Linear.LenSqr() != 0 {
		t.Errorf("a static floor must never gain velocity, got %v", floor.Velocity.Linear)
	}
}

func TestContact3_SeparatingPairIsUntouched(t *testing.T) {
	a := sphereBody3(t, 1.0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 5, 0}, 0.5)
	b := sphereBody3(t, 1.0, mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 10, 0}, 0.5)

	before := a.Velocity.Linear
	Contact3(a, b, body.Contact3{
		Strategy: body.FullResolution,
		Normal:   mgl64.Vec3{0, 1, 0},
		Point:    mgl64.Vec3{0, 1, 0},
	})

	if a.Velocity.Linear != before {
		t.Errorf("bodies already separating along the normal must not be touched")
	}
}

func TestContact3_CollisionOnlyStrategyIsNoOp(t *testing.T) {
	a := sphereBody3(t, 1.0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -5, 0}, 0.5)
	b := sphereBody3(t, 1.0, mgl64.Vec3{0, 1.5, 0}, mgl64.Vec3{0, 0, 0}, 0.5)

	before := a.Velocity.Linear
	Contact3(a, b, body.Contact3{Strategy: body.CollisionOnly})

	if a.Velocity.Linear != before {
		t.Errorf("a CollisionOnly contact must never apply an impulse")
	}
}

func TestContact3_BothSleepingIsNoOp(t *testing.T) {
	a := sphereBody3(t, 1.0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, -5, 0}, 0.5)
	b := sphereBody3(t, 1.0, mgl64.Vec3{0, 1.5, 0}, mgl64.Vec3{0, 5, 0}, 0.5)
	a.Sleep()
	b.Sleep()

	Contact3(a, b, body.Contact3{
		Strategy: body.FullResolution,
		Normal:   mgl64.Vec3{0, 1, 0},
		Point:    mgl64.Vec3{0, 0.75, 0},
	})

	if a.Velocity.Linear.LenSqr() != 0 || b.Velocity.Linear.LenSqr() != 0 {
		t.Errorf("two sleeping bodies must never be resolved")
	}
}
