// Package integrate implements semi-implicit (symplectic) Euler
// integration (spec §4.3). Velocity and next-pose integration run
// together in one per-body call (IntegrateBody3/IntegrateBody2, driven
// in parallel by Bodies3/Bodies2); there are no separate velocity-only
// and pose-only entry points. Commit3/Commit2 then move NextPose into
// the current Pose.
package integrate

import (
	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/pipeline"
	"github.com/go-gl/mathgl/mgl64"
)

func vec3(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }
func vec2(x, y float64) mgl64.Vec2    { return mgl64.Vec2{x, y} }

// Bodies3 integrates every dynamic body in bodies in parallel across
// the worker pool, applying gravity and accumulated forces, then
// advancing NextPose from the updated velocity.
func Bodies3[Id comparable](bodies []*body.RigidBody3[Id], gravityX, gravityY, gravityZ, dt float64, workers int) {
	pipeline.Task(workers, bodies, func(b *body.RigidBody3[Id]) {
		IntegrateBody3(b, gravityX, gravityY, gravityZ, dt)
	})
}

// IntegrateBody3 runs the full per-body integration step of §4.3 for
// one 3D body: force/mass → linear velocity, torque/inertia → angular
// velocity, then velocity.Apply → next pose.
func IntegrateBody3[Id comparable](b *body.RigidBody3[Id], gravityX, gravityY, gravityZ, dt float64) {
	b.Mutex.Lock()
	defer b.Mutex.Unlock()

	if b.IsSleeping {
		b.NextPose.Value = b.Pose
		return
	}

	if b.IsStatic() {
		force, torque := b.Forces.ConsumeForce(), b.Forces.ConsumeTorque()
		_, _ = force, torque
		b.NextPose.Value = b.Pose
		return
	}

	force := b.Forces.ConsumeForce()
	torque := b.Forces.ConsumeTorque()

	linearAccel := force.Mul(b.Mass.InverseMass)
	gravityVec := vec3(gravityX, gravityY, gravityZ)
	b.Velocity.Linear = b.Velocity.Linear.Add(linearAccel.Add(gravityVec).Mul(dt))

	invInertia := b.Mass.WorldInverseInertia(b.Pose.Rotation)
	angularAccel := invInertia.Mul3x1(torque)
	b.Velocity.Angular = b.Velocity.Angular.Add(angularAccel.Mul(dt))

	b.NextPose.Value = b.Velocity.Apply(b.Pose, dt)
}

// Bodies2 is the 2D counterpart of Bodies3.
func Bodies2[Id comparable](bodies []*body.RigidBody2[Id], gravityX, gravityY, dt float64, workers int) {
	pipeline.Task(workers, bodies, func(b *body.RigidBody2[Id]) {
		IntegrateBody2(b, gravityX, gravityY, dt)
	})
}

// IntegrateBody2 is the 2D counterpart of IntegrateBody3.
func IntegrateBody2[Id comparable](b *body.RigidBody2[Id], gravityX, gravityY, dt float64) {
	b.Mutex.Lock()
	defer b.Mutex.Unlock()

	if b.IsSleeping {
		b.NextPose.Value = b.Pose
		return
	}

	if b.IsStatic() {
		_ = b.Forces.ConsumeForce()
		_ = b.Forces.ConsumeTorque()
		b.NextPose.Value = b.Pose
		return
	}

	force := b.Forces.ConsumeForce()
	torque := b.Forces.ConsumeTorque()

	linearAccel := force.Mul(b.Mass.InverseMass)
	b.Velocity.Linear = b.Velocity.Linear.Add(linearAccel.Add(vec2(gravityX, gravityY)).Mul(dt))

	invInertia := b.Mass.WorldInverseInertia()
	b.Velocity.Angular += invInertia * torque * dt

	b.NextPose.Value = b.Velocity.Apply(b.Pose, dt)
}

// Commit3 moves every body's NextPose into its current Pose, clearing
// the dirty flag, then refreshes the shape's world AABB against the
// committed pose so the broad phase sees where the body actually is —
// the final step of §4.3.
func Commit3[Id comparable](bodies []*body.RigidBody3[Id]) {
	for _, b := range bodies {
		b.Mutex.Lock()
		b.Pose = b.NextPose.Value
		b.Pose.ClearDirty()
		if b.Shape != nil {
			b.Shape.UpdateWorldAABB(b.Pose)
		}
		b.Mutex.Unlock()
	}
}

// Commit2 is the 2D counterpart of Commit3.
func Commit2[Id comparable](bodies []*body.RigidBody2[Id]) {
	for _, b := range bodies {
		b.Mutex.Lock()
		b.Pose = b.NextPose.Value
		b.Pose.ClearDirty()
		if b.Shape != nil {
			b.Shape.UpdateWorldAABB(b.Pose)
		}
		b.Mutex.Unlock()
	}
}
