// Package resolve implements the single-pass impulse contact resolver
// of spec §4.4: restitution-only response plus a direct positional
// correction that splits the full penetration depth between the two
// bodies by inverse mass, replacing the teacher's XPBD-compliance +
// Coulomb-friction solver in constraint/contact.go (friction beyond
// what restitution implies is an explicit Non-goal, and the data
// model carries no compliance parameter).
package resolve

import (
	"unsafe"

	"github.com/akmonengine/rigidcore/body"
	"github.com/go-gl/mathgl/mgl64"
)

// Contact3 resolves one 3D contact between a and b: both bodies are
// locked in a fixed order (lower pointer first) so concurrent
// resolution of contacts sharing a body never deadlocks. Static
// bodies contribute zero inverse mass/inertia and are left
// untouched by the position/velocity updates.
func Contact3[Id comparable](a, b *body.RigidBody3[Id], contact body.Contact3) {
	if contact.Strategy != body.FullResolution {
		return
	}
	if a.IsSleeping && b.IsSleeping {
		return
	}

	lockInOrder3(a, b)
	defer unlockInOrder3(a, b)

	normal := contact.Normal
	rA := contact.Point.Sub(a.Pose.Position)
	rB := contact.Point.Sub(b.Pose.Position)

	velA := a.Velocity.Linear.Add(a.Velocity.Angular.Cross(rA))
	velB := b.Velocity.Linear.Add(b.Velocity.Angular.Cross(rB))
	relVel := velB.Sub(velA)

	vn := relVel.Dot(normal)
	if vn > 0 {
		return
	}

	restitution := body.CombineRestitution(a.Material, b.Material)

	invMassA, invMassB := a.Mass.InverseMass, b.Mass.InverseMass
	invIA := a.Mass.WorldInverseInertia(a.Pose.Rotation)
	invIB := b.Mass.WorldInverseInertia(b.Pose.Rotation)

	rAxN := rA.Cross(normal)
	rBxN := rB.Cross(normal)
	angularTermA := invIA.Mul3x1(rAxN).Cross(rA).Dot(normal)
	angularTermB := invIB.Mul3x1(rBxN).Cross(rB).Dot(normal)

	denom := invMassA + invMassB + angularTermA + angularTermB
	if denom <= 0 {
		return
	}

	j := -(1 + restitution) * vn / denom

	impulse := normal.Mul(j)
	a.Velocity.Linear = a.Velocity.Linear.Sub(impulse.Mul(invMassA))
	a.Velocity.Angular = a.Velocity.Angular.Sub(invIA.Mul3x1(rA.Cross(impulse)))
	b.Velocity.Linear = b.Velocity.Linear.Add(impulse.Mul(invMassB))
	b.Velocity.Angular = b.Velocity.Angular.Add(invIB.Mul3x1(rB.Cross(impulse)))

	if totalInvMass := invMassA + invMassB; totalInvMass > 0 && contact.PenetrationDepth > 0 {
		correction := normal.Mul(contact.PenetrationDepth / totalInvMass)
		a.Pose.Position = a.Pose.Position.Sub(correction.Mul(invMassA))
		b.Pose.Position = b.Pose.Position.Add(correction.Mul(invMassB))
	}
}

func lockInOrder3[Id comparable](a, b *body.RigidBody3[Id]) {
	first, second := a, b
	if bodyLess(a, b) {
		first, second = a, b
	} else {
		first, second = b, a
	}
	first.Mutex.Lock()
	second.Mutex.Lock()
}

func unlockInOrder3[Id comparable](a, b *body.RigidBody3[Id]) {
	a.Mutex.Unlock()
	b.Mutex.Unlock()
}

// bodyLess gives any two body pointers a consistent lock order so two
// contacts sharing a body never lock it in opposite order.
func bodyLess[T any](a, b *T) bool {
	return uintptr(unsafe.Pointer(a)) < uintptr(unsafe.Pointer(b))
}

// Contact2 is the 2D counterpart of Contact3. The angular cross-
// products collapse to scalars since a 2D rotation has one degree of
// freedom.
func Contact2[Id comparable](a, b *body.RigidBody2[Id], contact body.Contact2) {
	if contact.Strategy != body.FullResolution {
		return
	}
	if a.IsSleeping && b.IsSleeping {
		return
	}

	lockInOrder2(a, b)
	defer unlockInOrder2(a, b)

	normal := contact.Normal
	rA := contact.Point.Sub(a.Pose.Position)
	rB := contact.Point.Sub(b.Pose.Position)

	velA := a.Velocity.Linear.Add(perp2(rA).Mul(a.Velocity.Angular))
	velB := b.Velocity.Linear.Add(perp2(rB).Mul(b.Velocity.Angular))
	relVel := velB.Sub(velA)

	vn := relVel.Dot(normal)
	if vn > 0 {
		return
	}

	restitution := body.CombineRestitution(a.Material, b.Material)

	invMassA, invMassB := a.Mass.InverseMass, b.Mass.InverseMass
	invIA := a.Mass.WorldInverseInertia()
	invIB := b.Mass.WorldInverseInertia()

	rAxN := cross2(rA, normal)
	rBxN := cross2(rB, normal)
	angularTermA := invIA * rAxN * rAxN
	angularTermB := invIB * rBxN * rBxN

	denom := invMassA + invMassB + angularTermA + angularTermB
	if denom <= 0 {
		return
	}

	j := -(1 + restitution) * vn / denom

	impulse := normal.Mul(j)
	a.Velocity.Linear = a.Velocity.Linear.Sub(impulse.Mul(invMassA))
	a.Velocity.Angular -= invIA * cross2(rA, impulse)
	b.Velocity.Linear = b.Velocity.Linear.Add(impulse.Mul(invMassB))
	b.Velocity.Angular += invIB * cross2(rB, impulse)

	if totalInvMass := invMassA + invMassB; totalInvMass > 0 && contact.PenetrationDepth > 0 {
		correction := normal.Mul(contact.PenetrationDepth / totalInvMass)
		a.Pose.Position = a.Pose.Position.Sub(correction.Mul(invMassA))
		b.Pose.Position = b.Pose.Position.Add(correction.Mul(invMassB))
	}
}

func lockInOrder2[Id comparable](a, b *body.RigidBody2[Id]) {
	first, second := a, b
	if bodyLess(a, b) {
		first, second = a, b
	} else {
		first, second = b, a
	}
	first.Mutex.Lock()
	second.Mutex.Lock()
}

func unlockInOrder2[Id comparable](a, b *body.RigidBody2[Id]) {
	a.Mutex.Unlock()
	b.Mutex.Unlock()
}

func perp2(v mgl64.Vec2) mgl64.Vec2 { return mgl64.Vec2{-v.Y(), v.X()} }
func cross2(a, b mgl64.Vec2) float64 { return a.X()*b.Y() - a.Y()*b.X() }
