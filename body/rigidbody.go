package body

import (
	"math"
	"sync"
)

// RigidBody3 is the sole owner of one body's pose, velocity, mass,
// force accumulator and collision shape. Id is an opaque identifier
// chosen by the embedder (integer, handle, entity reference, uuid —
// anything comparable); the core never interprets it.
//
// Mutex guards concurrent mutation of Pose/Velocity/NextPose/
// NextVelocity during contact resolution (§5): the resolver must
// serialize mutation of a body shared by two contacts, and locking
// per body is the simplest correct schedule when a caller chooses to
// parallelize resolution across a body coloring.
type RigidBody3[Id comparable] struct {
	ID Id

	Pose         Pose3
	NextPose     NextFrame[Pose3]
	Velocity     Velocity3
	NextVelocity NextFrame[Velocity3]

	Forces   ForceAccumulator3
	Mass     Mass3
	Material Material
	Shape    *CollisionShape3

	IsSleeping bool
	SleepTimer float64

	Mutex sync.Mutex
}

// NewRigidBody3 constructs a body at pose with the given mass and
// shape, with NextPose/NextVelocity primed from the initial state.
func NewRigidBody3[Id comparable](id Id, pose Pose3, mass Mass3, material Material, shape *CollisionShape3) *RigidBody3[Id] {
	b := &RigidBody3[Id]{
		ID:       id,
		Pose:     pose,
		Mass:     mass,
		Material: material,
		Shape:    shape,
	}
	b.NextPose.Value = pose
	b.Shape.UpdateWorldAABB(pose)
	return b
}

// IsStatic reports whether the body has infinite mass.
func (b *RigidBody3[Id]) IsStatic() bool { return b.Mass.IsStatic() }

// TrySleep puts the body to sleep once its velocity has stayed below
// velocityThreshold for timeThreshold seconds; any faster motion wakes
// it and resets the timer.
func (b *RigidBody3[Id]) TrySleep(dt, timeThreshold, velocityThreshold float64) {
	if b.Velocity.Linear.Len() < velocityThreshold && b.Velocity.Angular.Len() < velocityThreshold {
		b.SleepTimer += dt
		if b.SleepTimer >= timeThreshold {
			b.Sleep()
		}
	} else {
		b.Awake()
	}
}

func (b *RigidBody3[Id]) Sleep() {
	b.IsSleeping = true
	b.SleepTimer = 0
	b.Velocity = Velocity3{}
}

func (b *RigidBody3[Id]) Awake() {
	b.IsSleeping = false
	b.SleepTimer = 0
}

// RigidBody2 is the 2D counterpart of RigidBody3.
type RigidBody2[Id comparable] struct {
	ID Id

	Pose         Pose2
	NextPose     NextFrame[Pose2]
	Velocity     Velocity2
	NextVelocity NextFrame[Velocity2]

	Forces   ForceAccumulator2
	Mass     Mass2
	Material Material
	Shape    *CollisionShape2

	IsSleeping bool
	SleepTimer float64

	Mutex sync.Mutex
}

func NewRigidBody2[Id comparable](id Id, pose Pose2, mass Mass2, material Material, shape *CollisionShape2) *RigidBody2[Id] {
	b := &RigidBody2[Id]{
		ID:       id,
		Pose:     pose,
		Mass:     mass,
		Material: material,
		Shape:    shape,
	}
	b.NextPose.Value = pose
	b.Shape.UpdateWorldAABB(pose)
	return b
}

func (b *RigidBody2[Id]) IsStatic() bool { return b.Mass.IsStatic() }

func (b *RigidBody2[Id]) TrySleep(dt, timeThreshold, velocityThreshold float64) {
	if b.Velocity.Linear.Len() < velocityThreshold && math.Abs(b.Velocity.Angular) < velocityThreshold {
		b.SleepTimer += dt
		if b.SleepTimer >= timeThreshold {
			b.Sleep()
		}
	} else {
		b.Awake()
	}
}

func (b *RigidBody2[Id]) Sleep() {
	b.IsSleeping = true
	b.SleepTimer = 0
	b.Velocity = Velocity2{}
}

func (b *RigidBody2[Id]) Awake() {
	b.IsSleeping = false
	b.SleepTimer = 0
}
