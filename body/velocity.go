package body

import "github.com/go-gl/mathgl/mgl64"

// Velocity3 is a linear + angular velocity pair in 3D.
type Velocity3 struct {
	Linear  mgl64.Vec3
	Angular mgl64.Vec3
}

// Apply integrates pose by the velocity over dt: translate by
// Linear*dt and rotate by a first-order quaternion step,
// q + 0.5*(0, Angular)*q*dt, renormalized (small-angle integration via
// a pure-vector quaternion derivative, matching the teacher's own
// update rule, rather than the exact exponential map).
func (v Velocity3) Apply(pose Pose3, dt float64) Pose3 {
	next := pose
	next.Position = pose.Position.Add(v.Linear.Mul(dt))

	omega := mgl64.Quat{W: 0, V: v.Angular}
	qDot := omega.Mul(pose.Rotation).Scale(0.5)
	rot := pose.Rotation.Add(qDot.Scale(dt)).Normalize()
	next.Rotation = rot
	next.InverseRotation = rot.Inverse()
	return next
}

// Velocity2 is a linear + angular velocity pair in 2D, where angular
// velocity is a scalar (rotation rate in rad/s about the out-of-plane
// axis).
type Velocity2 struct {
	Linear  mgl64.Vec2
	Angular float64
}

func (v Velocity2) Apply(pose Pose2, dt float64) Pose2 {
	next := pose
	next.Position = pose.Position.Add(v.Linear.Mul(dt))
	angle := normalizeAngle(pose.Rotation + v.Angular*dt)
	next.Rotation = angle
	next.InverseRotation = -angle
	return next
}
