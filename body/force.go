package body

import "github.com/go-gl/mathgl/mgl64"

// ForceAccumulator3 collects force and torque contributions over a
// tick; Consume* reads and zeroes a component, the atomic commit of
// applied force into integration.
type ForceAccumulator3 struct {
	force  mgl64.Vec3
	torque mgl64.Vec3
}

func (f *ForceAccumulator3) AddForce(force mgl64.Vec3) {
	f.force = f.force.Add(force)
}

func (f *ForceAccumulator3) AddTorque(torque mgl64.Vec3) {
	f.torque = f.torque.Add(torque)
}

// AddForceAtPoint applies force at a world-space point on the body,
// deriving the resulting torque as r x force where r is the lever arm
// from the body's current position to the point.
func (f *ForceAccumulator3) AddForceAtPoint(force mgl64.Vec3, worldPoint mgl64.Vec3, pose Pose3) {
	r := worldPoint.Sub(pose.Position)
	f.AddForce(force)
	f.AddTorque(r.Cross(force))
}

func (f *ForceAccumulator3) ConsumeForce() mgl64.Vec3 {
	v := f.force
	f.force = mgl64.Vec3{}
	return v
}

func (f *ForceAccumulator3) ConsumeTorque() mgl64.Vec3 {
	v := f.torque
	f.torque = mgl64.Vec3{}
	return v
}

// ForceAccumulator2 is the 2D counterpart: torque is a scalar (the
// out-of-plane component of the 3D cross product).
type ForceAccumulator2 struct {
	force  mgl64.Vec2
	torque float64
}

func (f *ForceAccumulator2) AddForce(force mgl64.Vec2) {
	f.force = f.force.Add(force)
}

func (f *ForceAccumulator2) AddTorque(torque float64) {
	f.torque += torque
}

// AddForceAtPoint mirrors ForceAccumulator3.AddForceAtPoint using the
// 2D cross product r.X*force.Y - r.Y*force.X.
func (f *ForceAccumulator2) AddForceAtPoint(force mgl64.Vec2, worldPoint mgl64.Vec2, pose Pose2) {
	r := worldPoint.Sub(pose.Position)
	f.AddForce(force)
	f.AddTorque(r.X()*force.Y() - r.Y()*force.X())
}

func (f *ForceAccumulator2) ConsumeForce() mgl64.Vec2 {
	v := f.force
	f.force = mgl64.Vec2{}
	return v
}

func (f *ForceAccumulator2) ConsumeTorque() float64 {
	v := f.torque
	f.torque = 0
	return v
}
