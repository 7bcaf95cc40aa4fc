package body

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestForceAccumulator3_AccumulatesThenConsumeZeros(t *testing.T) {
	var f ForceAccumulator3
	f.AddForce(mgl64.Vec3{1, 0, 0})
	f.AddForce(mgl64.Vec3{0, 2, 0})
	f.AddTorque(mgl64.Vec3{0, 0, 3})

	force := f.ConsumeForce()
	if force != (mgl64.Vec3{1, 2, 0}) {
		t.Errorf("ConsumeForce() = %v, want {1, 2, 0}", force)
	}
	torque := f.ConsumeTorque()
	if torque != (mgl64.Vec3{0, 0, 3}) {
		t.Errorf("ConsumeTorque() = %v, want {0, 0, 3}", torque)
	}

	if f.ConsumeForce() != (mgl64.Vec3{}) || f.ConsumeTorque() != (mgl64.Vec3{}) {
		t.Errorf("a second Consume must return zero: the accumulator must have been cleared")
	}
}

func TestForceAccumulator3_AddForceAtPointDerivesTorque(t *testing.T) {
	var f ForceAccumulator3
	pose := IdentityPose3()
	pose.SetPosition(mgl64.Vec3{0, 0, 0})

	f.AddForceAtPoint(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, pose)

	torque := f.ConsumeTorque()
	want := mgl64.Vec3{1, 0, 0}.Cross(mgl64.Vec3{0, 1, 0})
	if torque != want {
		t.Errorf("AddForceAtPoint torque = %v, want r x force = %v", torque, want)
	}
}

func TestForceAccumulator2_AddForceAtPointDerivesScalarTorque(t *testing.T) {
	var f ForceAccumulator2
	pose := IdentityPose2()

	f.AddForceAtPoint(mgl64.Vec2{0, 1}, mgl64.Vec2{1, 0}, pose)

	torque := f.ConsumeTorque()
	want := 1.0*1.0 - 0.0*0.0 // r.X*force.Y - r.Y*force.X
	if torque != want {
		t.Errorf("2D AddForceAtPoint torque = %v, want %v", torque, want)
	}
}

func TestForceAccumulator2_AccumulatesAndConsumes(t *testing.T) {
	var f ForceAccumulator2
	f.AddForce(mgl64.Vec2{3, 4})
	f.AddTorque(2)

	if f.ConsumeForce() != (mgl64.Vec2{3, 4}) {
		t.Errorf("ConsumeForce() should return the accumulated force")
	}
	if f.ConsumeTorque() != 2 {
		t.Errorf("ConsumeTorque() should return the accumulated torque")
	}
	if f.ConsumeTorque() != 0 {
		t.Errorf("a second ConsumeTorque must return zero")
	}
}
