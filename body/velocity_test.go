package body

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestVelocity3_ApplyTranslatesByLinearTimesDt(t *testing.T) {
	v := Velocity3{Linear: mgl64.Vec3{1, 2, 3}}
	pose := IdentityPose3()

	next := v.Apply(pose, 0.5)
	want := mgl64.Vec3{0.5, 1, 1.5}
	if next.Position.Sub(want).Len() > 1e-9 {
		t.Errorf("Apply() position = %v, want %v", next.Position, want)
	}
}

func TestVelocity3_ApplyWithZeroAngularPreservesRotation(t *testing.T) {
	v := Velocity3{Linear: mgl64.Vec3{1, 0, 0}}
	pose := IdentityPose3()
	pose.SetRotation(mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{0, 1, 0}))

	next := v.Apply(pose, 0.1)
	if math.Abs(next.Rotation.W-pose.Rotation.W) > 1e-9 {
		t.Errorf("zero angular velocity must leave rotation unchanged, got %v want %v", next.Rotation, pose.Rotation)
	}
}

func TestVelocity3_ApplyWithAngularRotatesForward(t *testing.T) {
	v := Velocity3{Angular: mgl64.Vec3{0, 1, 0}}
	pose := IdentityPose3()

	next := v.Apply(pose, 0.1)
	if next.Rotation.W == pose.Rotation.W && next.Rotation.V == pose.Rotation.V {
		t.Errorf("nonzero angular velocity must change the rotation")
	}
	// The returned rotation must stay a unit quaternion.
	lenSq := next.Rotation.W*next.Rotation.W + next.Rotation.V.LenSqr()
	if math.Abs(lenSq-1) > 1e-9 {
		t.Errorf("Apply() must return a normalized rotation, got |q|^2=%v", lenSq)
	}
}

func TestVelocity2_ApplyTranslatesAndRotates(t *testing.T) {
	v := Velocity2{Linear: mgl64.Vec2{2, 0}, Angular: math.Pi / 2}
	pose := IdentityPose2()

	next := v.Apply(pose, 1.0)
	if next.Position.Sub(mgl64.Vec2{2, 0}).Len() > 1e-9 {
		t.Errorf("Apply() position = %v, want {2, 0}", next.Position)
	}
	if math.Abs(next.Rotation-math.Pi/2) > 1e-9 {
		t.Errorf("Apply() rotation = %v, want pi/2", next.Rotation)
	}
	if math.Abs(next.InverseRotation+math.Pi/2) > 1e-9 {
		t.Errorf("Apply() must refresh InverseRotation, got %v", next.InverseRotation)
	}
}
