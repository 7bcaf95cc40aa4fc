package body

import "github.com/go-gl/mathgl/mgl64"

// Mass3 is the inverse-mass / inverse-inertia pair used throughout
// integration and resolution. A body with InverseMass == 0 is static:
// infinite mass, immovable by impulses.
type Mass3 struct {
	InverseMass         float64
	InverseInertiaLocal mgl64.Mat3
}

// IsStatic reports whether the body this mass belongs to is immovable.
func (m Mass3) IsStatic() bool { return m.InverseMass == 0 }

// WorldInverseInertia computes R * I_local^-1 * R^T for the given
// world rotation.
func (m Mass3) WorldInverseInertia(rotation mgl64.Quat) mgl64.Mat3 {
	if m.IsStatic() {
		return mgl64.Mat3{}
	}
	r := rotation.Mat4().Mat3()
	return r.Mul3(m.InverseInertiaLocal).Mul3(r.Transpose())
}

// Mass2 is the 2D counterpart of Mass3. In 2D the moment of inertia
// about the out-of-plane axis is a scalar and rotation does not
// change it, so the world inverse inertia equals the local one.
type Mass2 struct {
	InverseMass    float64
	InverseInertia float64
}

func (m Mass2) IsStatic() bool { return m.InverseMass == 0 }

func (m Mass2) WorldInverseInertia() float64 {
	if m.IsStatic() {
		return 0
	}
	return m.InverseInertia
}
