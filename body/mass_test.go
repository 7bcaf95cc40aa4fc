package body

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMass3_IsStatic(t *testing.T) {
	if !(Mass3{}).IsStatic() {
		t.Errorf("zero-value Mass3 (InverseMass 0) must be static")
	}
	if (Mass3{InverseMass: 1}).IsStatic() {
		t.Errorf("a nonzero InverseMass must not be static")
	}
}

func TestMass3_WorldInverseInertiaIsZeroForStatic(t *testing.T) {
	m := Mass3{InverseInertiaLocal: mgl64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}}
	got := m.WorldInverseInertia(mgl64.QuatIdent())
	if got != (mgl64.Mat3{}) {
		t.Errorf("a static body's world inverse inertia must be zero, got %v", got)
	}
}

func TestMass3_WorldInverseInertiaIdentityRotationIsUnchanged(t *testing.T) {
	local := mgl64.Mat3{2, 0, 0, 0, 3, 0, 0, 0, 4}
	m := Mass3{InverseMass: 1, InverseInertiaLocal: local}

	got := m.WorldInverseInertia(mgl64.QuatIdent())
	for i := 0; i < 9; i++ {
		if math.Abs(got[i]-local[i]) > 1e-9 {
			t.Fatalf("identity rotation must leave inertia unchanged, got %v want %v", got, local)
		}
	}
}

func TestMass2_IsStaticAndWorldInverseInertia(t *testing.T) {
	static := Mass2{}
	if !static.IsStatic() {
		t.Errorf("zero-value Mass2 must be static")
	}
	if static.WorldInverseInertia() != 0 {
		t.Errorf("a static body's world inverse inertia must be zero")
	}

	dynamic := Mass2{InverseMass: 1, InverseInertia: 0.5}
	if dynamic.WorldInverseInertia() != 0.5 {
		t.Errorf("2D world inverse inertia is rotation-invariant and must equal the local value")
	}
}
