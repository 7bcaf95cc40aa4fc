package body

import "github.com/go-gl/mathgl/mgl64"

// Pose3 is a position + rotation in 3D, with a cached inverse rotation
// and a dirty flag tracking mutation since the last ClearDirty.
type Pose3 struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	InverseRotation mgl64.Quat
	dirty           bool
}

// IdentityPose3 returns the pose at the origin with no rotation.
func IdentityPose3() Pose3 {
	return Pose3{
		Position:        mgl64.Vec3{0, 0, 0},
		Rotation:        mgl64.QuatIdent(),
		InverseRotation: mgl64.QuatIdent(),
	}
}

// SetPosition mutates the position and marks the pose dirty.
func (p *Pose3) SetPosition(pos mgl64.Vec3) {
	p.Position = pos
	p.dirty = true
}

// SetRotation mutates the rotation, refreshes the cached inverse, and
// marks the pose dirty.
func (p *Pose3) SetRotation(rot mgl64.Quat) {
	p.Rotation = rot.Normalize()
	p.InverseRotation = p.Rotation.Inverse()
	p.dirty = true
}

// Dirty reports whether position or rotation changed since ClearDirty.
func (p Pose3) Dirty() bool { return p.dirty }

// ClearDirty resets the dirty flag.
func (p *Pose3) ClearDirty() { p.dirty = false }

// TransformPoint maps a local-space point into world space.
func (p Pose3) TransformPoint(local mgl64.Vec3) mgl64.Vec3 {
	return p.Rotation.Rotate(local).Add(p.Position)
}

// TransformVector maps a local-space direction into world space
// (rotation only, no translation).
func (p Pose3) TransformVector(local mgl64.Vec3) mgl64.Vec3 {
	return p.Rotation.Rotate(local)
}

// InverseTransformPoint maps a world-space point into local space.
func (p Pose3) InverseTransformPoint(world mgl64.Vec3) mgl64.Vec3 {
	return p.InverseRotation.Rotate(world.Sub(p.Position))
}

// InverseTransformVector maps a world-space direction into local space.
func (p Pose3) InverseTransformVector(world mgl64.Vec3) mgl64.Vec3 {
	return p.InverseRotation.Rotate(world)
}

// Concat composes p with other, applying other first then p:
// equivalent to treating other as a local-space pose inside p's frame.
func (p Pose3) Concat(other Pose3) Pose3 {
	rot := p.Rotation.Mul(other.Rotation).Normalize()
	return Pose3{
		Position:        p.TransformPoint(other.Position),
		Rotation:        rot,
		InverseRotation: rot.Inverse(),
	}
}

// InverseTransform returns the pose whose Concat with p yields identity.
func (p Pose3) InverseTransform() Pose3 {
	inv := p.InverseRotation
	return Pose3{
		Position:        inv.Rotate(p.Position.Mul(-1)),
		Rotation:        inv,
		InverseRotation: p.Rotation,
	}
}

// Interpolate blends p toward q by t in [0,1]: linear on translation,
// normalized-lerp on rotation.
func (p Pose3) Interpolate(q Pose3, t float64) Pose3 {
	pos := p.Position.Mul(1 - t).Add(q.Position.Mul(t))
	rot := nlerp(p.Rotation, q.Rotation, t)
	return Pose3{Position: pos, Rotation: rot, InverseRotation: rot.Inverse()}
}

func nlerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.W*b.W+a.V.Dot(b.V) < 0 {
		b = mgl64.Quat{W: -b.W, V: b.V.Mul(-1)}
	}
	w := a.W*(1-t) + b.W*t
	v := a.V.Mul(1 - t).Add(b.V.Mul(t))
	return mgl64.Quat{W: w, V: v}.Normalize()
}
