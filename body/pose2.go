package body

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose2 is a position + rotation in 2D. Rotation is a plain angle in
// radians: mgl64 has no Rotation2 type, and a 2D rotation is fully
// described by one scalar, so this is the natural, zero-overhead
// representation rather than a borrowed 3D quaternion.
type Pose2 struct {
	Position        mgl64.Vec2
	Rotation        float64
	InverseRotation float64
	dirty           bool
}

// IdentityPose2 returns the pose at the origin with no rotation.
func IdentityPose2() Pose2 {
	return Pose2{}
}

func (p *Pose2) SetPosition(pos mgl64.Vec2) {
	p.Position = pos
	p.dirty = true
}

func (p *Pose2) SetRotation(angle float64) {
	p.Rotation = angle
	p.InverseRotation = -angle
	p.dirty = true
}

func (p Pose2) Dirty() bool { return p.dirty }

func (p *Pose2) ClearDirty() { p.dirty = false }

// Rotate applies the pose's rotation to a local-space direction.
func (p Pose2) Rotate(v mgl64.Vec2) mgl64.Vec2 {
	s, c := math.Sincos(p.Rotation)
	return mgl64.Vec2{v.X()*c - v.Y()*s, v.X()*s + v.Y()*c}
}

func (p Pose2) inverseRotate(v mgl64.Vec2) mgl64.Vec2 {
	s, c := math.Sincos(p.InverseRotation)
	return mgl64.Vec2{v.X()*c - v.Y()*s, v.X()*s + v.Y()*c}
}

func (p Pose2) TransformPoint(local mgl64.Vec2) mgl64.Vec2 {
	return p.Rotate(local).Add(p.Position)
}

func (p Pose2) TransformVector(local mgl64.Vec2) mgl64.Vec2 {
	return p.Rotate(local)
}

func (p Pose2) InverseTransformPoint(world mgl64.Vec2) mgl64.Vec2 {
	return p.inverseRotate(world.Sub(p.Position))
}

func (p Pose2) InverseTransformVector(world mgl64.Vec2) mgl64.Vec2 {
	return p.inverseRotate(world)
}

func (p Pose2) Concat(other Pose2) Pose2 {
	angle := normalizeAngle(p.Rotation + other.Rotation)
	return Pose2{
		Position:        p.TransformPoint(other.Position),
		Rotation:        angle,
		InverseRotation: -angle,
	}
}

func (p Pose2) InverseTransform() Pose2 {
	angle := -p.Rotation
	return Pose2{
		Position:        p.inverseRotate(p.Position.Mul(-1)),
		Rotation:        angle,
		InverseRotation: p.Rotation,
	}
}

func (p Pose2) Interpolate(q Pose2, t float64) Pose2 {
	pos := p.Position.Mul(1 - t).Add(q.Position.Mul(t))
	angle := normalizeAngle(p.Rotation + shortestAngleDelta(p.Rotation, q.Rotation)*t)
	return Pose2{Position: pos, Rotation: angle, InverseRotation: -angle}
}

func shortestAngleDelta(from, to float64) float64 {
	delta := normalizeAngle(to - from)
	if delta > math.Pi {
		delta -= 2 * math.Pi
	}
	return delta
}

func normalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
