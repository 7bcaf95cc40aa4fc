// Package narrowphase implements the §4.2.3 NarrowPhase contract: for
// a pair of candidate shapes, find the primitive pair with the
// greatest penetration depth and report it as a single Contact.
package narrowphase

import (
	"errors"

	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/config"
	"github.com/akmonengine/rigidcore/epa"
	"github.com/akmonengine/rigidcore/gjk"
)

// ErrNoPrimitives is returned when either shape has no primitives:
// per spec §7 such a shape is treated as disabled, never producing a
// contact.
var ErrNoPrimitives = errors.New("narrowphase: shape has no primitives")

// Collide3 iterates the Cartesian product of shapeL's and shapeR's
// primitives (each transformed into world space by poseL/poseR
// concatenated with its own local transform) and returns the contact
// with the greatest penetration depth. A nil contact always means "no
// contact"; the accompanying error, when non-nil, is a sentinel
// identifying why (ErrNoPrimitives, or epa.ErrDegenerateSimplex
// surfaced from the last primitive pair GJK found overlapping but EPA
// could not resolve) — callers otherwise treat it like a plain nil. If
// either shape is CollisionOnly the result reports overlap only; its
// manifold fields are unspecified.
func Collide3(shapeL *body.CollisionShape3, poseL body.Pose3, shapeR *body.CollisionShape3, poseR body.Pose3, cfg config.Config) (*body.Contact3, error) {
	if !shapeL.Enabled || !shapeR.Enabled {
		return nil, ErrNoPrimitives
	}

	strategy := body.FullResolution
	if shapeL.Strategy == body.CollisionOnly || shapeR.Strategy == body.CollisionOnly {
		strategy = body.CollisionOnly
	}

	found := false
	var best body.Contact3
	var lastErr error

	for _, pl := range shapeL.Primitives {
		worldPoseL := poseL.Concat(pl.LocalTransform)
		for _, pr := range shapeR.Primitives {
			worldPoseR := poseR.Concat(pr.LocalTransform)

			var simplex gjk.Simplex3
			if !gjk.Overlap3(pl.Primitive, worldPoseL, pr.Primitive, worldPoseR, &simplex, cfg) {
				continue
			}

			if strategy == body.CollisionOnly {
				found = true
				best = body.Contact3{Strategy: body.CollisionOnly}
				continue
			}

			result, err := epa.Run3(&simplex, pl.Primitive, worldPoseL, pr.Primitive, worldPoseR, cfg)
			if err != nil {
				lastErr = err
				continue
			}

			if !found || result.PenetrationDepth > best.PenetrationDepth {
				found = true
				best = body.Contact3{
					Strategy:         body.FullResolution,
					Normal:           result.Normal,
					PenetrationDepth: result.PenetrationDepth,
					Point:            result.Point,
				}
			}
		}
	}

	if !found {
		return nil, lastErr
	}
	return &best, nil
}

// CollideContinuous3 is the continuous counterpart of Collide3: it
// uses relative linear velocity (derived from poseL/nextPoseL and
// poseR/nextPoseR over dt) and a TOI bisection to find the first
// impact time, then resolves the manifold at that time. If the
// relative displacement over dt is zero (neither body moves, or both
// move by the same amount), it behaves as the discrete variant.
func CollideContinuous3(shapeL *body.CollisionShape3, poseL, nextPoseL body.Pose3, shapeR *body.CollisionShape3, poseR, nextPoseR body.Pose3, dt float64, cfg config.Config) (*body.Contact3, error) {
	if !shapeL.Enabled || !shapeR.Enabled {
		return nil, ErrNoPrimitives
	}

	relVel := nextPoseL.Position.Sub(poseL.Position).Sub(nextPoseR.Position.Sub(poseR.Position)).Mul(1 / dt)
	if relVel.LenSqr() < 1e-16 {
		return Collide3(shapeL, poseL, shapeR, poseR, cfg)
	}

	found := false
	var best body.Contact3
	var lastErr error
	bestTOI := dt + 1

	for _, pl := range shapeL.Primitives {
		worldPoseL := poseL.Concat(pl.LocalTransform)
		for _, pr := range shapeR.Primitives {
			worldPoseR := poseR.Concat(pr.LocalTransform)

			toi, hit := gjk.TimeOfImpact3(pl.Primitive, worldPoseL, pr.Primitive, worldPoseR, relVel, dt, cfg)
			if !hit {
				continue
			}

			advancedPoseL := worldPoseL
			advancedPoseL.Position = worldPoseL.Position.Add(relVel.Mul(toi))

			var simplex gjk.Simplex3
			if !gjk.Overlap3(pl.Primitive, advancedPoseL, pr.Primitive, worldPoseR, &simplex, cfg) {
				continue
			}
			result, err := epa.Run3(&simplex, pl.Primitive, advancedPoseL, pr.Primitive, worldPoseR, cfg)
			if err != nil {
				lastErr = err
				continue
			}

			if !found || toi < bestTOI {
				found = true
				bestTOI = toi
				best = body.Contact3{
					Strategy:         body.FullResolution,
					Normal:           result.Normal,
					PenetrationDepth: result.PenetrationDepth,
					Point:            result.Point,
				}
			}
		}
	}

	if !found {
		return nil, lastErr
	}
	return &best, nil
}

// Collide2 is the 2D counterpart of Collide3.
func Collide2(shapeL *body.CollisionShape2, poseL body.Pose2, shapeR *body.CollisionShape2, poseR body.Pose2, cfg config.Config) (*body.Contact2, error) {
	if !shapeL.Enabled || !shapeR.Enabled {
		return nil, ErrNoPrimitives
	}

	strategy := body.FullResolution
	if shapeL.Strategy == body.CollisionOnly || shapeR.Strategy == body.CollisionOnly {
		strategy = body.CollisionOnly
	}

	found := false
	var best body.Contact2
	var lastErr error

	for _, pl := range shapeL.Primitives {
		worldPoseL := poseL.Concat(pl.LocalTransform)
		for _, pr := range shapeR.Primitives {
			worldPoseR := poseR.Concat(pr.LocalTransform)

			var simplex gjk.Simplex2
			if !gjk.Overlap2(pl.Primitive, worldPoseL, pr.Primitive, worldPoseR, &simplex, cfg) {
				continue
			}

			if strategy == body.CollisionOnly {
				found = true
				best = body.Contact2{Strategy: body.CollisionOnly}
				continue
			}

			result, err := epa.Run2(simplex.Points[:simplex.Count], pl.Primitive, worldPoseL, pr.Primitive, worldPoseR, cfg)
			if err != nil {
				lastErr = err
				continue
			}

			if !found || result.PenetrationDepth > best.PenetrationDepth {
				found = true
				best = body.Contact2{
					Strategy:         body.FullResolution,
					Normal:           result.Normal,
					PenetrationDepth: result.PenetrationDepth,
					Point:            result.Point,
				}
			}
		}
	}

	if !found {
		return nil, lastErr
	}
	return &best, nil
}

// CollideContinuous2 is the 2D counterpart of CollideContinuous3.
func CollideContinuous2(shapeL *body.CollisionShape2, poseL, nextPoseL body.Pose2, shapeR *body.CollisionShape2, poseR, nextPoseR body.Pose2, dt float64, cfg config.Config) (*body.Contact2, error) {
	if !shapeL.Enabled || !shapeR.Enabled {
		return nil, ErrNoPrimitives
	}

	relVel := nextPoseL.Position.Sub(poseL.Position).Sub(nextPoseR.Position.Sub(poseR.Position)).Mul(1 / dt)
	if relVel.LenSqr() < 1e-16 {
		return Collide2(shapeL, poseL, shapeR, poseR, cfg)
	}

	found := false
	var best body.Contact2
	var lastErr error
	bestTOI := dt + 1

	for _, pl := range shapeL.Primitives {
		worldPoseL := poseL.Concat(pl.LocalTransform)
		for _, pr := range shapeR.Primitives {
			worldPoseR := poseR.Concat(pr.LocalTransform)

			toi, hit := gjk.TimeOfImpact2(pl.Primitive, worldPoseL, pr.Primitive, worldPoseR, relVel, dt, cfg)
			if !hit {
				continue
			}

			advancedPoseL := worldPoseL
			advancedPoseL.Position = worldPoseL.Position.Add(relVel.Mul(toi))

			var simplex gjk.Simplex2
			if !gjk.Overlap2(pl.Primitive, advancedPoseL, pr.Primitive, worldPoseR, &simplex, cfg) {
				continue
			}
			result, err := epa.Run2(simplex.Points[:simplex.Count], pl.Primitive, advancedPoseL, pr.Primitive, worldPoseR, cfg)
			if err != nil {
				lastErr = err
				continue
			}

			if !found || toi < bestTOI {
				found = true
				bestTOI = toi
				best = body.Contact2{
					Strategy:         body.FullResolution,
					Normal:           result.Normal,
					PenetrationDepth: result.PenetrationDepth,
					Point:            result.Point,
				}
			}
		}
	}

	if !found {
		return nil, lastErr
	}
	return &best, nil
}
