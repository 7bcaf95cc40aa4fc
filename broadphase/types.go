// Package broadphase implements the broad-phase collision candidate
// generators of spec §4.1: BruteForce, Sweep-and-Prune, a DBVT, and a
// supplemental SpatialHash. All four satisfy the same narrow
// capability contract: given { id, world_aabb } entries, emit an
// unordered superset of the pairs whose bounds intersect.
package broadphase

import "github.com/akmonengine/rigidcore/body"

// Pair is an unordered candidate pair of body identifiers.
type Pair[Id comparable] struct {
	A, B Id
}

// Entry3 is one { id, world_aabb } record fed to a 3D BroadPhase3.
type Entry3[Id comparable] struct {
	ID    Id
	Bound body.AABB3
}

// Entry2 is the 2D counterpart of Entry3.
type Entry2[Id comparable] struct {
	ID    Id
	Bound body.AABB2
}

// BroadPhase3 is the capability every 3D broad-phase engine satisfies.
type BroadPhase3[Id comparable] interface {
	Compute(entries []Entry3[Id]) []Pair[Id]
}

// BroadPhase2 is the 2D counterpart of BroadPhase3.
type BroadPhase2[Id comparable] interface {
	Compute(entries []Entry2[Id]) []Pair[Id]
}
