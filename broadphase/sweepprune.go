package broadphase

import (
	"sort"

	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/logging"
	"github.com/go-gl/mathgl/mgl64"
)

// SweepAndPrune3 is the adaptive-axis Sweep-and-Prune broad phase for
// 3D, grounded on original_source/src/collide/broad/sweep_prune.rs.
// It is NOT reentrant: one instance per broad-phase worker, since it
// carries the sweep axis and variance accumulators across calls.
type SweepAndPrune3[Id comparable] struct {
	sweepAxis int
	csum      mgl64.Vec3
	csumsq    mgl64.Vec3
	Logger    logging.Logger
}

// NewSweepAndPrune3 starts sweeping along axis 0.
func NewSweepAndPrune3[Id comparable]() *SweepAndPrune3[Id] {
	return &SweepAndPrune3[Id]{}
}

func (s *SweepAndPrune3[Id]) Compute(entries []Entry3[Id]) []Pair[Id] {
	pairs := make([]Pair[Id], 0)
	if len(entries) <= 1 {
		return pairs
	}

	logging.Debugf(s.Logger, "sweep and prune: axis=%d n=%d", s.sweepAxis, len(entries))

	axis := s.sweepAxis
	sort.SliceStable(entries, func(i, j int) bool {
		mi, mj := minAxis3(entries[i].Bound, axis), minAxis3(entries[j].Bound, axis)
		if mi != mj {
			return mi < mj
		}
		return maxAxis3(entries[i].Bound, axis) < maxAxis3(entries[j].Bound, axis)
	})

	active := 0
	s.csum = mgl64.Vec3{}
	s.csumsq = mgl64.Vec3{}
	s.accumulate(entries[0].Bound)

	for i := 1; i < len(entries); i++ {
		for active < i && maxAxis3(entries[active].Bound, axis) < minAxis3(entries[i].Bound, axis) {
			active++
		}
		for j := active; j < i; j++ {
			if entries[j].Bound.Overlaps(entries[i].Bound) {
				pairs = append(pairs, Pair[Id]{entries[j].ID, entries[i].ID})
			}
		}
		s.accumulate(entries[i].Bound)
	}

	s.sweepAxis = s.computeAxis(float64(len(entries)))
	logging.Debugf(s.Logger, "sweep and prune: next axis=%d", s.sweepAxis)
	return pairs
}

// accumulate folds the bound's midpoint into the running sum/sum-of-
// squares used for adaptive axis selection. The reference Rust
// implementation discards this update (add_element_wise's result is
// never reassigned); this implementation reassigns explicitly so the
// accumulator actually converges.
func (s *SweepAndPrune3[Id]) accumulate(b body.AABB3) {
	c := b.Min.Add(b.Max).Mul(0.5)
	s.csum = s.csum.Add(c)
	s.csumsq = s.csumsq.Add(mgl64.Vec3{c.X() * c.X(), c.Y() * c.Y(), c.Z() * c.Z()})
}

func (s *SweepAndPrune3[Id]) computeAxis(n float64) int {
	squareN := mgl64.Vec3{s.csum.X() * s.csum.X(), s.csum.Y() * s.csum.Y(), s.csum.Z() * s.csum.Z()}.Mul(1 / n)
	variance := s.csumsq.Sub(squareN)
	axis, best := 0, variance[0]
	for i := 1; i < 3; i++ {
		if variance[i] > best {
			axis, best = i, variance[i]
		}
	}
	return axis
}

func minAxis3(b body.AABB3, axis int) float64 { return b.Min[axis] }
func maxAxis3(b body.AABB3, axis int) float64 { return b.Max[axis] }

// SweepAndPrune2 is the 2D counterpart of SweepAndPrune3.
type SweepAndPrune2[Id comparable] struct {
	sweepAxis int
	csum      mgl64.Vec2
	csumsq    mgl64.Vec2
	Logger    logging.Logger
}

func NewSweepAndPrune2[Id comparable]() *SweepAndPrune2[Id] {
	return &SweepAndPrune2[Id]{}
}

func (s *SweepAndPrune2[Id]) Compute(entries []Entry2[Id]) []Pair[Id] {
	pairs := make([]Pair[Id], 0)
	if len(entries) <= 1 {
		return pairs
	}

	logging.Debugf(s.Logger, "sweep and prune 2d: axis=%d n=%d", s.sweepAxis, len(entries))

	axis := s.sweepAxis
	sort.SliceStable(entries, func(i, j int) bool {
		mi, mj := minAxis2(entries[i].Bound, axis), minAxis2(entries[j].Bound, axis)
		if mi != mj {
			return mi < mj
		}
		return maxAxis2(entries[i].Bound, axis) < maxAxis2(entries[j].Bound, axis)
	})

	active := 0
	s.csum = mgl64.Vec2{}
	s.csumsq = mgl64.Vec2{}
	s.accumulate(entries[0].Bound)

	for i := 1; i < len(entries); i++ {
		for active < i && maxAxis2(entries[active].Bound, axis) < minAxis2(entries[i].Bound, axis) {
			active++
		}
		for j := active; j < i; j++ {
			if entries[j].Bound.Overlaps(entries[i].Bound) {
				pairs = append(pairs, Pair[Id]{entries[j].ID, entries[i].ID})
			}
		}
		s.accumulate(entries[i].Bound)
	}

	s.sweepAxis = s.computeAxis(float64(len(entries)))
	return pairs
}

func (s *SweepAndPrune2[Id]) accumulate(b body.AABB2) {
	c := b.Min.Add(b.Max).Mul(0.5)
	s.csum = s.csum.Add(c)
	s.csumsq = s.csumsq.Add(mgl64.Vec2{c.X() * c.X(), c.Y() * c.Y()})
}

func (s *SweepAndPrune2[Id]) computeAxis(n float64) int {
	squareN := mgl64.Vec2{s.csum.X() * s.csum.X(), s.csum.Y() * s.csum.Y()}.Mul(1 / n)
	variance := s.csumsq.Sub(squareN)
	axis, best := 0, variance[0]
	for i := 1; i < 2; i++ {
		if variance[i] > best {
			axis, best = i, variance[i]
		}
	}
	return axis
}

func minAxis2(b body.AABB2, axis int) float64 { return b.Min[axis] }
func maxAxis2(b body.AABB2, axis int) float64 { return b.Max[axis] }
