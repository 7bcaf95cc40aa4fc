// Package rigidcore ties broadphase, the narrow phase, integration,
// and contact resolution into one tick loop. Each substep of Step
// integrates velocities and next poses, commits next → current (which
// refreshes world AABBs), runs the broad phase and then the narrow
// phase on the committed poses, records contact pairs, resolves each
// contact against the committed state, and updates sleep; there is no
// separate commit after resolution. Contact and sleep events are
// flushed once per Step, after the last substep. World is adapted from
// the teacher's own world.go, generalized over a body identifier Id and
// restructured around the single-pass resolver of §4.4 (the teacher's
// separate solvePosition/solveVelocity phases collapse into one
// resolve.Contact3/Contact2 call per contact, since there is no
// compliance parameter to iterate toward convergence).
package rigidcore

import (
	"sync"

	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/broadphase"
	"github.com/akmonengine/rigidcore/config"
	"github.com/akmonengine/rigidcore/events"
	"github.com/akmonengine/rigidcore/integrate"
	"github.com/akmonengine/rigidcore/narrowphase"
	"github.com/akmonengine/rigidcore/pipeline"
	"github.com/akmonengine/rigidcore/resolve"
)

// DefaultWorkers is used whenever World.Workers is left at zero.
const DefaultWorkers = 1

// World3 drives the 3D simulation loop over a set of bodies identified
// by Id. BroadPhase may be any of broadphase.BruteForce3,
// SweepAndPrune3, DBVT3, or SpatialHash3.
type World3[Id comparable] struct {
	Bodies  []*body.RigidBody3[Id]
	Gravity [3]float64

	Substeps   int
	Workers    int
	BroadPhase broadphase.BroadPhase3[Id]
	Config     config.Config

	SleepTimeThreshold     float64
	SleepVelocityThreshold float64

	Events *events.Dispatcher[Id]

	byID map[Id]*body.RigidBody3[Id]
}

// NewWorld3 builds an empty World3 with its event dispatcher ready and
// Config seeded from config.Default().
func NewWorld3[Id comparable](broadPhase broadphase.BroadPhase3[Id]) *World3[Id] {
	return &World3[Id]{
		Substeps:               1,
		Workers:                DefaultWorkers,
		BroadPhase:             broadPhase,
		Config:                 config.Default(),
		SleepTimeThreshold:     0.5,
		SleepVelocityThreshold: 0.01,
		Events:                 events.NewDispatcher[Id](),
		byID:                   make(map[Id]*body.RigidBody3[Id]),
	}
}

// AddBody registers a body with the world.
func (w *World3[Id]) AddBody(b *body.RigidBody3[Id]) {
	w.Bodies = append(w.Bodies, b)
	w.byID[b.ID] = b
}

// RemoveBody deregisters a body from the world.
func (w *World3[Id]) RemoveBody(b *body.RigidBody3[Id]) {
	for i, other := range w.Bodies {
		if other == b {
			w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
			break
		}
	}
	delete(w.byID, b.ID)
}

// Step advances the world by dt, split into Substeps fixed sub-steps.
func (w *World3[Id]) Step(dt float64) {
	if w.Workers < 1 {
		w.Workers = DefaultWorkers
	}
	if w.Substeps < 1 {
		w.Substeps = 1
	}
	h := dt / float64(w.Substeps)

	for i := 0; i < w.Substeps; i++ {
		integrate.Bodies3(w.Bodies, w.Gravity[0], w.Gravity[1], w.Gravity[2], h, w.Workers)
		integrate.Commit3(w.Bodies)

		pairs := w.broadAndNarrow(h)

		for _, p := range pairs {
			w.Events.RecordContact(p.A, p.B)
		}

		for _, p := range pairs {
			a, b := w.byID[p.A], w.byID[p.B]
			if a == nil || b == nil {
				continue
			}
			resolve.Contact3(a, b, p.contact)
		}

		for _, b := range w.Bodies {
			b.TrySleep(h, w.SleepTimeThreshold, w.SleepVelocityThreshold)
		}
	}

	for _, b := range w.Bodies {
		w.Events.RecordSleepState(b.ID, b.IsSleeping)
	}
	w.Events.Flush()
}

type resolvedPair3[Id comparable] struct {
	A, B    Id
	contact body.Contact3
}

// broadAndNarrow runs the broad phase over every body's world AABB,
// then the narrow phase on each candidate pair, returning only pairs
// whose shapes actually overlap.
func (w *World3[Id]) broadAndNarrow(h float64) []resolvedPair3[Id] {
	entries := make([]broadphase.Entry3[Id], 0, len(w.Bodies))
	for _, b := range w.Bodies {
		if b.IsSleeping || b.Shape == nil || !b.Shape.Enabled {
			continue
		}
		entries = append(entries, broadphase.Entry3[Id]{ID: b.ID, Bound: b.Shape.WorldAABB})
	}

	candidates := w.BroadPhase.Compute(entries)
	results := make([]resolvedPair3[Id], 0, len(candidates))
	var mu sync.Mutex

	pipeline.Task(w.Workers, candidates, func(pair broadphase.Pair[Id]) {
		a, b := w.byID[pair.A], w.byID[pair.B]
		if a == nil || b == nil || a.IsStatic() && b.IsStatic() {
			return
		}
		contact, err := narrowphase.Collide3(a.Shape, a.Pose, b.Shape, b.Pose, w.Config)
		if err != nil || contact == nil {
			return
		}
		mu.Lock()
		results = append(results, resolvedPair3[Id]{A: pair.A, B: pair.B, contact: *contact})
		mu.Unlock()
	})

	return results
}

// World2 is the 2D counterpart of World3.
type World2[Id comparable] struct {
	Bodies  []*body.RigidBody2[Id]
	Gravity [2]float64

	Substeps   int
	Workers    int
	BroadPhase broadphase.BroadPhase2[Id]
	Config     config.Config

	SleepTimeThreshold     float64
	SleepVelocityThreshold float64

	Events *events.Dispatcher[Id]

	byID map[Id]*body.RigidBody2[Id]
}

func NewWorld2[Id comparable](broadPhase broadphase.BroadPhase2[Id]) *World2[Id] {
	return &World2[Id]{
		Substeps:               1,
		Workers:                DefaultWorkers,
		BroadPhase:             broadPhase,
		Config:                 config.Default(),
		SleepTimeThreshold:     0.5,
		SleepVelocityThreshold: 0.01,
		Events:                 events.NewDispatcher[Id](),
		byID:                   make(map[Id]*body.RigidBody2[Id]),
	}
}

func (w *World2[Id]) AddBody(b *body.RigidBody2[Id]) {
	w.Bodies = append(w.Bodies, b)
	w.byID[b.ID] = b
}

func (w *World2[Id]) RemoveBody(b *body.RigidBody2[Id]) {
	for i, other := range w.Bodies {
		if other == b {
			w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
			break
		}
	}
	delete(w.byID, b.ID)
}

func (w *World2[Id]) Step(dt float64) {
	if w.Workers < 1 {
		w.Workers = DefaultWorkers
	}
	if w.Substeps < 1 {
		w.Substeps = 1
	}
	h := dt / float64(w.Substeps)

	for i := 0; i < w.Substeps; i++ {
		integrate.Bodies2(w.Bodies, w.Gravity[0], w.Gravity[1], h, w.Workers)
		integrate.Commit2(w.Bodies)

		pairs := w.broadAndNarrow(h)

		for _, p := range pairs {
			w.Events.RecordContact(p.A, p.B)
		}

		for _, p := range pairs {
			a, b := w.byID[p.A], w.byID[p.B]
			if a == nil || b == nil {
				continue
			}
			resolve.Contact2(a, b, p.contact)
		}

		for _, b := range w.Bodies {
			b.TrySleep(h, w.SleepTimeThreshold, w.SleepVelocityThreshold)
		}
	}

	for _, b := range w.Bodies {
		w.Events.RecordSleepState(b.ID, b.IsSleeping)
	}
	w.Events.Flush()
}

type resolvedPair2[Id comparable] struct {
	A, B    Id
	contact body.Contact2
}

func (w *World2[Id]) broadAndNarrow(h float64) []resolvedPair2[Id] {
	entries := make([]broadphase.Entry2[Id], 0, len(w.Bodies))
	for _, b := range w.Bodies {
		if b.IsSleeping || b.Shape == nil || !b.Shape.Enabled {
			continue
		}
		entries = append(entries, broadphase.Entry2[Id]{ID: b.ID, Bound: b.Shape.WorldAABB})
	}

	candidates := w.BroadPhase.Compute(entries)
	results := make([]resolvedPair2[Id], 0, len(candidates))
	var mu sync.Mutex

	pipeline.Task(w.Workers, candidates, func(pair broadphase.Pair[Id]) {
		a, b := w.byID[pair.A], w.byID[pair.B]
		if a == nil || b == nil || a.IsStatic() && b.IsStatic() {
			return
		}
		contact, err := narrowphase.Collide2(a.Shape, a.Pose, b.Shape, b.Pose, w.Config)
		if err != nil || contact == nil {
			return
		}
		mu.Lock()
		results = append(results, resolvedPair2[Id]{A: pair.A, B: pair.B, contact: *contact})
		mu.Unlock()
	})

	return results
}
