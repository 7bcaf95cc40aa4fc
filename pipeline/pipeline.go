// Package pipeline provides the worker-pool helper used to
// parallelize integration across disjoint bodies and the World's
// narrow-phase pass over candidate pairs (§5); contact resolution
// does not use it.
//
// The teacher's own pipeline.go declares task(workersCount, dataSize
// int, fn func(start, end int)) but every call site in world.go
// actually invokes it as task(w.Workers, w.Bodies, func(body
// *actor.RigidBody){...}) — a slice and a per-element callback, not a
// size and a range callback. Task here matches the call sites: a
// generic per-element worker pool over a slice.
package pipeline

import "sync"

// Task splits items into workers chunks and runs fn over each
// element concurrently, returning once every element has been
// processed. workers <= 1 or len(items) <= 1 runs inline.
func Task[T any](workers int, items []T, fn func(T)) {
	if workers < 1 {
		workers = 1
	}
	if len(items) == 0 {
		return
	}
	if workers == 1 || len(items) == 1 {
		for _, item := range items {
			fn(item)
		}
		return
	}
	if workers > len(items) {
		workers = len(items)
	}

	var wg sync.WaitGroup
	chunkSize := (len(items) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(chunk []T) {
			defer wg.Done()
			for _, item := range chunk {
				fn(item)
			}
		}(items[start:end])
	}
	wg.Wait()
}
