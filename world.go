package collide

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Ignitarium-AI/fcl-fork/geom"
)

// Pair is a pair of objects found to be colliding.
type Pair struct {
	A *geom.Object
	B *geom.Object
}

// World holds a set of collision objects and answers which pairs of them
// currently intersect. The broad phase over bodies is a brute-force
// all-pairs AABB sweep; this module deliberately stops short of spatial
// acceleration structures.
type World struct {
	Bodies []*geom.Object
	// Workers bounds the number of pairs checked concurrently.
	Workers int
	// Epsilon overrides the SAT degenerate-axis threshold; 0 keeps the default.
	Epsilon float64
	Logger  *zap.Logger

	Events Events
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		Events: NewEvents(),
	}
}

// AddBody adds a collision object to the world
func (w *World) AddBody(body *geom.Object) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a collision object from the world
func (w *World) RemoveBody(body *geom.Object) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}

	w.Events.forgetBody(body)
}

// DetectCollisions returns every pair of bodies whose surfaces intersect
// at their current poses. Candidate pairs survive an AABB overlap test,
// then run the narrow phase concurrently, bounded by Workers.
func (w *World) DetectCollisions() ([]Pair, error) {
	detector := Detector{Workers: 1, Epsilon: w.Epsilon, Logger: w.Logger}
	workers := max(1, w.Workers)

	// Broad phase: one AABB per body, then all-pairs overlap.
	boxes := make([]geom.AABB, len(w.Bodies))
	valid := make([]bool, len(w.Bodies))
	for i, body := range w.Bodies {
		boxes[i], valid[i] = body.AABB()
	}

	var candidates []Pair
	for i := 0; i < len(w.Bodies); i++ {
		if !valid[i] {
			continue
		}
		for j := i + 1; j < len(w.Bodies); j++ {
			if !valid[j] {
				continue
			}
			if boxes[i].Overlaps(boxes[j]) {
				candidates = append(candidates, Pair{A: w.Bodies[i], B: w.Bodies[j]})
			}
		}
	}

	var mu sync.Mutex
	var pairs []Pair

	var group errgroup.Group
	group.SetLimit(workers)
	for _, candidate := range candidates {
		candidate := candidate
		group.Go(func() error {
			hit, err := detector.CollideObjects(candidate.A, candidate.B)
			if err != nil {
				return err
			}
			if hit {
				mu.Lock()
				pairs = append(pairs, candidate)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// Step runs one detection pass and emits enter/stay/exit events for the
// pairs whose collision state changed since the previous step.
func (w *World) Step() error {
	pairs, err := w.DetectCollisions()
	if err != nil {
		return err
	}

	w.Events.recordCollisions(pairs)
	w.Events.flush()
	return nil
}
