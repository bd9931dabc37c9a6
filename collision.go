// Package collide implements boolean collision detection between rigid
// triangle meshes as a two-stage pipeline: a whole-object AABB broad phase
// rejects distant pairs, and a parallel brute-force narrow phase runs the
// 11-axis SAT test over every triangle pair of the survivors, stopping at
// the first hit.
package collide

import (
	"sync/atomic"

	"github.com/Ignitarium-AI/fcl-fork/geom"
	"github.com/Ignitarium-AI/fcl-fork/sat"
)

// BroadPhase performs broad-phase collision detection between two meshes
// under their world transforms. It computes one axis-aligned bounding box
// per transformed mesh and reports whether the boxes overlap on all three
// axes. The test is conservative: a false return guarantees the meshes do
// not intersect, a true return only means they might. A mesh with no
// vertices has no box and never overlaps anything.
func BroadPhase(meshA *geom.Mesh, tfA geom.Transform, meshB *geom.Mesh, tfB geom.Transform) bool {
	boxA, ok := geom.MeshAABB(meshA, tfA)
	if !ok {
		return false
	}
	boxB, ok := geom.MeshAABB(meshB, tfB)
	if !ok {
		return false
	}
	return boxA.Overlaps(boxB)
}

// NarrowPhase scans every (triangle of A, triangle of B) pair and reports
// whether any pair intersects under the SAT test. The flattened pair index
// space is chunked across workers goroutines; a shared atomic flag lets
// workers skip remaining pairs once a hit is found. The result is an OR
// over per-pair outcomes, so it does not depend on scheduling or on how
// quickly the flag becomes visible: late writers only repeat the same
// idempotent store.
func NarrowPhase(meshA *geom.Mesh, tfA geom.Transform, meshB *geom.Mesh, tfB geom.Transform, workers int, eps float64) bool {
	numB := meshB.NumTriangles()
	total := meshA.NumTriangles() * numB
	if total == 0 {
		return false
	}

	var found atomic.Bool
	parallelRange(workers, total, func(from, to int) {
		for k := from; k < to; k++ {
			if found.Load() {
				return
			}

			u := meshA.WorldTriangle(k/numB, tfA)
			v := meshB.WorldTriangle(k%numB, tfB)

			if sat.TriTriIntersectEps(u[0], u[1], u[2], v[0], v[1], v[2], eps) {
				found.Store(true)
				return
			}
		}
	})

	return found.Load()
}

// countPairs counts intersecting triangle pairs, stopping early once max
// pairs have been seen. max <= 0 counts the full iteration space. Workers
// racing past the cap can overshoot the counter, so the result is clamped.
func countPairs(meshA *geom.Mesh, tfA geom.Transform, meshB *geom.Mesh, tfB geom.Transform, workers int, eps float64, max int) int {
	numB := meshB.NumTriangles()
	total := meshA.NumTriangles() * numB
	if total == 0 {
		return 0
	}

	var count atomic.Int64
	parallelRange(workers, total, func(from, to int) {
		for k := from; k < to; k++ {
			if max > 0 && count.Load() >= int64(max) {
				return
			}

			u := meshA.WorldTriangle(k/numB, tfA)
			v := meshB.WorldTriangle(k%numB, tfB)

			if sat.TriTriIntersectEps(u[0], u[1], u[2], v[0], v[1], v[2], eps) {
				count.Add(1)
			}
		}
	})

	n := count.Load()
	if max > 0 && n > int64(max) {
		n = int64(max)
	}
	return int(n)
}
