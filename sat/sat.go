// Package sat implements exact triangle-triangle intersection via the
// Separating Axis Theorem (SAT).
//
// Two convex shapes are disjoint if and only if there exists an axis on
// which their projections do not overlap. For a pair of triangles the
// candidate axes reduce to 11: the two face normals and the nine cross
// products of one edge from each triangle. If every candidate axis shows
// overlapping projections, the triangles intersect.
//
// The test only ever disproves intersection by finding a strict gap, so
// triangles that merely touch (shared vertex, coincident edge) report
// intersection. Degenerate zero-area triangles produce near-zero candidate
// axes, which carry no separating information and are skipped; such
// triangles may therefore over-report overlap. That conservative bias is
// intentional: a collision query must never miss a true contact.
//
// References:
//   - Gottschalk, Lin, Manocha: "OBBTree: A Hierarchical Structure for
//     Rapid Interference Detection" (1996)
//   - Ericson: "Real-Time Collision Detection" (2005), ch. 5
package sat

import "github.com/go-gl/mathgl/mgl64"

// DefaultEpsilon is the squared-norm threshold below which a candidate
// axis is treated as degenerate. Tunable through the ...Eps variants.
const DefaultEpsilon = 1e-8

// OverlapOnAxis projects both triangles onto the axis and reports whether
// the projected intervals overlap, using DefaultEpsilon for the
// degenerate-axis check.
func OverlapOnAxis(axis mgl64.Vec3, u, v [3]mgl64.Vec3) bool {
	return OverlapOnAxisEps(axis, u, v, DefaultEpsilon)
}

// OverlapOnAxisEps projects both triangles onto the axis and reports
// whether the projected [min,max] intervals overlap. Intervals touching at
// an endpoint count as overlapping. A near-zero axis (squared norm below
// eps) cannot separate anything and reports overlap.
func OverlapOnAxisEps(axis mgl64.Vec3, u, v [3]mgl64.Vec3, eps float64) bool {
	if axis.LenSqr() < eps {
		return true
	}

	minU := axis.Dot(u[0])
	maxU := minU
	for i := 1; i < 3; i++ {
		projection := axis.Dot(u[i])
		if projection < minU {
			minU = projection
		}
		if projection > maxU {
			maxU = projection
		}
	}

	minV := axis.Dot(v[0])
	maxV := minV
	for i := 1; i < 3; i++ {
		projection := axis.Dot(v[i])
		if projection < minV {
			minV = projection
		}
		if projection > maxV {
			maxV = projection
		}
	}

	// A strict gap on this axis separates the triangles.
	return !(maxU < minV || maxV < minU)
}

// TriTriIntersect reports whether two triangles, given by their world-space
// vertices, intersect. Uses DefaultEpsilon.
func TriTriIntersect(u0, u1, u2, v0, v1, v2 mgl64.Vec3) bool {
	return TriTriIntersectEps(u0, u1, u2, v0, v1, v2, DefaultEpsilon)
}

// TriTriIntersectEps is TriTriIntersect with an explicit degenerate-axis
// epsilon. It short-circuits false on the first separating axis found; the
// face normals are tested first because they are cheapest and most often
// sufficient.
func TriTriIntersectEps(u0, u1, u2, v0, v1, v2 mgl64.Vec3, eps float64) bool {
	u := [3]mgl64.Vec3{u0, u1, u2}
	v := [3]mgl64.Vec3{v0, v1, v2}

	edgeU := [3]mgl64.Vec3{u1.Sub(u0), u2.Sub(u1), u0.Sub(u2)}
	edgeV := [3]mgl64.Vec3{v1.Sub(v0), v2.Sub(v1), v0.Sub(v2)}

	normalU := edgeU[0].Cross(edgeU[1])
	if !OverlapOnAxisEps(normalU, u, v, eps) {
		return false
	}

	normalV := edgeV[0].Cross(edgeV[1])
	if !OverlapOnAxisEps(normalV, u, v, eps) {
		return false
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := edgeU[i].Cross(edgeV[j])
			if !OverlapOnAxisEps(axis, u, v, eps) {
				return false
			}
		}
	}

	return true
}
