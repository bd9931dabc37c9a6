package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap. Boxes that merely touch on a face,
// edge or corner count as overlapping.
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// MeshAABB computes the world-space bounding box of a mesh under the given
// transform by mapping every vertex and reducing to per-axis min/max.
// ok is false for a mesh with no vertices, which has no box at all.
func MeshAABB(mesh *Mesh, transform Transform) (aabb AABB, ok bool) {
	vertices := mesh.Vertices()
	if len(vertices) == 0 {
		return AABB{}, false
	}

	world := transform.Apply(vertices[0])
	min := world
	max := world

	for _, vertex := range vertices[1:] {
		world = transform.Apply(vertex)

		min[0] = math.Min(min[0], world[0])
		min[1] = math.Min(min[1], world[1])
		min[2] = math.Min(min[2], world[2])

		max[0] = math.Max(max[0], world[0])
		max[1] = math.Max(max[1], world[1])
		max[2] = math.Max(max[2], world[2])
	}

	return AABB{Min: min, Max: max}, true
}
