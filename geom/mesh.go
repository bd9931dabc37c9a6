// Package geom provides the geometry vocabulary of the collision pipeline:
// triangle meshes, rigid transforms and axis-aligned bounding boxes.
package geom

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Triangle holds three vertex indices into a mesh's vertex buffer.
// The winding order fixes which two edges form the face normal
// (edge0 = v1-v0, edge1 = v2-v1); the normal's sign is irrelevant to
// the overlap tests.
type Triangle [3]int

// Mesh is an immutable triangle soup: a vertex buffer plus an index
// buffer. A mesh carries no pose of its own; the transform is supplied
// with every query, so one mesh is safe to share across any number of
// concurrent queries.
type Mesh struct {
	vertices  []mgl64.Vec3
	triangles []Triangle
}

// NewMesh builds a mesh from a vertex buffer and an index buffer.
// Every index is validated against the vertex buffer; an out-of-bounds
// index is a data error and is rejected here rather than surfacing as
// a bad memory read deep inside a query.
func NewMesh(vertices []mgl64.Vec3, triangles []Triangle) (*Mesh, error) {
	m := &Mesh{
		vertices:  vertices,
		triangles: triangles,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that every triangle index lies inside the vertex buffer.
func (m *Mesh) Validate() error {
	for i, tri := range m.triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(m.vertices) {
				return errors.Errorf(
					"triangle %d references vertex %d, mesh has %d vertices",
					i, idx, len(m.vertices),
				)
			}
		}
	}
	return nil
}

// Vertices returns the vertex buffer. Callers must not modify it.
func (m *Mesh) Vertices() []mgl64.Vec3 {
	return m.vertices
}

// Triangles returns the index buffer. Callers must not modify it.
func (m *Mesh) Triangles() []Triangle {
	return m.triangles
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.triangles)
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// WorldTriangle returns the three vertices of triangle i mapped into
// world space by the given transform.
func (m *Mesh) WorldTriangle(i int, transform Transform) [3]mgl64.Vec3 {
	tri := m.triangles[i]
	return [3]mgl64.Vec3{
		transform.Apply(m.vertices[tri[0]]),
		transform.Apply(m.vertices[tri[1]]),
		transform.Apply(m.vertices[tri[2]]),
	}
}
