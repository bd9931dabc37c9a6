package geom

// Object pairs a mesh with its current world pose. The mesh is shared
// and read-only; only the transform changes between queries.
type Object struct {
	Mesh      *Mesh
	Transform Transform
}

// NewObject creates an object at the given pose
func NewObject(mesh *Mesh, transform Transform) *Object {
	return &Object{
		Mesh:      mesh,
		Transform: transform,
	}
}

// SetTransform replaces the object's world pose
func (o *Object) SetTransform(transform Transform) {
	o.Transform = transform
}

// AABB returns the object's world-space bounding box at its current pose
func (o *Object) AABB() (AABB, bool) {
	return MeshAABB(o.Mesh, o.Transform)
}
