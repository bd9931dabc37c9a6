package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphereMesh tessellates a UV sphere of the given radius into a triangle
// mesh with stacks latitude bands and slices longitude bands. The poles
// produce degenerate triangles; the collision tests tolerate those
// conservatively.
func SphereMesh(radius float64, stacks, slices int) *Mesh {
	vertices := make([]mgl64.Vec3, 0, (stacks+1)*(slices+1))
	triangles := make([]Triangle, 0, 2*stacks*slices)

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2.0 * math.Pi * float64(j) / float64(slices)
			vertices = append(vertices, mgl64.Vec3{
				radius * math.Sin(phi) * math.Cos(theta),
				radius * math.Sin(phi) * math.Sin(theta),
				radius * math.Cos(phi),
			})
		}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			first := i*(slices+1) + j
			second := first + slices + 1

			triangles = append(triangles, Triangle{first, second, first + 1})
			triangles = append(triangles, Triangle{second, second + 1, first + 1})
		}
	}

	// Indices are generated in-range, so validation cannot fail here.
	mesh := &Mesh{vertices: vertices, triangles: triangles}
	return mesh
}
