package collide

import (
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Ignitarium-AI/fcl-fork/geom"
	"github.com/Ignitarium-AI/fcl-fork/sat"
)

// DefaultWorkers is the narrow-phase parallelism used when a Detector does
// not set its own.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Detector bundles the tunables of a collision query. The zero value is
// usable: GOMAXPROCS workers, the default SAT epsilon, no logging.
type Detector struct {
	// Workers bounds the number of goroutines scanning triangle pairs.
	Workers int
	// Epsilon is the squared-norm threshold below which a candidate
	// separating axis is ignored as degenerate.
	Epsilon float64
	// Logger receives debug-level query tracing; nil disables it.
	Logger *zap.Logger
}

func (d *Detector) workers() int {
	if d.Workers < 1 {
		return DefaultWorkers
	}
	return d.Workers
}

func (d *Detector) epsilon() float64 {
	if d.Epsilon <= 0 {
		return sat.DefaultEpsilon
	}
	return d.Epsilon
}

func (d *Detector) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Collide reports whether the two meshes, placed by their transforms,
// intersect. Both meshes are validated at the boundary; an out-of-bounds
// triangle index fails the whole query before any geometry work starts.
// The call is deterministic and symmetric in its two operands.
func (d *Detector) Collide(meshA *geom.Mesh, tfA geom.Transform, meshB *geom.Mesh, tfB geom.Transform) (bool, error) {
	if err := validateMeshes(meshA, meshB); err != nil {
		return false, err
	}
	if meshA.NumTriangles() == 0 || meshB.NumTriangles() == 0 {
		return false, nil
	}

	if !BroadPhase(meshA, tfA, meshB, tfB) {
		d.logger().Debug("broad phase rejected pair")
		return false, nil
	}

	hit := NarrowPhase(meshA, tfA, meshB, tfB, d.workers(), d.epsilon())
	d.logger().Debug("narrow phase finished",
		zap.Bool("hit", hit),
		zap.Int("trianglesA", meshA.NumTriangles()),
		zap.Int("trianglesB", meshB.NumTriangles()),
	)
	return hit, nil
}

// CollideObjects is Collide over mesh+pose objects.
func (d *Detector) CollideObjects(a, b *geom.Object) (bool, error) {
	if a == nil || b == nil {
		return false, errors.New("collide: nil object")
	}
	return d.Collide(a.Mesh, a.Transform, b.Mesh, b.Transform)
}

// CollidingPairs counts triangle pairs that intersect, up to max pairs;
// max <= 0 counts them all. Collide is equivalent to CollidingPairs with
// max 1 compared against zero.
func (d *Detector) CollidingPairs(meshA *geom.Mesh, tfA geom.Transform, meshB *geom.Mesh, tfB geom.Transform, max int) (int, error) {
	if err := validateMeshes(meshA, meshB); err != nil {
		return 0, err
	}
	if !BroadPhase(meshA, tfA, meshB, tfB) {
		return 0, nil
	}
	return countPairs(meshA, tfA, meshB, tfB, d.workers(), d.epsilon(), max), nil
}

func validateMeshes(meshA, meshB *geom.Mesh) error {
	if meshA == nil || meshB == nil {
		return errors.New("collide: nil mesh")
	}
	if err := meshA.Validate(); err != nil {
		return errors.Wrap(err, "mesh A")
	}
	if err := meshB.Validate(); err != nil {
		return errors.Wrap(err, "mesh B")
	}
	return nil
}

var defaultDetector Detector

// Collide runs a query with default settings.
func Collide(meshA *geom.Mesh, tfA geom.Transform, meshB *geom.Mesh, tfB geom.Transform) (bool, error) {
	return defaultDetector.Collide(meshA, tfA, meshB, tfB)
}

// CollideObjects runs an object query with default settings.
func CollideObjects(a, b *geom.Object) (bool, error) {
	return defaultDetector.CollideObjects(a, b)
}
