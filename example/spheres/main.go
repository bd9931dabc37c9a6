// Two tessellated spheres, three placements: far apart (broad-phase
// reject), a grazing close call, and a deep overlap.
package main

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	collide "github.com/Ignitarium-AI/fcl-fork"
	"github.com/Ignitarium-AI/fcl-fork/geom"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	const radius = 1.5
	mesh := geom.SphereMesh(radius, 24, 24)
	logger.Info("sphere mesh built",
		zap.Int("vertices", mesh.NumVertices()),
		zap.Int("triangles", mesh.NumTriangles()),
	)

	obj1 := geom.NewObject(mesh, geom.NewTransform())
	obj2 := geom.NewObject(mesh, geom.NewTransform())

	detector := collide.Detector{Logger: logger}

	scenarios := []struct {
		name        string
		translation mgl64.Vec3
	}{
		{"far apart", mgl64.Vec3{radius * 2.5, 0, 0}},
		{"close call", mgl64.Vec3{radius * 1.2, radius * 1.2, radius * 1.2}},
		{"deep intersection", mgl64.Vec3{radius * 0.5, 0, 0}},
	}

	for _, scenario := range scenarios {
		obj2.SetTransform(geom.TranslateTransform(scenario.translation))

		hit, err := detector.CollideObjects(obj1, obj2)
		if err != nil {
			logger.Fatal("query failed", zap.String("scenario", scenario.name), zap.Error(err))
		}
		logger.Info("scenario result",
			zap.String("scenario", scenario.name),
			zap.Bool("collision", hit),
		)
	}
}
