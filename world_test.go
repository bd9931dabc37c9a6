package collide

import (
	"testing"

	"github.com/Ignitarium-AI/fcl-fork/geom"
)

func TestWorldDetectCollisions(t *testing.T) {
	cube := unitCube(t)

	a := geom.NewObject(cube, at(0, 0, 0))
	b := geom.NewObject(cube, at(0.5, 0.5, 0.5))
	far := geom.NewObject(cube, at(20, 0, 0))

	world := NewWorld()
	world.AddBody(a)
	world.AddBody(b)
	world.AddBody(far)

	pairs, err := world.DetectCollisions()
	if err != nil {
		t.Fatal(err)
	}

	if len(pairs) != 1 {
		t.Fatalf("DetectCollisions returned %d pairs, want 1", len(pairs))
	}
	pair := pairs[0]
	if !(pair.A == a && pair.B == b) && !(pair.A == b && pair.B == a) {
		t.Errorf("unexpected pair %+v", pair)
	}
}

func TestWorldRemoveBody(t *testing.T) {
	cube := unitCube(t)

	a := geom.NewObject(cube, at(0, 0, 0))
	b := geom.NewObject(cube, at(0.5, 0, 0))

	world := NewWorld()
	world.AddBody(a)
	world.AddBody(b)
	world.RemoveBody(b)

	pairs, err := world.DetectCollisions()
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 0 {
		t.Errorf("DetectCollisions after removal returned %d pairs, want 0", len(pairs))
	}
}

func TestWorldEvents(t *testing.T) {
	cube := unitCube(t)

	a := geom.NewObject(cube, at(0, 0, 0))
	b := geom.NewObject(cube, at(0.5, 0, 0))

	world := NewWorld()
	world.AddBody(a)
	world.AddBody(b)

	var enters, stays, exits int
	world.Events.Subscribe(COLLISION_ENTER, func(Event) { enters++ })
	world.Events.Subscribe(COLLISION_STAY, func(Event) { stays++ })
	world.Events.Subscribe(COLLISION_EXIT, func(Event) { exits++ })

	// First contact
	if err := world.Step(); err != nil {
		t.Fatal(err)
	}
	if enters != 1 || stays != 0 || exits != 0 {
		t.Fatalf("after step 1: enters=%d stays=%d exits=%d", enters, stays, exits)
	}

	// Still touching
	if err := world.Step(); err != nil {
		t.Fatal(err)
	}
	if enters != 1 || stays != 1 || exits != 0 {
		t.Fatalf("after step 2: enters=%d stays=%d exits=%d", enters, stays, exits)
	}

	// Moved apart
	b.SetTransform(at(10, 0, 0))
	if err := world.Step(); err != nil {
		t.Fatal(err)
	}
	if enters != 1 || stays != 1 || exits != 1 {
		t.Fatalf("after step 3: enters=%d stays=%d exits=%d", enters, stays, exits)
	}
}

func TestWorldEmptyBodies(t *testing.T) {
	world := NewWorld()

	// No bodies at all, and a body with an empty mesh alongside a real one.
	pairs, err := world.DetectCollisions()
	if err != nil || len(pairs) != 0 {
		t.Fatalf("empty world: pairs=%v err=%v", pairs, err)
	}

	empty, err := geom.NewMesh(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	world.AddBody(geom.NewObject(empty, at(0, 0, 0)))
	world.AddBody(geom.NewObject(unitCube(t), at(0, 0, 0)))

	pairs, err = world.DetectCollisions()
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 0 {
		t.Errorf("empty mesh produced %d pairs, want 0", len(pairs))
	}
}

func TestMakePairKeyIsOrderIndependent(t *testing.T) {
	cube := unitCube(t)
	a := geom.NewObject(cube, at(0, 0, 0))
	b := geom.NewObject(cube, at(1, 0, 0))

	if makePairKey(a, b) != makePairKey(b, a) {
		t.Error("pair key must not depend on argument order")
	}
}
