package geom

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a rigid placement in 3D space: a rotation followed
// by a translation. It is a value type; a query never mutates it.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// TranslateTransform creates a transform that only translates
func TranslateTransform(position mgl64.Vec3) Transform {
	return Transform{
		Position: position,
		Rotation: mgl64.QuatIdent(),
	}
}

// RotateTransform creates a transform from an axis-angle rotation, with no translation
func RotateTransform(angle float64, axis mgl64.Vec3) Transform {
	return Transform{
		Rotation: mgl64.QuatRotate(angle, axis),
	}
}

// Apply maps a local-space point to world space: rotate, then translate.
func (t Transform) Apply(point mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(point).Add(t.Position)
}
