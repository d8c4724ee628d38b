package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is the craft hull: an oriented box given by its half-extents.
// It caches the world AABB of the last transform it was fitted to.
type Box struct {
	HalfExtents mgl64.Vec3
	aabb        AABB
}

// ComputeAABB fits the cached bounds to the box placed at transform.
// Each world half-extent is the sum of the local ones projected on that world axis.
func (b *Box) ComputeAABB(transform Transform) {
	rotation := transform.Rotation.Mat4().Mat3()

	var reach mgl64.Vec3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			reach[row] += math.Abs(rotation.At(row, col)) * b.HalfExtents[col]
		}
	}

	b.aabb = AABB{
		Min: transform.Position.Sub(reach),
		Max: transform.Position.Add(reach),
	}
}

func (b *Box) GetAABB() AABB {
	return b.aabb
}
