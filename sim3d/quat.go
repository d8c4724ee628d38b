package sim3d

import "github.com/go-gl/mathgl/mgl64"

// FromAxisAngle returns the rotation of angle radians around axis.
// A zero axis yields the identity.
func FromAxisAngle(axis mgl64.Vec3, angle float64) mgl64.Quat {
	if axis.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(angle, axis.Normalize())
}

// ApplyLocalAngular composes the rotation omegaDt (angular velocity times dt, local frame)
// onto rot, and renormalizes the result.
func ApplyLocalAngular(rot mgl64.Quat, omegaDt mgl64.Vec3) mgl64.Quat {
	mag := omegaDt.Len()
	if mag == 0 {
		return rot
	}
	return rot.Mul(FromAxisAngle(omegaDt, mag)).Normalize()
}

// ToWorld rotates a local vector into the world frame
func ToWorld(rot mgl64.Quat, local mgl64.Vec3) mgl64.Vec3 {
	return rot.Rotate(local)
}

// ToLocal rotates a world vector into the local frame of rot
func ToLocal(rot mgl64.Quat, world mgl64.Vec3) mgl64.Vec3 {
	return rot.Conjugate().Rotate(world)
}
