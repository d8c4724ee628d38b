package actor

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the penetration depth below which two boxes are considered touching, not overlapping.
// It absorbs the rounding left by snapping a body against an obstacle edge.
const Epsilon = 1e-9

// Rect represents a 2D axis-aligned bounding box
type Rect struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// RectFromCenter builds a Rect from its center and half extents
func RectFromCenter(center, halfExtents mgl64.Vec2) Rect {
	return Rect{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// Overlaps checks if two rects overlap with a positive area
func (r Rect) Overlaps(other Rect) bool {
	return r.Max.X()-other.Min.X() > Epsilon && other.Max.X()-r.Min.X() > Epsilon &&
		r.Max.Y()-other.Min.Y() > Epsilon && other.Max.Y()-r.Min.Y() > Epsilon
}

// ContainsPoint checks if a point is inside the rect
func (r Rect) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= r.Min.X() && point.X() <= r.Max.X() &&
		point.Y() >= r.Min.Y() && point.Y() <= r.Max.Y()
}

func (r Rect) Translate(delta mgl64.Vec2) Rect {
	return Rect{Min: r.Min.Add(delta), Max: r.Max.Add(delta)}
}

func (r Rect) Center() mgl64.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() mgl64.Vec2 {
	return r.Max.Sub(r.Min)
}

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

// Overlaps checks if two AABBs overlap with a positive volume
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they penetrate on all three axes
	return a.Max.X()-other.Min.X() > Epsilon && other.Max.X()-a.Min.X() > Epsilon &&
		a.Max.Y()-other.Min.Y() > Epsilon && other.Max.Y()-a.Min.Y() > Epsilon &&
		a.Max.Z()-other.Min.Z() > Epsilon && other.Max.Z()-a.Min.Z() > Epsilon
}

func (a AABB) Translate(delta mgl64.Vec3) AABB {
	return AABB{Min: a.Min.Add(delta), Max: a.Max.Add(delta)}
}
