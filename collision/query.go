package collision

import (
	"slices"

	"github.com/akmonengine/clover/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Obstacle is a static box belonging to one layer
type Obstacle struct {
	Bounds actor.Rect
	Layer  Layer

	mark uint64
}

// Query answers overlap questions against the static obstacles of a level
type Query interface {
	// Overlaps reports whether r overlaps any obstacle of the mask
	Overlaps(r actor.Rect, mask Mask) bool
	// Overlapping returns every obstacle of the mask that r overlaps
	Overlapping(r actor.Rect, mask Mask) []*Obstacle
}

// Probe tentatively moves r by delta and reports whether the destination is free.
// The move is never applied: finalDelta is delta when accepted and zero otherwise.
func Probe(q Query, r actor.Rect, delta mgl64.Vec2, mask Mask) (accepted bool, finalDelta mgl64.Vec2) {
	if q.Overlaps(r.Translate(delta), mask) {
		return false, mgl64.Vec2{}
	}
	return true, delta
}

// Slide moves r by d along a single axis (0 = X, 1 = Y) up to the first obstacle of the mask.
// It returns the displacement that can be applied and whether the move was cut short.
// An obstacle r already overlaps only blocks moves that push r deeper into it,
// so a stuck box can always back out.
func Slide(q Query, r actor.Rect, axis int, d float64, mask Mask) (moved float64, blocked bool) {
	if d == 0 {
		return 0, false
	}

	dest := r.Translate(axisDelta(axis, d))
	hits := q.Overlapping(dest, mask)
	if len(hits) == 0 {
		return d, false
	}

	stuck := q.Overlapping(r, mask)

	allowed := d
	for _, hit := range hits {
		if slices.Contains(stuck, hit) {
			if penetration(dest, hit.Bounds) > penetration(r, hit.Bounds)+actor.Epsilon {
				allowed = 0
				blocked = true
			}
			continue
		}

		blocked = true
		if d > 0 {
			allowed = min(allowed, hit.Bounds.Min[axis]-r.Max[axis])
		} else {
			allowed = max(allowed, hit.Bounds.Max[axis]-r.Min[axis])
		}
	}
	if !blocked {
		return d, false
	}

	if d > 0 {
		allowed = max(allowed, 0)
	} else {
		allowed = min(allowed, 0)
	}

	return allowed, true
}

// penetration is the overlap of a and b along their axis of least overlap
func penetration(a, b actor.Rect) float64 {
	x := min(a.Max.X(), b.Max.X()) - max(a.Min.X(), b.Min.X())
	y := min(a.Max.Y(), b.Max.Y()) - max(a.Min.Y(), b.Min.Y())
	return min(x, y)
}

func axisDelta(axis int, d float64) mgl64.Vec2 {
	var delta mgl64.Vec2
	delta[axis] = d
	return delta
}

// List is a brute force Query over a slice of obstacles
type List []*Obstacle

func (l List) Overlaps(r actor.Rect, mask Mask) bool {
	for _, o := range l {
		if mask.Has(o.Layer) && o.Bounds.Overlaps(r) {
			return true
		}
	}
	return false
}

func (l List) Overlapping(r actor.Rect, mask Mask) []*Obstacle {
	var out []*Obstacle
	for _, o := range l {
		if mask.Has(o.Layer) && o.Bounds.Overlaps(r) {
			out = append(out, o)
		}
	}
	return out
}
