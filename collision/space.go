package collision

import (
	"math"

	"github.com/akmonengine/clover/actor"
	"github.com/solarlune/resolv"
)

// Space indexes the obstacles of a level in a resolv cell space.
// The cells give the candidates, the final test is an exact box overlap.
type Space struct {
	space     *resolv.Space
	obstacles []*Obstacle
	stamp     uint64
}

// NewSpace creates a space covering [0, width] x [0, height], split in square cells
func NewSpace(width, height float64, cellSize int) *Space {
	w := int(math.Ceil(width)) + cellSize
	h := int(math.Ceil(height)) + cellSize

	return &Space{
		space: resolv.NewSpace(w, h, cellSize, cellSize),
	}
}

// Add registers a static obstacle
func (s *Space) Add(bounds actor.Rect, layer Layer) *Obstacle {
	size := bounds.Size()
	object := resolv.NewObject(bounds.Min.X(), bounds.Min.Y(), size.X(), size.Y(), layer.String())

	obstacle := &Obstacle{Bounds: bounds, Layer: layer}
	object.Data = obstacle
	s.space.Add(object)
	s.obstacles = append(s.obstacles, obstacle)

	return obstacle
}

// Obstacles returns every registered obstacle, in insertion order
func (s *Space) Obstacles() []*Obstacle {
	return s.obstacles
}

func (s *Space) Overlaps(r actor.Rect, mask Mask) bool {
	return len(s.collect(r, mask, true)) > 0
}

func (s *Space) Overlapping(r actor.Rect, mask Mask) []*Obstacle {
	return s.collect(r, mask, false)
}

func (s *Space) collect(r actor.Rect, mask Mask, first bool) []*Obstacle {
	s.stamp++

	// One cell of margin: resolv registers an object up to its far edge minus one unit
	minX, minY := s.space.WorldToSpace(r.Min.X(), r.Min.Y())
	maxX, maxY := s.space.WorldToSpace(r.Max.X(), r.Max.Y())

	var out []*Obstacle
	for y := minY - 1; y <= maxY+1; y++ {
		for x := minX - 1; x <= maxX+1; x++ {
			cell := s.space.Cell(x, y)
			if cell == nil {
				continue
			}

			for _, object := range cell.Objects {
				obstacle, ok := object.Data.(*Obstacle)
				if !ok || obstacle.mark == s.stamp {
					continue
				}
				obstacle.mark = s.stamp

				if !mask.Has(obstacle.Layer) || !obstacle.Bounds.Overlaps(r) {
					continue
				}
				out = append(out, obstacle)
				if first {
					return out
				}
			}
		}
	}

	return out
}
