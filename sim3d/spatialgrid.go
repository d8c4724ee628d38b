package sim3d

import (
	"math"

	"github.com/akmonengine/clover/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKey - Coordinates of a cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell - Obstacle indices stored in a cell
type Cell struct {
	indices []int
}

// SpatialGrid - Uniform hashed grid indexing the static obstacles
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int
}

// NewSpatialGrid - numCells is rounded up to a power of two
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].indices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - Stores index in every cell the box covers
func (sg *SpatialGrid) Insert(index int, aabb actor.AABB) {
	sg.visit(aabb, func(cellIdx int) {
		sg.cells[cellIdx].indices = append(sg.cells[cellIdx].indices, index)
	})
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].indices = sg.cells[i].indices[:0]
	}
}

// Query - Calls fn with the index of every obstacle sharing a cell with aabb.
// An index can be reported more than once, and hashing may report far away obstacles.
func (sg *SpatialGrid) Query(aabb actor.AABB, fn func(index int)) {
	sg.visit(aabb, func(cellIdx int) {
		for _, index := range sg.cells[cellIdx].indices {
			fn(index)
		}
	})
}

func (sg *SpatialGrid) visit(aabb actor.AABB, fn func(cellIdx int)) {
	minCell := sg.worldToCell(aabb.Min)
	maxCell := sg.worldToCell(aabb.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				fn(sg.hashCell(CellKey{x, y, z}))
			}
		}
	}
}

// worldToCell - Converts a world position to cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell - Hashes a cell to an index in the array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
