package broadphase

import (
	"math"
	"sort"
)

// cellKey3 is a cell coordinate in the uniform grid.
type cellKey3 struct{ x, y, z int }

// SpatialHash3 is a uniform hashed-grid broad phase for 3D: every
// body is inserted into every cell its AABB overlaps, and candidate
// pairs are harvested per cell. Not named by the narrow spec, but kept
// as a supplemental engine since it suits scenes with roughly uniform
// body size better than Sweep-and-Prune's global sort. Grounded on
// the teacher's spatialgrid.go.
type SpatialHash3[Id comparable] struct {
	CellSize float64
	cells    map[cellKey3][]int
}

func NewSpatialHash3[Id comparable](cellSize float64) *SpatialHash3[Id] {
	return &SpatialHash3[Id]{CellSize: cellSize, cells: make(map[cellKey3][]int)}
}

func (h *SpatialHash3[Id]) worldToCell(v [3]float64) cellKey3 {
	return cellKey3{
		x: int(math.Floor(v[0] / h.CellSize)),
		y: int(math.Floor(v[1] / h.CellSize)),
		z: int(math.Floor(v[2] / h.CellSize)),
	}
}

func (h *SpatialHash3[Id]) Compute(entries []Entry3[Id]) []Pair[Id] {
	for k := range h.cells {
		delete(h.cells, k)
	}

	for i, e := range entries {
		minCell := h.worldToCell([3]float64{e.Bound.Min.X(), e.Bound.Min.Y(), e.Bound.Min.Z()})
		maxCell := h.worldToCell([3]float64{e.Bound.Max.X(), e.Bound.Max.Y(), e.Bound.Max.Z()})
		for x := minCell.x; x <= maxCell.x; x++ {
			for y := minCell.y; y <= maxCell.y; y++ {
				for z := minCell.z; z <= maxCell.z; z++ {
					k := cellKey3{x, y, z}
					h.cells[k] = append(h.cells[k], i)
				}
			}
		}
	}

	seen := make(map[Pair[Id]]bool)
	pairs := make([]Pair[Id], 0)
	for _, indices := range h.cells {
		if len(indices) < 2 {
			continue
		}
		sort.Ints(indices)
		for a := 0; a < len(indices); a++ {
			for b := a + 1; b < len(indices); b++ {
				i, j := indices[a], indices[b]
				if !entries[i].Bound.Overlaps(entries[j].Bound) {
					continue
				}
				p := Pair[Id]{entries[i].ID, entries[j].ID}
				if !seen[p] {
					seen[p] = true
					pairs = append(pairs, p)
				}
			}
		}
	}
	return pairs
}

// cellKey2 is a cell coordinate in the 2D uniform grid.
type cellKey2 struct{ x, y int }

// SpatialHash2 is the 2D counterpart of SpatialHash3.
type SpatialHash2[Id comparable] struct {
	CellSize float64
	cells    map[cellKey2][]int
}

func NewSpatialHash2[Id comparable](cellSize float64) *SpatialHash2[Id] {
	return &SpatialHash2[Id]{CellSize: cellSize, cells: make(map[cellKey2][]int)}
}

func (h *SpatialHash2[Id]) worldToCell(v [2]float64) cellKey2 {
	return cellKey2{
		x: int(math.Floor(v[0] / h.CellSize)),
		y: int(math.Floor(v[1] / h.CellSize)),
	}
}

func (h *SpatialHash2[Id]) Compute(entries []Entry2[Id]) []Pair[Id] {
	for k := range h.cells {
		delete(h.cells, k)
	}

	for i, e := range entries {
		minCell := h.worldToCell([2]float64{e.Bound.Min.X(), e.Bound.Min.Y()})
		maxCell := h.worldToCell([2]float64{e.Bound.Max.X(), e.Bound.Max.Y()})
		for x := minCell.x; x <= maxCell.x; x++ {
			for y := minCell.y; y <= maxCell.y; y++ {
				k := cellKey2{x, y}
				h.cells[k] = append(h.cells[k], i)
			}
		}
	}

	seen := make(map[Pair[Id]]bool)
	pairs := make([]Pair[Id], 0)
	for _, indices := range h.cells {
		if len(indices) < 2 {
			continue
		}
		sort.Ints(indices)
		for a := 0; a < len(indices); a++ {
			for b := a + 1; b < len(indices); b++ {
				i, j := indices[a], indices[b]
				if !entries[i].Bound.Overlaps(entries[j].Bound) {
					continue
				}
				p := Pair[Id]{entries[i].ID, entries[j].ID}
				if !seen[p] {
					seen[p] = true
					pairs = append(pairs, p)
				}
			}
		}
	}
	return pairs
}
