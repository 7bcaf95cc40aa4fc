package broadphase

import (
	"github.com/akmonengine/rigidcore/body"
	"github.com/akmonengine/rigidcore/config"
)

type dbvtNode3[Id comparable] struct {
	bound       body.AABB3
	parent      int
	left, right int
	id          Id
	isLeaf      bool
}

// DBVT3 is an incremental dynamic bounding-volume tree over fattened
// 3D AABBs (spec §4.1.3): insertion walks the tree choosing the child
// whose union with the new leaf's fat bound has the smaller surface
// area, and a moved leaf is reinserted only when it has escaped its
// fat bound.
type DBVT3[Id comparable] struct {
	nodes  []dbvtNode3[Id]
	root   int
	leaf   map[Id]int
	margin float64
}

// NewDBVT3 builds an empty tree that fattens leaf AABBs by
// cfg.DBVTMargin so a body can move slightly without forcing a tree
// update every tick.
func NewDBVT3[Id comparable](cfg config.Config) *DBVT3[Id] {
	return &DBVT3[Id]{root: -1, leaf: make(map[Id]int), margin: cfg.DBVTMargin}
}

// Compute rebuilds leaves for the given entries (inserting new ones,
// refitting or reinserting moved ones, removing stale ones) and then
// walks the tree collecting every overlapping leaf pair.
func (t *DBVT3[Id]) Compute(entries []Entry3[Id]) []Pair[Id] {
	seen := make(map[Id]bool, len(entries))
	for _, e := range entries {
		seen[e.ID] = true
		t.update(e.ID, e.Bound)
	}
	for id := range t.leaf {
		if !seen[id] {
			t.remove(id)
		}
	}

	pairs := make([]Pair[Id], 0)
	if t.root < 0 {
		return pairs
	}
	visited := make(map[Id]bool, len(t.leaf))
	for id, idx := range t.leaf {
		t.query(t.root, t.nodes[idx].bound, func(other int) {
			otherID := t.nodes[other].id
			if otherID != id && !visited[otherID] {
				pairs = append(pairs, Pair[Id]{id, otherID})
			}
		})
		visited[id] = true
	}
	return pairs
}

func (t *DBVT3[Id]) update(id Id, bound body.AABB3) {
	if idx, ok := t.leaf[id]; ok {
		if t.nodes[idx].bound.Contains(bound) {
			return
		}
		t.remove(id)
	}
	t.insert(id, bound)
}

func (t *DBVT3[Id]) insert(id Id, tight body.AABB3) {
	fat := tight.Expand(t.margin)
	leafIdx := len(t.nodes)
	t.nodes = append(t.nodes, dbvtNode3[Id]{bound: fat, parent: -1, left: -1, right: -1, id: id, isLeaf: true})
	t.leaf[id] = leafIdx

	if t.root < 0 {
		t.root = leafIdx
		return
	}

	sibling := t.root
	for !t.nodes[sibling].isLeaf {
		left, right := t.nodes[sibling].left, t.nodes[sibling].right
		costLeft := t.nodes[left].bound.Union(fat).SurfaceArea()
		costRight := t.nodes[right].bound.Union(fat).SurfaceArea()
		if costLeft < costRight {
			sibling = left
		} else {
			sibling = right
		}
	}

	oldParent := t.nodes[sibling].parent
	newParentIdx := len(t.nodes)
	newParent := dbvtNode3[Id]{
		bound:  t.nodes[sibling].bound.Union(fat),
		parent: oldParent,
		left:   sibling,
		right:  leafIdx,
	}
	t.nodes = append(t.nodes, newParent)
	t.nodes[sibling].parent = newParentIdx
	t.nodes[leafIdx].parent = newParentIdx

	if oldParent < 0 {
		t.root = newParentIdx
	} else if t.nodes[oldParent].left == sibling {
		t.nodes[oldParent].left = newParentIdx
	} else {
		t.nodes[oldParent].right = newParentIdx
	}

	t.refitUp(oldParent)
}

func (t *DBVT3[Id]) refitUp(idx int) {
	for idx >= 0 {
		left, right := t.nodes[idx].left, t.nodes[idx].right
		t.nodes[idx].bound = t.nodes[left].bound.Union(t.nodes[right].bound)
		idx = t.nodes[idx].parent
	}
}

func (t *DBVT3[Id]) remove(id Id) {
	idx, ok := t.leaf[id]
	if !ok {
		return
	}
	delete(t.leaf, id)
	parent := t.nodes[idx].parent
	if parent < 0 {
		t.root = -1
		return
	}
	grandparent := t.nodes[parent].parent
	var sibling int
	if t.nodes[parent].left == idx {
		sibling = t.nodes[parent].right
	} else {
		sibling = t.nodes[parent].left
	}
	t.nodes[sibling].parent = grandparent
	if grandparent < 0 {
		t.root = sibling
	} else if t.nodes[grandparent].left == parent {
		t.nodes[grandparent].left = sibling
	} else {
		t.nodes[grandparent].right = sibling
	}
	t.refitUp(grandparent)
}

func (t *DBVT3[Id]) query(idx int, bound body.AABB3, visit func(leaf int)) {
	if idx < 0 || !t.nodes[idx].bound.Overlaps(bound) {
		return
	}
	if t.nodes[idx].isLeaf {
		visit(idx)
		return
	}
	t.query(t.nodes[idx].left, bound, visit)
	t.query(t.nodes[idx].right, bound, visit)
}

// DBVT2 is the 2D counterpart of DBVT3.
type dbvtNode2[Id comparable] struct {
	bound       body.AABB2
	parent      int
	left, right int
	id          Id
	isLeaf      bool
}

type DBVT2[Id comparable] struct {
	nodes  []dbvtNode2[Id]
	root   int
	leaf   map[Id]int
	margin float64
}

// NewDBVT2 is the 2D counterpart of NewDBVT3.
func NewDBVT2[Id comparable](cfg config.Config) *DBVT2[Id] {
	return &DBVT2[Id]{root: -1, leaf: make(map[Id]int), margin: cfg.DBVTMargin}
}

func (t *DBVT2[Id]) Compute(entries []Entry2[Id]) []Pair[Id] {
	seen := make(map[Id]bool, len(entries))
	for _, e := range entries {
		seen[e.ID] = true
		t.update(e.ID, e.Bound)
	}
	for id := range t.leaf {
		if !seen[id] {
			t.remove(id)
		}
	}

	pairs := make([]Pair[Id], 0)
	if t.root < 0 {
		return pairs
	}
	visited := make(map[Id]bool, len(t.leaf))
	for id, idx := range t.leaf {
		t.query(t.root, t.nodes[idx].bound, func(other int) {
			otherID := t.nodes[other].id
			if otherID != id && !visited[otherID] {
				pairs = append(pairs, Pair[Id]{id, otherID})
			}
		})
		visited[id] = true
	}
	return pairs
}

func (t *DBVT2[Id]) update(id Id, bound body.AABB2) {
	if idx, ok := t.leaf[id]; ok {
		if t.nodes[idx].bound.Contains(bound) {
			return
		}
		t.remove(id)
	}
	t.insert(id, bound)
}

func (t *DBVT2[Id]) insert(id Id, tight body.AABB2) {
	fat := tight.Expand(t.margin)
	leafIdx := len(t.nodes)
	t.nodes = append(t.nodes, dbvtNode2[Id]{bound: fat, parent: -1, left: -1, right: -1, id: id, isLeaf: true})
	t.leaf[id] = leafIdx

	if t.root < 0 {
		t.root = leafIdx
		return
	}

	sibling := t.root
	for !t.nodes[sibling].isLeaf {
		left, right := t.nodes[sibling].left, t.nodes[sibling].right
		costLeft := t.nodes[left].bound.Union(fat).SurfaceArea()
		costRight := t.nodes[right].bound.Union(fat).SurfaceArea()
		if costLeft < costRight {
			sibling = left
		} else {
			sibling = right
		}
	}

	oldParent := t.nodes[sibling].parent
	newParentIdx := len(t.nodes)
	newParent := dbvtNode2[Id]{
		bound:  t.nodes[sibling].bound.Union(fat),
		parent: oldParent,
		left:   sibling,
		right:  leafIdx,
	}
	t.nodes = append(t.nodes, newParent)
	t.nodes[sibling].parent = newParentIdx
	t.nodes[leafIdx].parent = newParentIdx

	if oldParent < 0 {
		t.root = newParentIdx
	} else if t.nodes[oldParent].left == sibling {
		t.nodes[oldParent].left = newParentIdx
	} else {
		t.nodes[oldParent].right = newParentIdx
	}

	t.refitUp(oldParent)
}

func (t *DBVT2[Id]) refitUp(idx int) {
	for idx >= 0 {
		left, right := t.nodes[idx].left, t.nodes[idx].right
		t.nodes[idx].bound = t.nodes[left].bound.Union(t.nodes[right].bound)
		idx = t.nodes[idx].parent
	}
}

func (t *DBVT2[Id]) remove(id Id) {
	idx, ok := t.leaf[id]
	if !ok {
		return
	}
	delete(t.leaf, id)
	parent := t.nodes[idx].parent
	if parent < 0 {
		t.root = -1
		return
	}
	grandparent := t.nodes[parent].parent
	var sibling int
	if t.nodes[parent].left == idx {
		sibling = t.nodes[parent].right
	} else {
		sibling = t.nodes[parent].left
	}
	t.nodes[sibling].parent = grandparent
	if grandparent < 0 {
		t.root = sibling
	} else if t.nodes[grandparent].left == parent {
		t.nodes[grandparent].left = sibling
	} else {
		t.nodes[grandparent].right = sibling
	}
	t.refitUp(grandparent)
}

func (t *DBVT2[Id]) query(idx int, bound body.AABB2, visit func(leaf int)) {
	if idx < 0 || !t.nodes[idx].bound.Overlaps(bound) {
		return
	}
	if t.nodes[idx].isLeaf {
		visit(idx)
		return
	}
	t.query(t.nodes[idx].left, bound, visit)
	t.query(t.nodes[idx].right, bound, visit)
}
