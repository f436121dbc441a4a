package physics

import (
	"github.com/detersim/determinisk/fixedpoint"
	"github.com/google/btree"
)

// cellCoord is a grid cell's integer coordinate. Ordering is lexicographic
// on (X,Y), matching the spec's iteration-order requirement.
type cellCoord struct {
	X, Y int32
}

func (a cellCoord) less(b cellCoord) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// cellBucket is the btree item stored per occupied cell: the cell's
// coordinate plus the body indices inserted into it, in insertion order.
type cellBucket struct {
	coord   cellCoord
	indices []int
}

func (c *cellBucket) Less(than btree.Item) bool {
	return c.coord.less(than.(*cellBucket).coord)
}

// Grid is the broad-phase spatial index for one tick: a cell coordinate to
// body-index mapping backed by an ordered tree rather than a hash map, so
// iteration is a deterministic function of cell coordinates, never of
// address or seed.
type Grid struct {
	cellSize fixedpoint.Scalar
	cells    *btree.BTree
}

// btreeDegree controls the btree's branching factor; any reasonable value
// gives the same deterministic ordering, it only affects traversal
// constant factors.
const btreeDegree = 32

// BuildGrid constructs a fresh grid from the given bodies. Cell size is
// 2*max_radius across all bodies, recomputed every call; an empty body list
// uses a radius of 1.0 (cell size 2.0) so an empty world still has a
// well-defined (if unused) cell size.
func BuildGrid(circles []Circle) *Grid {
	maxRadius := fixedpoint.One
	for i, c := range circles {
		if i == 0 || c.Radius > maxRadius {
			maxRadius = c.Radius
		}
	}
	cellSize := maxRadius.Mul(fixedpoint.Two)

	g := &Grid{cellSize: cellSize, cells: btree.New(btreeDegree)}
	for idx, c := range circles {
		minCell := cellForPosition(c.Position.Sub(fixedpoint.NewVec2(c.Radius, c.Radius)), cellSize)
		maxCell := cellForPosition(c.Position.Add(fixedpoint.NewVec2(c.Radius, c.Radius)), cellSize)
		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				g.insert(cellCoord{X: x, Y: y}, idx)
			}
		}
	}
	return g
}

func cellForPosition(p fixedpoint.Vec2, cellSize fixedpoint.Scalar) cellCoord {
	return cellCoord{
		X: p.X.Div(cellSize).TruncToInt(),
		Y: p.Y.Div(cellSize).TruncToInt(),
	}
}

func (g *Grid) insert(coord cellCoord, idx int) {
	probe := &cellBucket{coord: coord}
	if existing := g.cells.Get(probe); existing != nil {
		bucket := existing.(*cellBucket)
		bucket.indices = append(bucket.indices, idx)
		return
	}
	g.cells.ReplaceOrInsert(&cellBucket{coord: coord, indices: []int{idx}})
}

// CollisionPairs walks cells in key order and emits every candidate pair
// (i,j), i<j, within each cell, deduplicated across cells. The result is a
// deterministic function of body indices and positions alone.
func (g *Grid) CollisionPairs() [][2]int {
	seen := make(map[[2]int]struct{})
	var pairs [][2]int

	g.cells.Ascend(func(item btree.Item) bool {
		indices := item.(*cellBucket).indices
		for i := 0; i < len(indices); i++ {
			for j := i + 1; j < len(indices); j++ {
				a, b := indices[i], indices[j]
				if a > b {
					a, b = b, a
				}
				key := [2]int{a, b}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				pairs = append(pairs, key)
			}
		}
		return true
	})
	return pairs
}
