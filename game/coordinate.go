package game

import (
	"cmp"
	"fmt"
)

// Coordinate is a (file, rank) grid position. File indexes columns, rank rows.
type Coordinate struct {
	File int
	Rank int
}

// Directions lists the eight compass neighbours, starting east and turning
// counter-clockwise. Move generation iterates them in this order.
var Directions = [8]Coordinate{
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
}

func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{File: c.File + o.File, Rank: c.Rank + o.Rank}
}

// Scale multiplies both components by k. A negative k walks backwards.
func (c Coordinate) Scale(k int) Coordinate {
	return Coordinate{File: c.File * k, Rank: c.Rank * k}
}

// Compare orders coordinates by file, then rank. The order carries no
// geometric meaning; it only makes coordinates sortable.
func (c Coordinate) Compare(o Coordinate) int {
	if r := cmp.Compare(c.File, o.File); r != 0 {
		return r
	}
	return cmp.Compare(c.Rank, o.Rank)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
}
