package partition

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Cell is a rectangle of the partition grid in integer grid coordinates.
// The lower-right corner is exclusive, so a 1x1 cell at the origin is
// (0, 0, 1, 1).
type Cell struct {
	UpperLeftX  int
	UpperLeftY  int
	LowerRightX int
	LowerRightY int
}

func (c Cell) Width() int  { return c.LowerRightX - c.UpperLeftX }
func (c Cell) Height() int { return c.LowerRightY - c.UpperLeftY }
func (c Cell) Area() int   { return c.Width() * c.Height() }

// Valid reports whether the cell has positive extent on both axes.
func (c Cell) Valid() bool {
	return c.LowerRightX > c.UpperLeftX && c.LowerRightY > c.UpperLeftY
}

// Contains reports whether grid square (x, y) lies in the cell.
func (c Cell) Contains(x, y int) bool {
	return x >= c.UpperLeftX && x < c.LowerRightX && y >= c.UpperLeftY && y < c.LowerRightY
}

// Bounds maps the cell into world space.
func (c Cell) Bounds(origin r2.Vec, cellLength float64) r2.Box {
	return r2.Box{
		Min: r2.Vec{X: origin.X + float64(c.UpperLeftX)*cellLength, Y: origin.Y + float64(c.UpperLeftY)*cellLength},
		Max: r2.Vec{X: origin.X + float64(c.LowerRightX)*cellLength, Y: origin.Y + float64(c.LowerRightY)*cellLength},
	}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", c.UpperLeftX, c.UpperLeftY, c.LowerRightX, c.LowerRightY)
}
