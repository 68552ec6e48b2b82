package common

import "fmt"

// Pos2 is an integer 2D coordinate. It is used for tile placement and spawn points.
type Pos2 struct {
	X int
	Y int
}

func NewPos2(x, y int) Pos2 {
	return Pos2{X: x, Y: y}
}

// Scale multiplies both axes by k, e.g. to turn grid cells into pixels.
func (p Pos2) Scale(k int) Pos2 {
	return Pos2{X: p.X * k, Y: p.Y * k}
}

func (p Pos2) Add(o Pos2) Pos2 {
	return Pos2{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Pos2) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
