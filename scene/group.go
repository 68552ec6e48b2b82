package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/common"
)

// Group is the ebiten-backed Container. Children are drawn in insertion order,
// relative to the group's offset.
type Group struct {
	offset   common.Pos2
	children []Node
}

func NewGroup() *Group {
	return &Group{}
}

func (g *Group) Position() common.Pos2 {
	return g.offset
}

func (g *Group) SetOffset(x, y int) {
	g.offset = common.NewPos2(x, y)
}

func (g *Group) AddChild(n Node) {
	if g == nil || n == nil {
		return
	}
	g.children = append(g.children, n)
}

func (g *Group) Children() []Node {
	if g == nil {
		return nil
	}
	return g.children
}

func (g *Group) Draw(dst *ebiten.Image, origin common.Pos2) {
	if g == nil || dst == nil {
		return
	}
	o := origin.Add(g.offset)
	for _, c := range g.children {
		c.Draw(dst, o)
	}
}
