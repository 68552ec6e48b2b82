package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/common"
)

// Node is anything that can be placed in the scene graph.
type Node interface {
	Position() common.Pos2
	Draw(dst *ebiten.Image, origin common.Pos2)
}

// Container is a nestable node holding child nodes.
type Container interface {
	Node
	AddChild(n Node)
	SetOffset(x, y int)
	Children() []Node
}

// Surface is what a level attaches itself to. The host owns it.
type Surface interface {
	NewContainer() Container
	AddChild(n Node)
}
