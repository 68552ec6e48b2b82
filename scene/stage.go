package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/common"
)

// Stage is the root of the scene graph and the Surface handed to levels.
type Stage struct {
	root *Group
}

func NewStage() *Stage {
	return &Stage{root: NewGroup()}
}

// NewContainer returns an empty, unattached container. A nil stage has no
// containers to give.
func (s *Stage) NewContainer() Container {
	if s == nil {
		return nil
	}
	return NewGroup()
}

func (s *Stage) AddChild(n Node) {
	if s == nil {
		return
	}
	s.root.AddChild(n)
}

func (s *Stage) Children() []Node {
	if s == nil {
		return nil
	}
	return s.root.Children()
}

// Draw renders every attached node onto screen.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s == nil {
		return
	}
	s.root.Draw(screen, common.Pos2{})
}
