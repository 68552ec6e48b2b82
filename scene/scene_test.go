package scene

import (
	"testing"

	"github.com/milk9111/tilegame/common"
)

func TestStageAttachesContainers(t *testing.T) {
	s := NewStage()
	c := s.NewContainer()
	if len(c.Children()) != 0 {
		t.Fatalf("new container should be empty")
	}
	if len(s.Children()) != 0 {
		t.Fatalf("NewContainer must not attach the container")
	}

	c.AddChild(NewSprite(nil, common.NewPos2(32, 0)))
	c.AddChild(NewSprite(nil, common.NewPos2(0, 32)))
	c.SetOffset(64, 64)
	s.AddChild(c)

	if got := len(s.Children()); got != 1 {
		t.Fatalf("expected 1 stage child, got %d", got)
	}
	if c.Position() != common.NewPos2(64, 64) {
		t.Fatalf("unexpected offset %v", c.Position())
	}
	kids := c.Children()
	if len(kids) != 2 || kids[0].Position() != common.NewPos2(32, 0) || kids[1].Position() != common.NewPos2(0, 32) {
		t.Fatalf("children out of order: %v", kids)
	}
}

func TestGroupIgnoresNilChild(t *testing.T) {
	g := NewGroup()
	g.AddChild(nil)
	if len(g.Children()) != 0 {
		t.Fatalf("nil child should be ignored")
	}
}

func TestDrawWithoutTargetIsNoop(t *testing.T) {
	s := NewStage()
	g := NewGroup()
	g.AddChild(NewSprite(nil, common.Pos2{}))
	s.AddChild(g)
	// nil screen and nil images must not panic
	s.Draw(nil)
	g.Draw(nil, common.Pos2{})
}

func TestNilStage(t *testing.T) {
	var s *Stage
	if c := s.NewContainer(); c != nil {
		t.Fatalf("nil stage should not hand out containers, got %T", c)
	}
	s.AddChild(NewGroup())
	if len(s.Children()) != 0 {
		t.Fatalf("nil stage has no children")
	}
	s.Draw(nil)
}
