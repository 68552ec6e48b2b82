package tile

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/common"
	"github.com/milk9111/tilegame/scene"
)

// Tile has an image and a pixel position and can be placed in a scene.
type Tile interface {
	Image() *ebiten.Image
	Pos() common.Pos2
	Materialize() scene.Node
}

type base struct {
	img *ebiten.Image
	pos common.Pos2
}

func (b base) Image() *ebiten.Image { return b.img }

func (b base) Pos() common.Pos2 { return b.pos }

func (b base) Materialize() scene.Node {
	return scene.NewSprite(b.img, b.pos)
}
