package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/common"
)

// Sprite is a leaf node drawing one image at a pixel position.
type Sprite struct {
	Image *ebiten.Image
	Pos   common.Pos2
}

func NewSprite(img *ebiten.Image, pos common.Pos2) *Sprite {
	return &Sprite{Image: img, Pos: pos}
}

func (s *Sprite) Position() common.Pos2 {
	return s.Pos
}

func (s *Sprite) Draw(dst *ebiten.Image, origin common.Pos2) {
	if s == nil || s.Image == nil || dst == nil {
		return
	}
	p := origin.Add(s.Pos)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	dst.DrawImage(s.Image, op)
}
