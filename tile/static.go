package tile

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/common"
)

// StaticTile is terrain or background with no behavior.
type StaticTile struct {
	base
}

func NewStatic(img *ebiten.Image, pos common.Pos2) *StaticTile {
	return &StaticTile{base: base{img: img, pos: pos}}
}
