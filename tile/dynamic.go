package tile

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/common"
)

// DynamicTile is reserved for animated or interactive tiles. Levels do not
// produce any yet; it renders like a static tile.
type DynamicTile struct {
	base
}

func NewDynamic(img *ebiten.Image, pos common.Pos2) *DynamicTile {
	return &DynamicTile{base: base{img: img, pos: pos}}
}
