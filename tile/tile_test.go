package tile

import (
	"testing"

	"github.com/milk9111/tilegame/common"
)

func TestMaterializeKeepsPosition(t *testing.T) {
	cases := []struct {
		name string
		tile Tile
		want common.Pos2
	}{
		{"static", NewStatic(nil, common.NewPos2(32, 64)), common.NewPos2(32, 64)},
		{"dynamic", NewDynamic(nil, common.NewPos2(0, 96)), common.NewPos2(0, 96)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.tile.Pos() != c.want {
				t.Fatalf("expected pos %v, got %v", c.want, c.tile.Pos())
			}
			n := c.tile.Materialize()
			if n == nil {
				t.Fatalf("expected a node")
			}
			if n.Position() != c.want {
				t.Fatalf("node pos %v, want %v", n.Position(), c.want)
			}
		})
	}
}
