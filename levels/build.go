package levels

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/common"
	"github.com/milk9111/tilegame/tile"
)

// AssetResolver maps asset ids to images. All assets share one width.
type AssetResolver interface {
	Resolve(id string) (*ebiten.Image, error)
	DefaultAssetWidth() int
}

// BuildError is returned when a document passed validation but could not be
// turned into a level.
type BuildError struct {
	Field string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("levels: build %s: %v", e.Field, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// build turns a validated document into a level. It never returns a partial level.
func build(doc Document, res AssetResolver) (lvl *GameLevel, err error) {
	defer func() {
		if r := recover(); r != nil {
			lvl = nil
			err = &BuildError{Field: "document", Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	staticTiles, err := buildStaticTiles(doc[KeyStaticTiles], res)
	if err != nil {
		return nil, err
	}

	// dynamic tiles are not loaded yet
	dynamicTiles := []*tile.DynamicTile{}

	spawn, err := parseSpawnPos(doc[KeySpawnPos])
	if err != nil {
		return nil, err
	}

	lvl = NewGameLevel(staticTiles, dynamicTiles, parseHasWalls(doc[KeyHasWalls]), spawn)
	lvl.levelIndex = doc[KeyLevelIndex]
	return lvl, nil
}

// buildStaticTiles walks the grid row by row; row i is y and column j is x.
// Empty cells produce no tile but still take up a column.
func buildStaticTiles(v any, res AssetResolver) ([]*tile.StaticTile, error) {
	rows, ok := asList(v)
	if !ok {
		return nil, &BuildError{Field: KeyStaticTiles, Err: fmt.Errorf("expected a list of rows, got %T", v)}
	}

	width := res.DefaultAssetWidth()
	var out []*tile.StaticTile
	for i, rawRow := range rows {
		row, ok := asList(rawRow)
		if !ok {
			return nil, &BuildError{
				Field: fmt.Sprintf("%s[%d]", KeyStaticTiles, i),
				Err:   fmt.Errorf("expected a list of cells, got %T", rawRow),
			}
		}
		for j, cell := range row {
			assetID, ok := cell.(string)
			if !ok {
				return nil, &BuildError{
					Field: fmt.Sprintf("%s[%d][%d]", KeyStaticTiles, i, j),
					Err:   fmt.Errorf("expected an asset id, got %T", cell),
				}
			}
			if assetID == EmptyCell {
				continue
			}
			img, err := res.Resolve(assetID)
			if err != nil {
				return nil, &BuildError{Field: fmt.Sprintf("%s[%d][%d]", KeyStaticTiles, i, j), Err: err}
			}
			out = append(out, tile.NewStatic(img, common.NewPos2(j, i).Scale(width)))
		}
	}
	return out, nil
}

func parseSpawnPos(v any) (common.Pos2, error) {
	var x, y any
	switch m := v.(type) {
	case map[string]any:
		x, y = m["x"], m["y"]
	case map[string]string:
		x, y = m["x"], m["y"]
	default:
		return common.Pos2{}, &BuildError{Field: KeySpawnPos, Err: fmt.Errorf("expected an object, got %T", v)}
	}

	px, err := parseIntField(x)
	if err != nil {
		return common.Pos2{}, &BuildError{Field: KeySpawnPos + ".x", Err: err}
	}
	py, err := parseIntField(y)
	if err != nil {
		return common.Pos2{}, &BuildError{Field: KeySpawnPos + ".y", Err: err}
	}
	return common.NewPos2(px, py), nil
}

// parseIntField parses a string-encoded integer.
func parseIntField(v any) (int, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("expected an integer string, got %T", v)
	}
	return strconv.Atoi(s)
}

// parseHasWalls is true only for the exact string "true". A JSON boolean is
// not accepted.
func parseHasWalls(v any) bool {
	s, ok := v.(string)
	return ok && s == "true"
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, l != nil
	case []string:
		if l == nil {
			return nil, false
		}
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	case [][]string:
		if l == nil {
			return nil, false
		}
		out := make([]any, len(l))
		for i, row := range l {
			out[i] = row
		}
		return out, true
	default:
		return nil, false
	}
}
