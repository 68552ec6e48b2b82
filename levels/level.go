package levels

import (
	"errors"

	"github.com/milk9111/tilegame/common"
	"github.com/milk9111/tilegame/scene"
	"github.com/milk9111/tilegame/tile"
)

// SceneMargin offsets the level's container from the surface origin, in pixels.
const SceneMargin = 64

var (
	ErrSceneConstructed = errors.New("levels: scene already constructed")
	ErrNilSurface       = errors.New("levels: nil surface")
)

// GameLevel owns the tiles built from one level document. Its container is
// unset until ConstructScene attaches it to a surface.
type GameLevel struct {
	staticTiles  []*tile.StaticTile
	dynamicTiles []*tile.DynamicTile
	hasWalls     bool
	spawn        common.Pos2
	levelIndex   any

	staticContainer scene.Container
}

func NewGameLevel(staticTiles []*tile.StaticTile, dynamicTiles []*tile.DynamicTile, hasWalls bool, spawn common.Pos2) *GameLevel {
	return &GameLevel{
		staticTiles:  staticTiles,
		dynamicTiles: dynamicTiles,
		hasWalls:     hasWalls,
		spawn:        spawn,
	}
}

// ConstructScene builds a container with one child per static tile, in order,
// offsets it by SceneMargin and adds it to surface. It can only succeed once;
// later calls return ErrSceneConstructed and leave the scene untouched. A nil
// surface, or one that hands out no container, returns ErrNilSurface.
func (l *GameLevel) ConstructScene(surface scene.Surface) error {
	if l.staticContainer != nil {
		return ErrSceneConstructed
	}
	if surface == nil {
		return ErrNilSurface
	}

	c := surface.NewContainer()
	if c == nil {
		return ErrNilSurface
	}
	for _, t := range l.staticTiles {
		c.AddChild(t.Materialize())
	}
	c.SetOffset(SceneMargin, SceneMargin)
	surface.AddChild(c)

	l.staticContainer = c
	return nil
}

// Constructed reports whether ConstructScene has attached the level.
func (l *GameLevel) Constructed() bool {
	return l.staticContainer != nil
}

func (l *GameLevel) StaticTiles() []*tile.StaticTile {
	return l.staticTiles
}

// DynamicTiles is always empty for now.
func (l *GameLevel) DynamicTiles() []*tile.DynamicTile {
	return l.dynamicTiles
}

// HasWalls is parsed from the document but nothing generates walls yet.
func (l *GameLevel) HasWalls() bool {
	return l.hasWalls
}

// SpawnPos is the spawn point in grid cells, as written in the document.
func (l *GameLevel) SpawnPos() common.Pos2 {
	return l.spawn
}

// LevelIndex is the document's levelIndex value, unparsed.
func (l *GameLevel) LevelIndex() any {
	return l.levelIndex
}
