package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tilegame/levels"
	"github.com/milk9111/tilegame/scene"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool

	levelName string
	loader    *levels.Loader
	logger    *slog.Logger
	watcher   *levels.Watcher

	stage *scene.Stage
	level *levels.GameLevel
}

func NewGame(levelName string, assets levels.AssetResolver, logger *slog.Logger, debug bool) *Game {
	g := &Game{
		debug:     debug,
		levelName: levelName,
		loader:    levels.NewLoader(assets, logger),
		logger:    logger,
		stage:     scene.NewStage(),
	}
	g.reload()
	return g
}

// Watch reloads the current level whenever its file in one of dirs changes.
func (g *Game) Watch(dirs ...string) error {
	w, err := levels.NewWatcher(dirs...)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// reload swaps in a freshly built stage. A level that fails to load keeps the
// previous one on screen.
func (g *Game) reload() {
	raw, err := levels.ReadDocument(g.levelName)
	if err != nil {
		g.logger.Error("failed to read level", "level", g.levelName, "error", err)
		return
	}
	lvl := g.loader.LoadGameLevel(raw)
	if lvl == nil {
		return
	}

	stage := scene.NewStage()
	if err := lvl.ConstructScene(stage); err != nil {
		g.logger.Error("failed to construct scene", "level", g.levelName, "error", err)
		return
	}
	g.stage = stage
	g.level = lvl
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher == nil {
		return nil
	}
	select {
	case name, ok := <-g.watcher.Events:
		if ok && filepath.Base(name) == path.Base(levels.FileName(g.levelName)) {
			g.logger.Info("level changed on disk, reloading", "file", name)
			g.reload()
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("level watcher error", "error", err)
		}
	default:
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.stage.Draw(screen)

	if g.level != nil {
		w := g.loader.Assets.DefaultAssetWidth()
		p := g.level.SpawnPos().Scale(w)
		x := float32(p.X + levels.SceneMargin)
		y := float32(p.Y + levels.SceneMargin)
		vector.StrokeRect(screen, x, y, float32(w), float32(w), 2, color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}, false)
	}

	if g.debug {
		tiles := 0
		if g.level != nil {
			tiles = len(g.level.StaticTiles())
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Tiles: %d", g.frames, ebiten.ActualFPS(), tiles))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
