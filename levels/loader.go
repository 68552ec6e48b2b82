package levels

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var ErrBadIntegrity = errors.New("levels: bad level integrity")

// Loader turns level documents into levels.
type Loader struct {
	Assets AssetResolver
	Logger *slog.Logger
}

func NewLoader(assets AssetResolver, logger *slog.Logger) *Loader {
	return &Loader{Assets: assets, Logger: logger}
}

// Load validates raw and builds a level from it. Failures wrap ErrBadIntegrity
// when a required key is missing, or are a *BuildError.
func (l *Loader) Load(raw any) (*GameLevel, error) {
	doc, ok := asDocument(raw)
	if !ok {
		return nil, fmt.Errorf("%w: not a document (%T)", ErrBadIntegrity, raw)
	}
	if missing := missingKeys(doc); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrBadIntegrity, strings.Join(missing, ", "))
	}
	if l.Assets == nil {
		return nil, &BuildError{Field: "assets", Err: errors.New("no asset resolver")}
	}
	return build(doc, l.Assets)
}

// LoadGameLevel is Load with every failure logged and reported as nil.
func (l *Loader) LoadGameLevel(raw any) *GameLevel {
	logger := l.logger()

	lvl, err := l.Load(raw)
	if errors.Is(err, ErrBadIntegrity) {
		logger.Error("Unable to load game level: bad level integrity", "error", err)
		return nil
	}
	if err != nil {
		logger.Error("Unable to load game level: could not construct level", "error", err)
		return nil
	}

	logger.Debug("Successfully loaded game level",
		"static_tiles", len(lvl.staticTiles),
		"spawn", lvl.spawn.String(),
		"has_walls", lvl.hasWalls,
	)
	return lvl
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

// LoadGameLevel loads raw with the default logger. It returns nil if the
// level could not be loaded.
func LoadGameLevel(raw any, assets AssetResolver) *GameLevel {
	return NewLoader(assets, nil).LoadGameLevel(raw)
}
