package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/milk9111/tilegame/assets"
	"github.com/milk9111/tilegame/levels"
)

var errInvalidLevels = errors.New("one or more levels failed to load")

func newResolver(manifestOnly bool) (levels.AssetResolver, error) {
	m, err := assets.Default()
	if err != nil {
		return nil, err
	}
	if manifestOnly {
		return assets.NewManifestOnly(m), nil
	}
	return m, nil
}

func loadFile(res levels.AssetResolver, path string) (*levels.GameLevel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level: %w", err)
	}
	raw, err := levels.DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	return levels.NewLoader(res, slog.Default()).Load(raw)
}

func runValidate(w io.Writer, res levels.AssetResolver, paths []string) error {
	failed := 0
	for _, path := range paths {
		if _, err := loadFile(res, path); err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(w, "ok   %s\n", path)
	}

	fmt.Fprintf(w, "\n%d checked, %d failed\n", len(paths), failed)
	if failed > 0 {
		return errInvalidLevels
	}
	return nil
}

func runInspect(w io.Writer, res levels.AssetResolver, path string) error {
	lvl, err := loadFile(res, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Level:         %s\n", path)
	fmt.Fprintf(w, "Index:         %v\n", lvl.LevelIndex())
	fmt.Fprintf(w, "Static tiles:  %d\n", len(lvl.StaticTiles()))
	fmt.Fprintf(w, "Dynamic tiles: %d\n", len(lvl.DynamicTiles()))
	fmt.Fprintf(w, "Spawn:         %s\n", lvl.SpawnPos())
	fmt.Fprintf(w, "Has walls:     %t\n", lvl.HasWalls())
	return nil
}
