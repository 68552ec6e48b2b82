package assets

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const ManifestFile = "manifest.yaml"

// Entry points an asset id at one cell of a tileset image.
type Entry struct {
	Image string `yaml:"image"`
	Index int    `yaml:"index"`
	TileW int    `yaml:"tile_w"`
	TileH int    `yaml:"tile_h"`
}

type Manifest struct {
	DefaultAssetWidth int              `yaml:"default_asset_width"`
	Assets            map[string]Entry `yaml:"assets"`
}

func LoadManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: unmarshal manifest: %w", err)
	}
	if m.DefaultAssetWidth <= 0 {
		return nil, fmt.Errorf("assets: invalid default_asset_width %d", m.DefaultAssetWidth)
	}
	for id, e := range m.Assets {
		if e.Image == "" {
			return nil, fmt.Errorf("assets: asset %q has no image", id)
		}
		if e.Index < 0 {
			return nil, fmt.Errorf("assets: asset %q has negative index %d", id, e.Index)
		}
	}
	return &m, nil
}
