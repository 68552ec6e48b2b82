package assets

import "github.com/hajimehoshi/ebiten/v2"

// ManifestOnly is a resolver that accepts any id listed in the manifest and
// returns no image. It lets headless tools check levels without decoding
// tilesets.
type ManifestOnly struct {
	m *Manager
}

func NewManifestOnly(m *Manager) ManifestOnly {
	return ManifestOnly{m: m}
}

func (r ManifestOnly) Resolve(id string) (*ebiten.Image, error) {
	_, err := r.m.Lookup(id)
	return nil, err
}

func (r ManifestOnly) DefaultAssetWidth() int {
	return r.m.DefaultAssetWidth()
}
