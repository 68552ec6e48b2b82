package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownAsset = errors.New("assets: unknown asset")

// Manager resolves asset ids to tile images. Tileset images are decoded once
// and cached by path.
type Manager struct {
	fsys     fs.FS
	manifest *Manifest
	sheets   map[string]*ebiten.Image
}

func NewManager(fsys fs.FS) (*Manager, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("assets: read manifest: %w", err)
	}
	m, err := LoadManifest(data)
	if err != nil {
		return nil, err
	}
	return &Manager{
		fsys:     fsys,
		manifest: m,
		sheets:   make(map[string]*ebiten.Image),
	}, nil
}

var defaultManager = sync.OnceValues(func() (*Manager, error) {
	return NewManager(assetsFS)
})

// Default returns the manager backed by the embedded asset pack.
func Default() (*Manager, error) {
	return defaultManager()
}

func (m *Manager) DefaultAssetWidth() int {
	return m.manifest.DefaultAssetWidth
}

// Lookup returns the manifest entry for id.
func (m *Manager) Lookup(id string) (Entry, error) {
	e, ok := m.manifest.Assets[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w %q", ErrUnknownAsset, id)
	}
	return e, nil
}

// Resolve returns the image for id, cut out of its tileset.
func (m *Manager) Resolve(id string) (*ebiten.Image, error) {
	e, err := m.Lookup(id)
	if err != nil {
		return nil, err
	}
	sheet, err := m.sheet(e.Image)
	if err != nil {
		return nil, err
	}
	b := sheet.Bounds()
	src, err := sourceRect(e, b.Dx(), b.Dy(), m.manifest.DefaultAssetWidth)
	if err != nil {
		return nil, fmt.Errorf("assets: %q: %w", id, err)
	}
	return sheet.SubImage(src.Add(b.Min)).(*ebiten.Image), nil
}

func (m *Manager) sheet(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	if img, ok := m.sheets[clean]; ok {
		return img, nil
	}
	b, err := fs.ReadFile(m.fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	img := ebiten.NewImageFromImage(decoded)
	m.sheets[clean] = img
	return img, nil
}

// sourceRect locates tile e.Index in a row-major tileset of imgW x imgH pixels.
// Zero tile sizes fall back to the default asset width.
func sourceRect(e Entry, imgW, imgH, defaultW int) (image.Rectangle, error) {
	tileW, tileH := e.TileW, e.TileH
	if tileW <= 0 {
		tileW = defaultW
	}
	if tileH <= 0 {
		tileH = defaultW
	}
	tilesX := imgW / tileW
	if tilesX <= 0 {
		return image.Rectangle{}, fmt.Errorf("tileset %s narrower than one tile", e.Image)
	}
	srcX := (e.Index % tilesX) * tileW
	srcY := (e.Index / tilesX) * tileH
	if e.Index < 0 || srcX+tileW > imgW || srcY+tileH > imgH {
		return image.Rectangle{}, fmt.Errorf("tile index %d out of range for %s", e.Index, e.Image)
	}
	return image.Rect(srcX, srcY, srcX+tileW, srcY+tileH), nil
}
