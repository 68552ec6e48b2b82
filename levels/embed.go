package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// ReadDocument reads levels/<name> from disk if present, falling back to the
// embedded levels. The ".json" extension is optional. The result is decoded
// but not validated.
func ReadDocument(name string) (any, error) {
	clean := FileName(name)
	data, err := os.ReadFile(diskLevelPath(clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", clean, err)
		}
	}
	return DecodeDocument(data)
}

// DecodeDocument decodes raw JSON into the untyped form the loader expects.
func DecodeDocument(data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	return raw, nil
}

// Names lists the embedded level files in order.
func Names() []string {
	matches, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// FileName normalizes a level name to its file name under levels/.
func FileName(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if !strings.HasSuffix(strings.ToLower(s), ".json") {
		s += ".json"
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
