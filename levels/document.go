package levels

// Document is a decoded, untyped level description.
type Document map[string]any

const (
	KeySpawnPos     = "spawnPos"
	KeyLevelIndex   = "levelIndex"
	KeyHasWalls     = "hasWalls"
	KeyStaticTiles  = "staticTiles"
	KeyDynamicTiles = "dynamicTiles"

	// EmptyCell marks a grid cell with no tile.
	EmptyCell = "null"
)

var requiredKeys = []string{
	KeySpawnPos,
	KeyLevelIndex,
	KeyHasWalls,
	KeyStaticTiles,
	KeyDynamicTiles,
}

// HasGoodIntegrity reports whether raw is a document holding every required
// key. Only presence is checked, not types or values.
func HasGoodIntegrity(raw any) bool {
	doc, ok := asDocument(raw)
	return ok && len(missingKeys(doc)) == 0
}

func missingKeys(doc Document) []string {
	var missing []string
	for _, k := range requiredKeys {
		if _, ok := doc[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

func asDocument(raw any) (Document, bool) {
	switch v := raw.(type) {
	case Document:
		return v, v != nil
	case map[string]any:
		return Document(v), v != nil
	default:
		return nil, false
	}
}
