package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLevel(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const goodLevel = `{
  "spawnPos": {"x": "2", "y": "3"},
  "levelIndex": 4,
  "hasWalls": "true",
  "staticTiles": [["null", "grass"], ["dirt", "null"]],
  "dynamicTiles": []
}`

func TestRunValidate(t *testing.T) {
	res, err := newResolver(true)
	if err != nil {
		t.Fatalf("newResolver: %v", err)
	}
	dir := t.TempDir()
	good := writeLevel(t, dir, "good.json", goodLevel)
	noWalls := writeLevel(t, dir, "no_walls.json", `{"spawnPos":{"x":"0","y":"0"},"levelIndex":1,"staticTiles":[],"dynamicTiles":[]}`)
	unknown := writeLevel(t, dir, "unknown.json", strings.Replace(goodLevel, `"grass"`, `"unknownAsset"`, 1))
	broken := writeLevel(t, dir, "broken.json", `{`)

	cases := []struct {
		name    string
		paths   []string
		wantErr bool
		want    []string
	}{
		{"all_good", []string{good}, false, []string{"ok   " + good, "1 checked, 0 failed"}},
		{"missing_key", []string{good, noWalls}, true, []string{"FAIL " + noWalls, "hasWalls", "2 checked, 1 failed"}},
		{"unknown_asset", []string{unknown}, true, []string{"FAIL " + unknown, "unknownAsset"}},
		{"bad_json", []string{broken}, true, []string{"FAIL " + broken}},
		{"missing_file", []string{filepath.Join(dir, "nope.json")}, true, []string{"reading level"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runValidate(&out, res, c.paths)
			if c.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v, got %v", c.wantErr, err)
			}
			if err != nil && !errors.Is(err, errInvalidLevels) {
				t.Fatalf("unexpected error %v", err)
			}
			for _, s := range c.want {
				if !strings.Contains(out.String(), s) {
					t.Fatalf("output missing %q:\n%s", s, out.String())
				}
			}
		})
	}
}

func TestRunInspect(t *testing.T) {
	res, err := newResolver(true)
	if err != nil {
		t.Fatalf("newResolver: %v", err)
	}
	path := writeLevel(t, t.TempDir(), "good.json", goodLevel)

	var out bytes.Buffer
	if err := runInspect(&out, res, path); err != nil {
		t.Fatalf("runInspect: %v", err)
	}
	for _, s := range []string{"Index:         4", "Static tiles:  2", "Dynamic tiles: 0", "Spawn:         (2, 3)", "Has walls:     true"} {
		if !strings.Contains(out.String(), s) {
			t.Fatalf("output missing %q:\n%s", s, out.String())
		}
	}
}
