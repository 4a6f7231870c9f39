package tilemap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MapEntry is a map file discovered in a maps directory.
type MapEntry struct {
	Name string // file name without extension
	Path string
}

// ScanMapDirectory lists the JSON map files in dir, sorted by name.
func ScanMapDirectory(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}

		maps = append(maps, MapEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Name < maps[j].Name })
	return maps, nil
}

// Resolve finds a map by name in dir. A name that is already a path to a
// file is returned unchanged.
func Resolve(dir, name string) (string, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}
	maps, err := ScanMapDirectory(dir)
	if err != nil {
		return "", err
	}
	for _, m := range maps {
		if m.Name == name {
			return m.Path, nil
		}
	}
	return "", fmt.Errorf("map %q not found in %s", name, dir)
}

// Open loads the map named by ref: a file path or a name in dir. An empty
// ref yields DefaultMap.
func Open(dir, ref string) (*Map, error) {
	if ref == "" {
		return DefaultMap(), nil
	}
	path, err := Resolve(dir, ref)
	if err != nil {
		return nil, err
	}
	return LoadMap(path)
}
