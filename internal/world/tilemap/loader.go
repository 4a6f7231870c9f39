package tilemap

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/tilecaster/internal/core/geom"
)

// SpawnPoint is an optional explicit camera start in world units.
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapData is the on-disk map format.
type MapData struct {
	Name        string      `json:"name"`
	Tiles       []string    `json:"tiles"` // rows, row 0 first
	PlayerSpawn *SpawnPoint `json:"player_spawn,omitempty"`
	FacingDeg   float64     `json:"facing_deg"`
}

// Map is a loaded map: its grid plus where the camera starts.
type Map struct {
	Name   string
	Grid   *Grid
	Spawn  geom.Vec2
	Facing geom.Angle
}

// LoadMap reads and validates a JSON map file.
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", mapPath, err)
	}
	return m, nil
}

// ParseMap decodes and validates map JSON.
func ParseMap(data []byte) (*Map, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	grid, err := validateMapData(&mapData)
	if err != nil {
		return nil, err
	}

	spawn, ok := grid.Spawn()
	if mapData.PlayerSpawn != nil {
		spawn = geom.V(mapData.PlayerSpawn.X, mapData.PlayerSpawn.Y)
		ok = true
	}
	if !ok {
		return nil, fmt.Errorf("map %q has no player spawn: %w", mapData.Name, ErrInvalidMap)
	}
	if grid.BlocksPoint(spawn) {
		return nil, fmt.Errorf("player spawn %v is inside a wall: %w", spawn, ErrInvalidMap)
	}

	return &Map{
		Name:   mapData.Name,
		Grid:   grid,
		Spawn:  spawn,
		Facing: geom.FromDegrees(mapData.FacingDeg),
	}, nil
}

// DefaultMap wraps Default() as a Map.
func DefaultMap() *Map {
	g := Default()
	spawn, _ := g.Spawn()
	return &Map{
		Name:   "default",
		Grid:   g,
		Spawn:  spawn,
		Facing: geom.FromRadians(0),
	}
}

// validateMapData checks the tile rows and builds the grid.
func validateMapData(data *MapData) (*Grid, error) {
	if len(data.Tiles) == 0 {
		return nil, fmt.Errorf("map %q has no tiles: %w", data.Name, ErrInvalidMap)
	}

	grid, err := Parse(data.Tiles)
	if err != nil {
		return nil, err
	}

	if err := grid.CheckRing(); err != nil {
		return nil, err
	}

	return grid, nil
}
