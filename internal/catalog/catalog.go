// Package catalog loads the tile classification table the grid consults for
// its blocking and danger predicates.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"galaxy-kernel/internal/grid"
)

// File is the on-disk layout of a tile catalog:
//
//	tiles:
//	  - id: 12
//	    name: nebula
//	    blocks_visibility: true
type File struct {
	Tiles []TileEntry `yaml:"tiles"`
}

type TileEntry struct {
	ID               int    `yaml:"id"`
	Name             string `yaml:"name"`
	BlocksVisibility bool   `yaml:"blocks_visibility"`
	BlocksMovement   bool   `yaml:"blocks_movement"`
	Dangerous        bool   `yaml:"dangerous"`
}

// Catalog classifies tile indices. Unknown tiles are open space.
type Catalog struct {
	classes map[int]grid.TileClass
	names   map[int]string
}

// LoadFile reads and parses a YAML tile catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tile catalog YAML: %w", err)
	}

	c := &Catalog{
		classes: make(map[int]grid.TileClass, len(file.Tiles)),
		names:   make(map[int]string, len(file.Tiles)),
	}
	for _, t := range file.Tiles {
		if t.ID < 0 || t.ID > 0xffff {
			return nil, fmt.Errorf("tile id %d outside 0..65535", t.ID)
		}
		if _, dup := c.classes[t.ID]; dup {
			return nil, fmt.Errorf("tile id %d listed twice", t.ID)
		}
		c.classes[t.ID] = grid.TileClass{
			BlocksVisibility: t.BlocksVisibility,
			BlocksMovement:   t.BlocksMovement,
			Dangerous:        t.Dangerous,
		}
		c.names[t.ID] = t.Name
	}
	return c, nil
}

func (c *Catalog) Classify(tileID int) grid.TileClass {
	return c.classes[tileID]
}

// Name returns the tile's display name, or "" when it is not listed.
func (c *Catalog) Name(tileID int) string {
	return c.names[tileID]
}

func (c *Catalog) Len() int {
	return len(c.classes)
}
