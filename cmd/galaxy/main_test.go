package main

import (
	"testing"

	"galaxy-kernel/internal/coord"
	"galaxy-kernel/internal/galaxy"
	"galaxy-kernel/internal/shared/config"
)

func TestGalaxyOptionsValidate(t *testing.T) {
	opts := galaxyOptions(config.GalaxyConfig{
		Width:         75,
		Height:        75,
		Players:       6,
		SystemSpacing: 12,
		Layout:        "two_rings",
		PirateTier:    2,
		AnomalyTier:   1,
		Seed:          3,
	})
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if opts.Layout != galaxy.LayoutTwoRings || opts.Seed != 3 {
		t.Errorf("options = %+v", opts)
	}
}

func TestLairPositions(t *testing.T) {
	got := lairPositions([]galaxy.Lair{{Position: coord.New(1, 2)}, {Position: coord.New(3, 4)}})
	if len(got) != 2 || got[0] != coord.New(1, 2) || got[1] != coord.New(3, 4) {
		t.Errorf("positions = %v", got)
	}
}
