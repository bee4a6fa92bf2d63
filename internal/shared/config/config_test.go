package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := load()
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("default configuration should validate: %v", err)
	}
	if cfg.Galaxy.Width != 75 || cfg.Galaxy.Players != 6 {
		t.Errorf("unexpected galaxy defaults: %+v", cfg.Galaxy)
	}
	if !cfg.Simulation.Resume || cfg.Simulation.SaveName != "autosave" {
		t.Errorf("unexpected simulation defaults: %+v", cfg.Simulation)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GALAXY_WIDTH", "120")
	t.Setenv("GALAXY_LAYOUT", "two_rings")
	t.Setenv("GALAXY_SEED", "42")
	t.Setenv("SIM_TURNS_PER_SECOND", "2.5")
	t.Setenv("SIM_RESUME", "false")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := load()
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.Galaxy.Width != 120 {
		t.Errorf("Width = %d, want 120", cfg.Galaxy.Width)
	}
	if cfg.Galaxy.Layout != "two_rings" {
		t.Errorf("Layout = %q, want two_rings", cfg.Galaxy.Layout)
	}
	if cfg.Galaxy.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Galaxy.Seed)
	}
	if cfg.Simulation.TurnsPerSecond != 2.5 {
		t.Errorf("TurnsPerSecond = %v, want 2.5", cfg.Simulation.TurnsPerSecond)
	}
	if cfg.Simulation.Resume {
		t.Error("Resume should be off")
	}
	if dsn := cfg.Database.ConnectionString(); dsn != "host=db.internal port=5432 user=postgres password=postgres dbname=galaxy sslmode=disable" {
		t.Errorf("ConnectionString = %q", dsn)
	}
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("GALAXY_SEED", "not-a-number")
	if _, err := load(); err == nil {
		t.Fatal("expected error for malformed seed")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"map too wide", func(c *Config) { c.Galaxy.Width = 257 }},
		{"one player", func(c *Config) { c.Galaxy.Players = 1 }},
		{"seventeen players", func(c *Config) { c.Galaxy.Players = 17 }},
		{"event chance 100", func(c *Config) { c.Galaxy.PlanetaryEventChance = 100 }},
		{"pirate tier 7", func(c *Config) { c.Galaxy.PirateTier = 7 }},
		{"anomaly tier 3", func(c *Config) { c.Galaxy.AnomalyTier = 3 }},
		{"unknown layout", func(c *Config) { c.Galaxy.Layout = "spiral" }},
		{"too many elders", func(c *Config) { c.Galaxy.ElderCount = c.Galaxy.Players + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := load()
			if err != nil {
				t.Fatalf("load() error = %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
