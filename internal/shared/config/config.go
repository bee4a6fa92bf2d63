package config

import (
	"fmt"
	"strconv"
	"time"

	"galaxy-kernel/internal/shared/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Logging    LoggingConfig
	Galaxy     GalaxyConfig
	Simulation SimulationConfig
}

type ServerConfig struct {
	Environment string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

type RedisConfig struct {
	Enabled     bool
	URL         string
	Host        string
	Port        string
	Password    string
	DB          int
	SnapshotTTL time.Duration
}

type LoggingConfig struct {
	Level      string
	Format     string
	JSONFormat bool
}

// GalaxyConfig mirrors the options the generator recognizes
type GalaxyConfig struct {
	Width                int
	Height               int
	Players              int
	SystemSpacing        int
	Layout               string
	RogueTier            int
	PlanetaryEventChance int
	PirateTier           int
	PirateDifficulty     int
	AnomalyTier          int
	KarmaType            int
	KarmaSpeed           int
	ElderHeadStart       int
	ElderCount           int
	Seed                 int64
}

type SimulationConfig struct {
	Turns          int
	TurnsPerSecond float64
	BurstSize      int
	SaveName       string
	CatalogPath    string
	AppName        string
	Resume         bool
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

func load() (*Config, error) {
	galaxy, err := loadGalaxyConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server:     loadServerConfig(),
		Database:   loadDatabaseConfig(),
		Redis:      loadRedisConfig(),
		Logging:    loadLoggingConfig(),
		Galaxy:     galaxy,
		Simulation: loadSimulationConfig(),
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Environment: utils.GetEnv("ENVIRONMENT", "development"),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	maxOpenConns, _ := strconv.Atoi(utils.GetEnv("DB_MAX_OPEN_CONNS", "25"))
	maxIdleConns, _ := strconv.Atoi(utils.GetEnv("DB_MAX_IDLE_CONNS", "5"))
	connMaxLifetime, _ := strconv.Atoi(utils.GetEnv("DB_CONN_MAX_LIFETIME_MINUTES", "5"))

	return DatabaseConfig{
		Enabled:         utils.GetEnv("DB_ENABLED", "false") == "true",
		Host:            utils.GetEnv("DB_HOST", "localhost"),
		Port:            utils.GetEnv("DB_PORT", "5432"),
		User:            utils.GetEnv("DB_USER", "postgres"),
		Password:        utils.GetEnv("DB_PASSWORD", "postgres"),
		Name:            utils.GetEnv("DB_NAME", "galaxy"),
		SSLMode:         utils.GetEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: time.Duration(connMaxLifetime) * time.Minute,
		MigrationsPath:  utils.GetEnv("DB_MIGRATIONS_PATH", "migrations"),
	}
}

func loadRedisConfig() RedisConfig {
	db, _ := strconv.Atoi(utils.GetEnv("REDIS_DB", "0"))
	ttl, _ := strconv.Atoi(utils.GetEnv("REDIS_SNAPSHOT_TTL_MINUTES", "60"))

	return RedisConfig{
		Enabled:     utils.GetEnv("REDIS_ENABLED", "false") == "true",
		URL:         utils.GetEnv("REDIS_URL", ""),
		Host:        utils.GetEnv("REDIS_HOST", "localhost"),
		Port:        utils.GetEnv("REDIS_PORT", "6379"),
		Password:    utils.GetEnv("REDIS_PASSWORD", ""),
		DB:          db,
		SnapshotTTL: time.Duration(ttl) * time.Minute,
	}
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")
	jsonFormat := environment == "production"

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		Format:     utils.GetEnv("LOG_FORMAT", "text"),
		JSONFormat: jsonFormat,
	}
}

func loadGalaxyConfig() (GalaxyConfig, error) {
	seed, err := strconv.ParseInt(utils.GetEnv("GALAXY_SEED", "0"), 10, 64)
	if err != nil {
		return GalaxyConfig{}, fmt.Errorf("GALAXY_SEED must be an integer: %w", err)
	}

	return GalaxyConfig{
		Width:                utils.GetEnvInt("GALAXY_WIDTH", 75),
		Height:               utils.GetEnvInt("GALAXY_HEIGHT", 75),
		Players:              utils.GetEnvInt("GALAXY_PLAYERS", 6),
		SystemSpacing:        utils.GetEnvInt("GALAXY_SYSTEM_SPACING", 12),
		Layout:               utils.GetEnv("GALAXY_LAYOUT", "random"),
		RogueTier:            utils.GetEnvInt("GALAXY_ROGUE_TIER", 1),
		PlanetaryEventChance: utils.GetEnvInt("GALAXY_PLANETARY_EVENT_CHANCE", 10),
		PirateTier:           utils.GetEnvInt("GALAXY_PIRATE_TIER", 2),
		PirateDifficulty:     utils.GetEnvInt("GALAXY_PIRATE_DIFFICULTY", 1),
		AnomalyTier:          utils.GetEnvInt("GALAXY_ANOMALY_TIER", 1),
		KarmaType:            utils.GetEnvInt("GALAXY_KARMA_TYPE", 0),
		KarmaSpeed:           utils.GetEnvInt("GALAXY_KARMA_SPEED", 1),
		ElderHeadStart:       utils.GetEnvInt("GALAXY_ELDER_HEAD_START", 0),
		ElderCount:           utils.GetEnvInt("GALAXY_ELDER_COUNT", 0),
		Seed:                 seed,
	}, nil
}

func loadSimulationConfig() SimulationConfig {
	turnsPerSecond, _ := strconv.ParseFloat(utils.GetEnv("SIM_TURNS_PER_SECOND", "0"), 64)

	return SimulationConfig{
		Turns:          utils.GetEnvInt("SIM_TURNS", 10),
		TurnsPerSecond: turnsPerSecond,
		BurstSize:      utils.GetEnvInt("SIM_BURST_SIZE", 1),
		SaveName:       utils.GetEnv("SIM_SAVE_NAME", "autosave"),
		CatalogPath:    utils.GetEnv("SIM_CATALOG_PATH", ""),
		AppName:        utils.GetEnv("SIM_APP_NAME", "galaxy_kernel"),
		Resume:         utils.GetEnv("SIM_RESUME", "true") == "true",
	}
}

func (c *Config) validate() error {
	g := c.Galaxy

	if g.Width < 1 || g.Width > 256 || g.Height < 1 || g.Height > 256 {
		return fmt.Errorf("galaxy size %dx%d outside 1..256", g.Width, g.Height)
	}

	if g.Players < 2 || g.Players > 16 {
		return fmt.Errorf("GALAXY_PLAYERS must be between 2 and 16, got %d", g.Players)
	}

	if g.PlanetaryEventChance < 0 || g.PlanetaryEventChance > 99 {
		return fmt.Errorf("GALAXY_PLANETARY_EVENT_CHANCE must be between 0 and 99")
	}

	if g.PirateTier < 0 || g.PirateTier > 6 {
		return fmt.Errorf("GALAXY_PIRATE_TIER must be between 0 and 6")
	}

	if g.AnomalyTier < 0 || g.AnomalyTier > 2 {
		return fmt.Errorf("GALAXY_ANOMALY_TIER must be between 0 and 2")
	}

	if g.ElderCount < 0 || g.ElderCount > g.Players {
		return fmt.Errorf("GALAXY_ELDER_COUNT must be between 0 and the player count")
	}

	switch g.Layout {
	case "random", "border", "elders", "two_rings":
	default:
		return fmt.Errorf("unknown GALAXY_LAYOUT %q", g.Layout)
	}

	if c.Database.Enabled && c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Database.Enabled && c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	if c.Simulation.Turns < 0 {
		return fmt.Errorf("SIM_TURNS must not be negative")
	}

	return nil
}

// ConnectionString is the lib/pq DSN for the snapshot database.
func (c DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
		c.SSLMode,
	)
}
