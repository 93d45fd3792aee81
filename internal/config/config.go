package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Board   BoardConfig   `mapstructure:"board"`
	Stats   StatsConfig   `mapstructure:"stats"`
	Sim     SimConfig     `mapstructure:"sim"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GameConfig holds game rule settings
type GameConfig struct {
	FogOfWar        bool `mapstructure:"fog_of_war"`
	ClimaticEffects bool `mapstructure:"climatic_effects"`
	NumPlayers      int  `mapstructure:"num_players"`
}

// BoardConfig holds board generation settings
type BoardConfig struct {
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	SeaLevel    float64 `mapstructure:"sea_level"`
	MountainLvl float64 `mapstructure:"mountain_level"`
	AridityLvl  float64 `mapstructure:"aridity_level"`
	NoiseScale  float64 `mapstructure:"noise_scale"`
	CoreRatio   int     `mapstructure:"core_ratio"`
	RareRatio   int     `mapstructure:"rare_ratio"`
	RelicRatio  int     `mapstructure:"relic_ratio"`
}

// StatsConfig holds statistics persistence settings
type StatsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path"`
}

// SimConfig holds headless simulation settings
type SimConfig struct {
	MaxTurns int   `mapstructure:"max_turns"`
	Seed     int64 `mapstructure:"seed"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.fog_of_war", true)
	v.SetDefault("game.climatic_effects", true)
	v.SetDefault("game.num_players", 14)

	// Board defaults
	v.SetDefault("board.width", 100)
	v.SetDefault("board.height", 90)
	v.SetDefault("board.sea_level", 0.3)
	v.SetDefault("board.mountain_level", 0.7)
	v.SetDefault("board.aridity_level", 0.5)
	v.SetDefault("board.noise_scale", 0.08)
	v.SetDefault("board.core_ratio", 12)
	v.SetDefault("board.rare_ratio", 80)
	v.SetDefault("board.relic_ratio", 60)

	// Stats defaults
	v.SetDefault("stats.enabled", true)
	v.SetDefault("stats.db_path", "quadrealm_stats.db")

	// Sim defaults
	v.SetDefault("sim.max_turns", 500)
	v.SetDefault("sim.seed", 0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/quadrealm")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("QRL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If we have a specific config path and it doesn't exist, that's ok - use defaults
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// GetFloat64 gets a float64 value from config
func GetFloat64(key string) float64 {
	return v.GetFloat64(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.NumPlayers < 2 || c.Game.NumPlayers > 14 {
		return fmt.Errorf("game.num_players must be between 2 and 14")
	}

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive")
	}
	if c.Board.SeaLevel < 0 || c.Board.SeaLevel > 1 {
		return fmt.Errorf("board.sea_level must be between 0 and 1")
	}
	if c.Board.MountainLvl < 0 || c.Board.MountainLvl > 1 {
		return fmt.Errorf("board.mountain_level must be between 0 and 1")
	}
	if c.Board.SeaLevel >= c.Board.MountainLvl {
		return fmt.Errorf("board.sea_level must be below board.mountain_level")
	}
	if c.Board.AridityLvl < 0 || c.Board.AridityLvl > 1 {
		return fmt.Errorf("board.aridity_level must be between 0 and 1")
	}
	if c.Board.NoiseScale <= 0 {
		return fmt.Errorf("board.noise_scale must be positive")
	}
	if c.Board.CoreRatio <= 0 || c.Board.RareRatio <= 0 || c.Board.RelicRatio <= 0 {
		return fmt.Errorf("board resource ratios must be positive")
	}

	if c.Stats.Enabled && c.Stats.DBPath == "" {
		return fmt.Errorf("stats.db_path must be set when stats are enabled")
	}

	if c.Sim.MaxTurns <= 0 {
		return fmt.Errorf("sim.max_turns must be positive")
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}
