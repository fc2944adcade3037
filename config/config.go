package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/milk9111/bubbleblast/ecs"
)

const envPrefix = "BUBBLEBLAST_"

type Config struct {
	Mode ecs.Mode
	// Level is the zero-based starting index into the level table.
	Level int

	Debug       bool
	BaseMonitor bool

	// Watch enables hot reload of PrefabDir.
	Watch     bool
	PrefabDir string

	// Seed of 0 means seed from the clock.
	Seed int64
}

// Load reads an optional .env file, then BUBBLEBLAST_* variables, then the
// command line. Later sources win.
func Load(args []string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Level:       getEnvInt("LEVEL", 1) - 1,
		Debug:       getEnvBool("DEBUG", false),
		BaseMonitor: getEnvBool("BASE_MONITOR", false),
		Watch:       getEnvBool("WATCH", false),
		PrefabDir:   getEnv("PREFABS", "prefabs"),
		Seed:        int64(getEnvInt("SEED", 0)),
	}
	modeName := getEnv("MODE", "endless")

	fs := flag.NewFlagSet("bubbleblast", flag.ContinueOnError)
	fs.StringVar(&modeName, "mode", modeName, "game mode: endless or levels")
	level := fs.Int("level", cfg.Level+1, "starting level number (levels mode)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug overlay")
	fs.BoolVar(&cfg.BaseMonitor, "m", cfg.BaseMonitor, "use base monitor instead of primary (for multi-monitor setups)")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload prefabs when they change on disk")
	fs.StringVar(&cfg.PrefabDir, "prefabs", cfg.PrefabDir, "directory checked for prefab overrides")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time based")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	mode, err := ecs.ParseMode(modeName)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Mode = mode
	cfg.Level = max(*level-1, 0)
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(envPrefix + key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(envPrefix + key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
