package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvFile = "./configs/.env"

type Config struct {
	envFile string
}

// New loads ./configs/.env once. A missing file is not fatal: deployments
// pass the same keys through the process environment.
func New() *Config {
	once.Do(func() {
		instance = load(defaultEnvFile)
	})
	return instance
}

// NewFromFile loads the given env file without touching the singleton.
func NewFromFile(path string) *Config {
	return load(path)
}

func load(path string) *Config {
	if err := godotenv.Load(path); err != nil {
		log.Printf("loading envs from %s: %v, using process environment", path, err)
	}
	return &Config{envFile: path}
}

// Source is the env file the config was loaded from.
func (c *Config) Source() string {
	return c.envFile
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func (c *Config) GetInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func (c *Config) GetBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// GetDuration accepts Go duration strings ("168h", "30m").
func (c *Config) GetDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (c *Config) IsDevelopment() bool {
	return c.GetStringOr("APP_ENV", "production") == "development"
}
