package config

import (
	"os"
	"strconv"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port    string
	DBPath  string
	TaxRate float64
	GinMode string
}

// LoadConfig reads configuration from the environment with defaults suitable
// for a single-terminal install.
func LoadConfig() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		DBPath:  getEnv("DB_PATH", "pos.db"),
		TaxRate: getEnvFloat("TAX_RATE", 0.05),
		GinMode: getEnv("GIN_MODE", ""),
	}
}

// InitDB opens the local settings store. Only the Setting model lives here;
// catalog, customers, orders and sales are process-lifetime memory.
func InitDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
