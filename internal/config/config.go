package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	ProjectName string
	Environment string
	LogLevel    string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PoolMinSize      int
	PoolMaxSize      int
}

// Load reads the process configuration from the environment once at startup.
func Load() *Config {
	return &Config{
		ProjectName: os.Getenv("PROJECT_NAME"),
		Environment: os.Getenv("ENVIRONMENT"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),

		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PoolMinSize:      getEnvInt("POSTGRES_CONNECTION_POOL_MIN_SIZE", 1),
		PoolMaxSize:      getEnvInt("POSTGRES_CONNECTION_POOL_MAX_SIZE", 20),
	}
}

func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB,
	)
}

// InitDB opens the Postgres connection and applies the pool bounds. Requests
// check sessions out of this pool and release them at request end.
func InitDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database: ", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to access connection pool: ", err)
	}
	sqlDB.SetMaxIdleConns(cfg.PoolMinSize)
	sqlDB.SetMaxOpenConns(cfg.PoolMaxSize)

	return db
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
