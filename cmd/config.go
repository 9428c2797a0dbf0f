package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string
	HTTPPort    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost              string
	KafkaOrderChangedTopic string

	CatalogSeedPath  string
	OutboxRelayBatch int
	OutboxRetention  time.Duration
}

// LoadConfig reads the process environment, after merging in envFile when it
// exists. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	batch, err := strconv.Atoi(getEnv("OUTBOX_RELAY_BATCH", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("OUTBOX_RELAY_BATCH: %w", err)
	}
	retention, err := time.ParseDuration(getEnv("OUTBOX_RETENTION", "168h"))
	if err != nil {
		return Config{}, fmt.Errorf("OUTBOX_RETENTION: %w", err)
	}

	return Config{
		ServiceName:            getEnv("SERVICE_NAME", "pizza-ordering-api"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		CatalogSeedPath:        os.Getenv("CATALOG_SEED_PATH"),
		OutboxRelayBatch:       batch,
		OutboxRetention:        retention,
	}, nil
}

// DSN renders the connection settings as a postgres URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
