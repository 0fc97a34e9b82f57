package graphdb

import (
	"os"
	"strconv"
	"time"
)

// Config holds Neo4j connection settings.
type Config struct {
	URI            string
	User           string
	Password       string
	Database       string
	MaxPoolSize    int
	ConnectTimeout time.Duration
}

// NewConfigFromEnv reads NEO4J_* environment variables. URI and credentials
// have no defaults; Validate reports them missing.
func NewConfigFromEnv() Config {
	poolSize, err := strconv.Atoi(getEnv("NEO4J_MAX_POOL_SIZE", "0"))
	if err != nil {
		poolSize = 0
	}

	timeout, err := time.ParseDuration(getEnv("NEO4J_CONNECT_TIMEOUT", "0s"))
	if err != nil {
		timeout = 0
	}

	return Config{
		URI:            os.Getenv("NEO4J_URI"),
		User:           os.Getenv("NEO4J_USER"),
		Password:       os.Getenv("NEO4J_PASSWORD"),
		Database:       os.Getenv("NEO4J_DATABASE"),
		MaxPoolSize:    poolSize,
		ConnectTimeout: timeout,
	}
}

// Validate checks that the endpoint and the credential pair are present.
func (c Config) Validate() error {
	var missing []string
	if c.URI == "" {
		missing = append(missing, "NEO4J_URI")
	}
	if c.User == "" {
		missing = append(missing, "NEO4J_USER")
	}
	if c.Password == "" {
		missing = append(missing, "NEO4J_PASSWORD")
	}
	if len(missing) > 0 {
		return &MissingConfigError{Keys: missing}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
