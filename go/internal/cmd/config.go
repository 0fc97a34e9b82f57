package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Events EventsConfig `yaml:"events"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// EventsConfig enables the JetStream publisher when NatsURL is set.
type EventsConfig struct {
	NatsURL       string `yaml:"nats_url"`
	Stream        string `yaml:"stream"`
	SubjectPrefix string `yaml:"subject_prefix"`
	QueueSize     int    `yaml:"queue_size"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "3000",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Events: EventsConfig{
			QueueSize: 1024,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// loadConfig reads the optional YAML file at path and then applies
// environment overrides. An empty path skips the file.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.Server.AllowedOrigins = splitList(origins)
	}
	config.Server.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", config.Server.ShutdownTimeout)

	config.Events.NatsURL = getEnv("NATS_URL", config.Events.NatsURL)
	config.Events.Stream = getEnv("NATS_STREAM", config.Events.Stream)
	config.Events.SubjectPrefix = getEnv("NATS_SUBJECT_PREFIX", config.Events.SubjectPrefix)
	config.Events.QueueSize = getEnvAsInt("EVENT_QUEUE_SIZE", config.Events.QueueSize)

	return &config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
