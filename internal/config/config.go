package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates configuration for both binaries.
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Web    WebConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	web, err := loadWebConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Mongo:  loadMongoConfig(),
		Web:    web,
	}, nil
}

// ServerConfig describes the API HTTP server.
type ServerConfig struct {
	Addr string
	Env  string
}

// MongoConfig describes the document store connection. URI is required by
// cmd/api; a missing or unreachable store is fatal at startup.
type MongoConfig struct {
	URI      string
	Database string
}

// WebConfig describes the web client process.
type WebConfig struct {
	Addr       string
	APIBaseURL string
}

func loadServerConfig() (ServerConfig, error) {
	addr, err := parseAddr("PORT", "3000")
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		Addr: addr,
		Env:  getEnvOrDefault("APP_ENV", "development"),
	}, nil
}

func loadMongoConfig() MongoConfig {
	return MongoConfig{
		URI:      strings.TrimSpace(os.Getenv("MONGO_URI")),
		Database: getEnvOrDefault("DB_NAME", "tictacnext"),
	}
}

func loadWebConfig() (WebConfig, error) {
	addr, err := parseAddr("WEB_PORT", "8080")
	if err != nil {
		return WebConfig{}, err
	}
	return WebConfig{
		Addr:       addr,
		APIBaseURL: getEnvOrDefault("API_BASE_URL", "http://localhost:3000/api/v1"),
	}, nil
}

// parseAddr resolves a listen address from a port-style variable. Bare ports
// such as "3000" and full addresses such as ":3000" or "127.0.0.1:3000" are
// both accepted.
func parseAddr(key, defaultPort string) (string, error) {
	port := strings.TrimSpace(os.Getenv(key))
	if port == "" {
		port = defaultPort
	}

	if strings.Contains(port, ":") {
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid %s value: %q", key, port)
	}

	return ":" + port, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
