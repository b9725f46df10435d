package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
)

// mongoDSNPattern accepts mongodb://[user[:pass]@]host:port[/db] strings.
var mongoDSNPattern = regexp.MustCompile(`^mongodb://([^:@]+(:[^@]+)?@)?.*:\d{1,5}(/[a-zA-Z0-9-_?%&=]+)?/?$`)

type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	CORS    CORSConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type MongoConfig struct {
	DSN      string
	Database string
}

type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

type LoggingConfig struct {
	Level string
}

// Load reads configuration from the environment (and a .env file when
// present). The listen port, listen host and store connection string are
// required; a missing or malformed value is an error, which the caller
// treats as fatal at startup.
func Load() (*Config, error) {
	godotenv.Load()

	port, err := requirePort("HTTP_PORT")
	if err != nil {
		return nil, err
	}

	host, err := requireEnv("HTTP_HOST")
	if err != nil {
		return nil, err
	}

	dsn, err := requireEnv("MONGO_DSN")
	if err != nil {
		return nil, err
	}
	if !mongoDSNPattern.MatchString(dsn) {
		return nil, fmt.Errorf("invalid MONGO_DSN format")
	}

	return &Config{
		Server: ServerConfig{
			Host: host,
			Port: port,
			Env:  getEnv("ENV", "development"),
		},
		Mongo: MongoConfig{
			DSN:      dsn,
			Database: getEnv("MONGO_DB", "notes"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PATCH,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("missing %s environment variable", key)
	}
	return value, nil
}

func requirePort(key string) (int, error) {
	raw, err := requireEnv(key)
	if err != nil {
		return 0, err
	}

	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port number: %q", raw)
	}
	return port, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
