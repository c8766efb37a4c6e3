package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultBufferSize = 4096
	minBufferSize     = 512
	maxBufferSize     = 1048576
)

type config struct {
	host string
	port string

	viewsDir string

	bufferSize int

	debug bool

	warnings []string
}

func parse() (*config, error) {
	host := getenv("HOST", "127.0.0.1")

	port, err := parsePort()
	if err != nil {
		return nil, err
	}

	viewsDir := getenv("VIEWS_DIR", "views")

	bufferSize, warning := parseBufferSize()

	var warnings []string
	if warning != "" {
		warnings = append(warnings, warning)
	}

	return &config{
		host:       host,
		port:       port,
		viewsDir:   viewsDir,
		bufferSize: bufferSize,
		debug:      getenvBool("DEBUG", false),
		warnings:   warnings,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parsePort() (string, error) {
	raw := getenv("PORT", "8080")
	port, err := strconv.ParseUint(raw, 10, 16)
	if err != nil || port == 0 {
		return "", fmt.Errorf("invalid PORT value %q", raw)
	}
	return raw, nil
}

func parseBufferSize() (int, string) {
	raw := getenv("BUFFER_SIZE", strconv.Itoa(defaultBufferSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < minBufferSize || size > maxBufferSize {
		return defaultBufferSize, fmt.Sprintf("Invalid BUFFER_SIZE %q, falling back to %d", raw, defaultBufferSize)
	}
	return size, ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
