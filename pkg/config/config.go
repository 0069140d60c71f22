package config

import (
	"log"
	"os"
	"strconv"
)

func New() Config {
	return Config{
		BasePath:         requireEnv("BASE_PATH"),
		MirrorSourcesDir: requireEnv("MIRROR_SOURCES_DIR"),
		Postgresql: Postgresql{
			Host:         requireEnv("DATABASE_HOST"),
			Port:         requireEnvAsInt("DATABASE_PORT"),
			Username:     requireEnv("DATABASE_USERNAME"),
			Password:     requireEnv("DATABASE_PASSWORD"),
			DatabaseName: requireEnv("DATABASE_NAME"),
		},
	}
}

type Config struct {
	BasePath string
	// MirrorSourcesDir holds one <version>.yaml per supported OCP version
	// with that version's image content sources
	MirrorSourcesDir string
	Postgresql       Postgresql
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("Can't find environment variable: %s\n", key)
	}
	return value
}

func requireEnvAsInt(key string) int {
	valueStr := requireEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}
