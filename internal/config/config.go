package config

import "os"

type Config struct {
	ListenAddr     string
	StorageBackend string
	DBPath         string
	DataPath       string
	AuthMode       string
	AuthUser       string
	AuthHeader     string
	LogLevel       string
	LogFile        string
}

func Load() *Config {
	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		StorageBackend: getEnv("STORAGE_BACKEND", "sqlite"),
		DBPath:         getEnv("DB_PATH", "/data/flatfinder.db"),
		DataPath:       getEnv("DATA_PATH", "/data/blobs"),
		AuthMode:       getEnv("AUTH_MODE", "static"),
		AuthUser:       getEnv("AUTH_USER", "local"),
		AuthHeader:     getEnv("AUTH_HEADER", "X-Auth-User"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
