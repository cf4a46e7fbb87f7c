package config

import (
	"fmt"
	"os"
)

type Config struct {
	StorePath   string
	AuditDBPath string

	ChannelID     string
	ChannelSecret string

	Timezone   string
	ServerPort string
}

func Load() *Config {
	return &Config{
		StorePath:     getEnv("STORE_PATH", "reservations.json"),
		AuditDBPath:   getEnv("AUDIT_DB_PATH", "audit.db"),
		ChannelID:     getEnv("CHANNEL_ID", ""),
		ChannelSecret: getEnv("CHANNEL_SECRET", "changeme"),
		Timezone:      getEnv("RESTAURANT_TZ", "Asia/Tokyo"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
