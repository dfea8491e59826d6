package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	SessionSecret string
	SessionTTL    time.Duration
	TemplateGlob  string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("MYSQL_DSN", "user:password@tcp(localhost:3306)/taskboard?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_SECRET", "change-me")
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("TEMPLATE_GLOB", "web/templates/*.html")

	return &Config{
		ServerPort:    v.GetString("SERVER_PORT"),
		MySQLDSN:      v.GetString("MYSQL_DSN"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisDB:       v.GetInt("REDIS_DB"),
		RedisPass:     v.GetString("REDIS_PASSWORD"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		SessionTTL:    v.GetDuration("SESSION_TTL"),
		TemplateGlob:  v.GetString("TEMPLATE_GLOB"),
	}
}
