package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Redis        Redis
	Realtime     Realtime
	Notification Notification
	Queue        Queue
}

type Server struct {
	Port        string
	Environment string
}

type Database struct {
	URL string
}

type Redis struct {
	URL string
}

type Realtime struct {
	SendBuffer int
}

type Notification struct {
	PageSize  int
	Retention time.Duration
}

type Queue struct {
	Concurrency int
}

// Load reads configuration from the environment. A local .env file, when
// present, is loaded first so development setups mirror the deployed shape.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("environment", "development")
	v.SetDefault("ws_send_buffer", 128)
	v.SetDefault("notif_page_size", 30)
	v.SetDefault("notif_retention", "720h")
	v.SetDefault("asynq_concurrency", 5)

	retention, err := time.ParseDuration(v.GetString("notif_retention"))
	if err != nil {
		slog.Error("invalid NOTIF_RETENTION, using default", "err", err)
		retention = 30 * 24 * time.Hour
	}

	c := &Config{
		Server: Server{
			Port:        v.GetString("port"),
			Environment: v.GetString("environment"),
		},
		Database: Database{URL: v.GetString("db_url")},
		Redis:    Redis{URL: v.GetString("redis_url")},
		Realtime: Realtime{SendBuffer: v.GetInt("ws_send_buffer")},
		Notification: Notification{
			PageSize:  v.GetInt("notif_page_size"),
			Retention: retention,
		},
		Queue: Queue{Concurrency: v.GetInt("asynq_concurrency")},
	}
	return c, nil
}
