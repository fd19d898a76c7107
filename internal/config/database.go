package config

import (
	"time"
)

const (
	DefaultConnectionLifetime = Duration(10 * time.Minute)
)

type Database struct {
	DSN                   string   `yaml:"dsn"`
	MaxIdleConnections    int      `yaml:"max_idle_connections"`
	MaxOpenConnections    int      `yaml:"max_open_connections"`
	MaxConnectionLifetime Duration `yaml:"max_connection_lifetime"`
}
