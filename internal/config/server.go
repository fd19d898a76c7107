package config

import (
	"time"
)

const (
	DefaultAddress         = ":8080"
	DefaultReadTimeout     = Duration(10 * time.Second)
	DefaultWriteTimeout    = Duration(10 * time.Second)
	DefaultShutdownTimeout = Duration(15 * time.Second)
)

type Server struct {
	Address         string   `yaml:"address"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string `yaml:"cors_origins"`
}
