package config

import (
	"github.com/cstortz/developer-artifacts/pkg/logger"
)

const (
	DefaultLogLevel      = "INFO"
	DefaultConsoleFormat = "detailed"
	DefaultFileFormat    = "text"
	DefaultFilename      = "logs/app.log"
	DefaultMaxSizeMB     = 10
	DefaultMaxBackups    = 5
)

type Logger struct {
	Level         string `yaml:"level"`
	ConsoleFormat string `yaml:"console_format"`
	FileFormat    string `yaml:"file_format"`
	Filename      string `yaml:"filename"`
	MaxSizeMB     int    `yaml:"max_size_mb"`
	MaxBackups    int    `yaml:"max_backups"`
	MaxAgeDays    int    `yaml:"max_age_days"`
	Compress      bool   `yaml:"compress"`
}

func (l Logger) Build() logger.Config {
	return logger.Config{
		Level:         l.Level,
		ConsoleFormat: l.ConsoleFormat,
		FileFormat:    l.FileFormat,
		Filename:      l.Filename,
		MaxSizeMB:     l.MaxSizeMB,
		MaxBackups:    l.MaxBackups,
		MaxAgeDays:    l.MaxAgeDays,
		Compress:      l.Compress,
	}
}
