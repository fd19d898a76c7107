package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
)

// Config describes the two sinks built by InitLogger: a console sink on
// stdout and, when Filename is set, a size-rotated file sink. Both sinks
// share Level as their threshold. The configuration is read once at startup
// and never mutated afterwards.
type Config struct {
	Level         string `yaml:"level"`
	ConsoleFormat string `yaml:"console_format"`
	FileFormat    string `yaml:"file_format"`
	Filename      string `yaml:"filename"`
	MaxSizeMB     int    `yaml:"max_size_mb"`
	MaxBackups    int    `yaml:"max_backups"`
	MaxAgeDays    int    `yaml:"max_age_days"`
	Compress      bool   `yaml:"compress"`
}

func DefaultConfig() Config {
	return Config{
		Level:         "INFO",
		ConsoleFormat: DetailedFORMAT,
		FileFormat:    TextFORMAT,
		Filename:      "logs/app.log",
		MaxSizeMB:     10,
		MaxBackups:    5,
		MaxAgeDays:    0,
		Compress:      false,
	}
}

func newLogger(cfg Config) Logger {
	lvl := parseLevel(cfg.Level)

	sinks := []*sink{
		{
			level:     lvl,
			formatter: getFormatter(cfg.ConsoleFormat),
			out:       os.Stdout,
		},
	}

	if cfg.Filename != "" {
		// The rotating writer replaces the active file once it exceeds
		// MaxSizeMB and keeps at most MaxBackups predecessors, dropping
		// the oldest.
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		sinks = append(sinks, &sink{
			level:     lvl,
			formatter: getFormatter(cfg.FileFormat),
			out:       fileWriter,
		})
	}

	return newCoreLogger(lvl, sinks...)
}
