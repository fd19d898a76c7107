package config

import (
	"github.com/cstortz/developer-artifacts/pkg/config"
	"github.com/cstortz/developer-artifacts/pkg/logger"
)

type Config struct {
	APP     App
	SERVER  Server
	AUTH    Auth
	DB      Database
	REDIS   Redis
	LOG     Logger
	RATE    RateLimit
	METRICS Metrics
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := config.NewConfig[Config](configPath)
	if err != nil {
		logger.Fatal("CONFIG", "Error while loading config: %v", err)
		return nil, err
	}

	if cfg.APP.Name == "" {
		cfg.APP.Name = DefaultAppName
	}

	if cfg.APP.Env == "" {
		cfg.APP.Env = DefaultEnv
	}

	if cfg.APP.APIPrefix == "" {
		cfg.APP.APIPrefix = DefaultAPIPrefix
	}

	if cfg.SERVER.Address == "" {
		cfg.SERVER.Address = DefaultAddress
	}

	if cfg.SERVER.ReadTimeout == 0 {
		cfg.SERVER.ReadTimeout = DefaultReadTimeout
	}

	if cfg.SERVER.WriteTimeout == 0 {
		cfg.SERVER.WriteTimeout = DefaultWriteTimeout
	}

	if cfg.SERVER.ShutdownTimeout == 0 {
		cfg.SERVER.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.AUTH.AccessTokenExpire == 0 {
		cfg.AUTH.AccessTokenExpire = DefaultAccessTokenExpiration
	}

	if cfg.AUTH.RefreshTokenExpire == 0 {
		cfg.AUTH.RefreshTokenExpire = DefaultRefreshTokenExpiration
	}

	if cfg.DB.MaxConnectionLifetime == 0 {
		cfg.DB.MaxConnectionLifetime = DefaultConnectionLifetime
	}

	if cfg.LOG.Level == "" {
		cfg.LOG.Level = DefaultLogLevel
	}

	if cfg.LOG.ConsoleFormat == "" {
		cfg.LOG.ConsoleFormat = DefaultConsoleFormat
	}

	if cfg.LOG.FileFormat == "" {
		cfg.LOG.FileFormat = DefaultFileFormat
	}

	if cfg.LOG.Filename == "" {
		cfg.LOG.Filename = DefaultFilename
	}

	if cfg.LOG.MaxSizeMB == 0 {
		cfg.LOG.MaxSizeMB = DefaultMaxSizeMB
	}

	if cfg.LOG.MaxBackups == 0 {
		cfg.LOG.MaxBackups = DefaultMaxBackups
	}

	if cfg.RATE.RequestsPerMinute == 0 {
		cfg.RATE.RequestsPerMinute = DefaultRequestsPerMinute
	}

	if cfg.RATE.Burst == 0 {
		cfg.RATE.Burst = DefaultBurst
	}

	if cfg.RATE.Storage == "" {
		cfg.RATE.Storage = DefaultRateStorage
	}

	if cfg.METRICS.Address == "" {
		cfg.METRICS.Address = DefaultMetricsAddress
	}

	if cfg.METRICS.Path == "" {
		cfg.METRICS.Path = DefaultMetricsPath
	}

	return cfg, nil
}
