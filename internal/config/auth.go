package config

import (
	"time"
)

const (
	DefaultAccessTokenExpiration  = Duration(30 * time.Minute)
	DefaultRefreshTokenExpiration = Duration(7 * 24 * time.Hour)
)

type Auth struct {
	SecretKey          string   `yaml:"secret_key"`
	AccessTokenExpire  Duration `yaml:"access_token_expire"`
	RefreshTokenExpire Duration `yaml:"refresh_token_expire"`
}
