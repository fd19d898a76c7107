package config

const (
	DefaultRequestsPerMinute = 60
	DefaultBurst             = 10
	DefaultRateStorage       = "memory"
)

type RateLimit struct {
	Enabled           bool   `yaml:"enabled"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
	Burst             int    `yaml:"burst"`
	Storage           string `yaml:"storage"`
}
