package config

const (
	DefaultMetricsAddress = ":9090"
	DefaultMetricsPath    = "/metrics"
)

type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
	Path    string `yaml:"path"`
}
