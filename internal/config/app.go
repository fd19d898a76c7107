package config

const (
	DefaultAppName   = "developer-artifacts"
	DefaultEnv       = "development"
	DefaultAPIPrefix = "/api/v1"
)

type App struct {
	Name      string `yaml:"name"`
	Env       string `yaml:"env"`
	Debug     bool   `yaml:"debug"`
	APIPrefix string `yaml:"api_prefix"`
}

func (a App) IsDevelopment() bool {
	return a.Env == "development"
}
