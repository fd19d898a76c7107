package config

// Redis is optional: with no addresses the scaffold keeps sessions in
// process memory. More than one address implies cluster mode.
type Redis struct {
	Address  []string `yaml:"address"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	MaxRetry int      `yaml:"max_retry"`
}
