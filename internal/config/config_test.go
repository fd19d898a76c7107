package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(writeConfig(t, "app:\n  name: demo\n"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.APP.Name != "demo" {
		t.Errorf("APP.Name = %q; want demo", cfg.APP.Name)
	}
	if cfg.APP.APIPrefix != DefaultAPIPrefix {
		t.Errorf("APP.APIPrefix = %q; want %q", cfg.APP.APIPrefix, DefaultAPIPrefix)
	}
	if cfg.SERVER.Address != DefaultAddress {
		t.Errorf("SERVER.Address = %q; want %q", cfg.SERVER.Address, DefaultAddress)
	}
	if cfg.AUTH.AccessTokenExpire != DefaultAccessTokenExpiration {
		t.Errorf("AccessTokenExpire = %v; want %v", cfg.AUTH.AccessTokenExpire, DefaultAccessTokenExpiration)
	}
	if cfg.AUTH.RefreshTokenExpire != DefaultRefreshTokenExpiration {
		t.Errorf("RefreshTokenExpire = %v; want %v", cfg.AUTH.RefreshTokenExpire, DefaultRefreshTokenExpiration)
	}
	if cfg.LOG.Level != "INFO" || cfg.LOG.MaxSizeMB != 10 || cfg.LOG.MaxBackups != 5 {
		t.Errorf("LOG defaults = %+v", cfg.LOG)
	}
	if cfg.RATE.RequestsPerMinute != 60 || cfg.RATE.Burst != 10 || cfg.RATE.Storage != "memory" {
		t.Errorf("RATE defaults = %+v", cfg.RATE)
	}
	if cfg.METRICS.Address != ":9090" || cfg.METRICS.Path != "/metrics" {
		t.Errorf("METRICS defaults = %+v", cfg.METRICS)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	content := `
app:
  name: svc
  env: production
server:
  address: ":9999"
  read_timeout: 5s
auth:
  secret_key: topsecret
  access_token_expire: 15m
log:
  level: DEBUG
  filename: /tmp/svc.log
rate:
  enabled: true
  requests_per_minute: 120
`
	cfg, err := NewConfig(writeConfig(t, content))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.APP.IsDevelopment() {
		t.Error("IsDevelopment() = true for production env")
	}
	if cfg.SERVER.Address != ":9999" {
		t.Errorf("SERVER.Address = %q", cfg.SERVER.Address)
	}
	if cfg.SERVER.ReadTimeout.Std() != 5*time.Second {
		t.Errorf("ReadTimeout = %v; want 5s", cfg.SERVER.ReadTimeout)
	}
	if cfg.AUTH.AccessTokenExpire.Std() != 15*time.Minute {
		t.Errorf("AccessTokenExpire = %v; want 15m", cfg.AUTH.AccessTokenExpire)
	}
	if cfg.LOG.Level != "DEBUG" || cfg.LOG.Filename != "/tmp/svc.log" {
		t.Errorf("LOG = %+v", cfg.LOG)
	}
	if !cfg.RATE.Enabled || cfg.RATE.RequestsPerMinute != 120 {
		t.Errorf("RATE = %+v", cfg.RATE)
	}
}

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"timeout: 90s", 90 * time.Second, false},
		{"timeout: 1h30m", 90 * time.Minute, false},
		{"timeout: 5000000000", 5 * time.Second, false},
		{"timeout: forever", 0, true},
	}

	for _, tc := range tests {
		var out struct {
			Timeout Duration `yaml:"timeout"`
		}
		err := unmarshalYaml(t, tc.in, &out)
		if tc.wantErr {
			if err == nil {
				t.Errorf("unmarshal(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("unmarshal(%q): %v", tc.in, err)
			continue
		}
		if out.Timeout.Std() != tc.want {
			t.Errorf("unmarshal(%q) = %v; want %v", tc.in, out.Timeout.Std(), tc.want)
		}
	}
}

func unmarshalYaml(t *testing.T, content string, out interface{}) error {
	t.Helper()
	return yaml.Unmarshal([]byte(content), out)
}

func TestLoggerBuild(t *testing.T) {
	l := Logger{
		Level:      "INFO",
		Filename:   "logs/app.log",
		MaxSizeMB:  10,
		MaxBackups: 5,
	}
	built := l.Build()
	if built.MaxSizeMB != 10 || built.MaxBackups != 5 || built.Filename != "logs/app.log" {
		t.Errorf("Build() = %+v", built)
	}
}
