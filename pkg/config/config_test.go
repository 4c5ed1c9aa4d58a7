package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 8080 {
		t.Fatalf("port: got %d, want 8080", c.Server.Port)
	}
	if c.Upstream.BaseURL != "https://query1.finance.yahoo.com" {
		t.Fatalf("base url: got %s", c.Upstream.BaseURL)
	}
	if c.Upstream.Timeout != 10*time.Second {
		t.Fatalf("timeout: got %s", c.Upstream.Timeout)
	}
	if c.Upstream.DefaultPeriod != "1d" || c.Upstream.DefaultInterval != "1d" {
		t.Fatalf("period defaults: got %s/%s", c.Upstream.DefaultPeriod, c.Upstream.DefaultInterval)
	}
	for period, want := range DefaultIntervals {
		if got := c.Upstream.Intervals[period]; got != want {
			t.Fatalf("interval %s: got %s, want %s", period, got, want)
		}
	}
}

func TestLoadYAMLOverridesIntervals(t *testing.T) {
	path := writeConfig(t, `
environment: test
upstream:
  intervals:
    1d: 1m
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := c.Upstream.Intervals["1d"]; got != "1m" {
		t.Fatalf("interval 1d: got %s, want 1m", got)
	}
	if _, ok := c.Upstream.Intervals["5d"]; ok {
		t.Fatalf("expected yaml table to replace defaults entirely")
	}
}

func TestLoadWithEnvOverridesPort(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	t.Setenv("PORT", "9090")
	t.Setenv("STATIC_DIR", "/srv/www")

	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 9090 {
		t.Fatalf("port: got %d, want 9090", c.Server.Port)
	}
	if c.Static.Root != "/srv/www" {
		t.Fatalf("static root: got %s", c.Static.Root)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	path := writeConfig(t, `
environment: test
server:
  port: 99999
`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}
