package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/taskpoint/assist/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "5m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "assist"
user = "assist"
password = "assist"
ssl_mode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = "15m"
conn_timeout = "5s"

[api]
base_path = "/api"

[api.cors]
enabled = false

[api.pagination]
default_page_size = 25
max_page_size = 50

[agent]
name = "assist-agent"

[agent.provider]
name = "ollama"
base_url = "http://localhost:11434"

[agent.model]
name = "llama3.1:8b"
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "assist" {
		t.Errorf("database name: got %s", cfg.Database.Name)
	}
	if cfg.Agent.Provider.Name != "ollama" {
		t.Errorf("provider: got %s", cfg.Agent.Provider.Name)
	}
	if cfg.API.Pagination.DefaultPageSize != 25 {
		t.Errorf("default page size: got %d", cfg.API.Pagination.DefaultPageSize)
	}
	if got := cfg.ShutdownTimeoutDuration(); got != 30*time.Second {
		t.Errorf("shutdown timeout: got %v", got)
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.prod.toml", overlayConfig)
	chdir(t, dir)
	t.Setenv("ASSIST_ENV", "prod")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("overlay port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("overlay db host: got %s", cfg.Database.Host)
	}
	if cfg.Database.Name != "assist" {
		t.Errorf("base db name should survive overlay: got %s", cfg.Database.Name)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("ASSIST_SERVER_PORT", "7070")
	t.Setenv("ASSIST_DB_PASSWORD", "secret")
	t.Setenv("ASSIST_AGENT_MODEL_NAME", "llama3.2:3b")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("env port: got %d, want 7070", cfg.Server.Port)
	}
	if cfg.Database.Password != "secret" {
		t.Errorf("env password not applied")
	}
	if cfg.Agent.Model.Name != "llama3.2:3b" {
		t.Errorf("env model: got %s", cfg.Agent.Model.Name)
	}
}

func TestLoadRejectsInvalidShutdownTimeout(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `shutdown_timeout = "soon"`)
	chdir(t, dir)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestVersionEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)
	t.Setenv("ASSIST_VERSION", "1.2.3")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Version != "1.2.3" {
		t.Errorf("version: got %s, want 1.2.3", cfg.Version)
	}
}
