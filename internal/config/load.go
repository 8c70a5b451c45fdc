package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
)

const configFile = "opencompute_config.json"

var (
	cfg    Config
	loaded bool
	mu     sync.Mutex
	home   = os.Getenv("HOME")
	fs     = afero.NewOsFs()
)

func searchPaths() []string {
	return []string{
		".",                                 // current working directory first
		filepath.Join(home, ".opencompute"), // then home directory
		"/etc/opencompute",                  // finally /etc
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix("opencompute")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("general.debug", false)
	v.SetDefault("wandb.entity", "neuralinternet")
	v.SetDefault("wandb.project", "opencompute")
	v.SetDefault("wandb.base_url", "https://api.wandb.ai")
	v.SetDefault("wandb.api_key", "")
	v.SetDefault("wandb.page_size", 100)
	v.SetDefault("wandb.timeout", "30s")
	v.SetDefault("rest.port", 9998)
	v.SetDefault("rest.refresh_interval", "5m")
	v.SetDefault("rest.refresh_cron", "")
	v.SetDefault("rest.allow_origins", []string{"http://localhost:8501"})
	v.SetDefault("telemetry.otel_endpoint", "")
	v.SetDefault("telemetry.insecure", true)

	// the tracking service's own variable wins over anything in the config file
	_ = v.BindEnv("wandb.api_key", "WANDB_API_KEY", "OPENCOMPUTE_WANDB_API_KEY")
	return v
}

// SetFs replaces the filesystem the config file is read from.
func SetFs(f afero.Fs) {
	mu.Lock()
	defer mu.Unlock()
	fs = f
	loaded = false
}

// LoadConfig reads the first config file found in the search paths on top of
// the defaults. A missing file is not an error.
func LoadConfig() error {
	mu.Lock()
	defer mu.Unlock()
	return load()
}

func load() error {
	v := newViper()

	raw, err := findConfig(searchPaths(), configFile)
	if err == nil {
		// viper's json reader rejects comments, so strip them first
		if err := v.ReadConfig(bytes.NewBuffer(jsonc.ToJSON(raw))); err != nil {
			return fmt.Errorf("unable to parse %s: %w", configFile, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}

	cfg = c
	loaded = true
	return nil
}

// SetConfig overrides a single key, e.g. from a command-line flag.
func SetConfig(key string, value interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !loaded {
		if err := load(); err != nil {
			_ = newViper().Unmarshal(&cfg)
		}
	}

	v := newViper()
	_ = v.MergeConfigMap(toMap(cfg))
	v.Set(key, value)
	_ = v.Unmarshal(&cfg)
}

// GetConfig returns the loaded config, loading it on first use. A config file
// that fails to parse falls back to the defaults.
func GetConfig() *Config {
	mu.Lock()
	defer mu.Unlock()
	if !loaded {
		if err := load(); err != nil {
			_ = newViper().Unmarshal(&cfg)
			loaded = true
		}
	}
	return &cfg
}

func findConfig(paths []string, filename string) ([]byte, error) {
	for _, path := range paths {
		fullPath := filepath.Join(path, filename)
		if _, err := fs.Stat(fullPath); err == nil {
			return afero.ReadFile(fs, fullPath)
		}
	}

	return nil, fmt.Errorf("file not found in any of the paths")
}

func toMap(c Config) map[string]interface{} {
	return map[string]interface{}{
		"general": map[string]interface{}{
			"debug": c.General.Debug,
		},
		"wandb": map[string]interface{}{
			"entity":    c.WandB.Entity,
			"project":   c.WandB.Project,
			"base_url":  c.WandB.BaseURL,
			"api_key":   c.WandB.APIKey,
			"page_size": c.WandB.PageSize,
			"timeout":   c.WandB.Timeout.String(),
		},
		"rest": map[string]interface{}{
			"port":             c.Rest.Port,
			"refresh_interval": c.Rest.RefreshInterval.String(),
			"refresh_cron":     c.Rest.RefreshCron,
			"allow_origins":    c.Rest.AllowOrigins,
		},
		"telemetry": map[string]interface{}{
			"otel_endpoint": c.Telemetry.OTelEndpoint,
			"insecure":      c.Telemetry.Insecure,
		},
	}
}
