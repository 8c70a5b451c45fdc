package config

import "time"

type Config struct {
	General   `mapstructure:"general"`
	WandB     `mapstructure:"wandb"`
	Rest      `mapstructure:"rest"`
	Telemetry `mapstructure:"telemetry"`
}

type General struct {
	Debug bool `mapstructure:"debug"`
}

type WandB struct {
	Entity   string        `mapstructure:"entity"`
	Project  string        `mapstructure:"project"`
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	PageSize int           `mapstructure:"page_size"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type Rest struct {
	Port            int           `mapstructure:"port"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	RefreshCron     string        `mapstructure:"refresh_cron"` // takes precedence over refresh_interval when set
	AllowOrigins    []string      `mapstructure:"allow_origins"`
}

type Telemetry struct {
	OTelEndpoint string `mapstructure:"otel_endpoint"` // tracing is disabled when empty
	Insecure     bool   `mapstructure:"insecure"`
}

// ProjectPath returns the "entity/project" namespace runs are listed from.
func (w WandB) ProjectPath() string {
	return w.Entity + "/" + w.Project
}
