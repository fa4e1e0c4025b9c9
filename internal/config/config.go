package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Security  SecurityConfig  `yaml:"security" envconfig:"SECURITY"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Data      DataConfig      `yaml:"data" envconfig:"DATA"`
	Dashboard DashboardConfig `yaml:"dashboard" envconfig:"DASHBOARD"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"min=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"min=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format      string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output      string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// DataConfig describes where the day x month count grid is loaded from.
// Source selects the tabular backend; the remaining fields apply per backend.
type DataConfig struct {
	Source        string `yaml:"source" envconfig:"SOURCE" validate:"oneof=csv xlsx sheets"`
	Path          string `yaml:"path" envconfig:"PATH"`
	SheetName     string `yaml:"sheet_name" envconfig:"SHEET_NAME"`
	SpreadsheetID string `yaml:"spreadsheet_id" envconfig:"SPREADSHEET_ID"`
	ReadRange     string `yaml:"read_range" envconfig:"READ_RANGE"`
	ReportsDir    string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
}

// DashboardConfig carries the fixed dashboard parameters: the calendar year
// the grid maps onto, the daily pace and annual goal, the cutoff date that
// splits the distribution comparison, and the decorative animation to fetch.
// These are immutable process-wide settings, passed in rather than read from
// globals.
type DashboardConfig struct {
	Title        string  `yaml:"title" envconfig:"TITLE"`
	Author       string  `yaml:"author" envconfig:"AUTHOR"`
	TargetYear   int     `yaml:"target_year" envconfig:"TARGET_YEAR" validate:"min=1970,max=2100"`
	DailyGoal    float64 `yaml:"daily_goal" envconfig:"DAILY_GOAL" validate:"gt=0"`
	AnnualGoal   float64 `yaml:"annual_goal" envconfig:"ANNUAL_GOAL" validate:"gt=0"`
	GoalCutoff   string  `yaml:"goal_cutoff" envconfig:"GOAL_CUTOFF"`
	AnimationURL string  `yaml:"animation_url" envconfig:"ANIMATION_URL" validate:"omitempty,url"`
}

// GoalCutoffDate parses the configured cutoff into a date.
func (d DashboardConfig) GoalCutoffDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", d.GoalCutoff)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid goal_cutoff %q: %w", d.GoalCutoff, err)
	}
	return t, nil
}

// Default returns the configuration defaults applied before file and
// environment overrides.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:8080"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
		Logging: LoggingConfig{
			Level:       "info",
			Format:      "json",
			Output:      "console",
			FilePath:    "logs/pushpulse.log",
			Development: true,
		},
		Data: DataConfig{
			Source:     "csv",
			Path:       "data/push-ups.csv",
			ReadRange:  "A1:N32",
			ReportsDir: "reports",
		},
		Dashboard: DashboardConfig{
			Title:        "New Year's Resolution 2021",
			Author:       "Micah Paul",
			TargetYear:   2021,
			DailyGoal:    30,
			AnnualGoal:   10000,
			GoalCutoff:   "2021-08-06",
			AnimationURL: "https://assets10.lottiefiles.com/packages/lf20_zm1z76.json",
		},
	}
}

// Load loads configuration with the precedence defaults < config file <
// environment variables (PUSHPULSE_ prefix).
func Load() (*Config, error) {
	cfg := Default()

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("PUSHPULSE", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML file values onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// configFilePath returns the config file location, overridable via env
func configFilePath() string {
	if path := os.Getenv("PUSHPULSE_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}

// validate checks the configuration via struct tags plus the cross-field
// rules the tags cannot express
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}

	if _, err := c.Dashboard.GoalCutoffDate(); err != nil {
		return err
	}

	if c.Data.Source == "sheets" && c.Data.SpreadsheetID == "" {
		return fmt.Errorf("data source %q requires spreadsheet_id", c.Data.Source)
	}
	if (c.Data.Source == "csv" || c.Data.Source == "xlsx") && c.Data.Path == "" {
		return fmt.Errorf("data source %q requires path", c.Data.Source)
	}

	return nil
}
